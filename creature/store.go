package creature

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Statement types.
const (
	StatementNext uint8 = iota
	StatementReset
	statementUnknown
)

var (
	ErrKeyNotFound      = errors.New("key does not exist")
	ErrUnknownStatement = errors.New("unknown statement type")
)

// A Statement represents an operation to perform on a store.
type Statement struct {
	Key               string
	Type              uint8
	CreateIfNotExists bool
}

// A Store represents a collection of Generators. A Store can be used
// simultaneously from multiple goroutines. Operations on a generator are
// serialized by the store, including observer notifications.
type Store struct {
	m         map[string]*Generator
	newSource func(key string) Source
	mu        sync.RWMutex
}

// NewStore creates and initializes a new Store. newSource provides the
// random source of each generator created or loaded by the store. If
// newSource is nil, generators draw from math/rand sources seeded from
// crypto/rand.
func NewStore(newSource func(key string) Source) *Store {
	if newSource == nil {
		newSource = func(string) Source { return defaultSource() }
	}
	return &Store{m: make(map[string]*Generator), newSource: newSource}
}

// New creates and adds a new Generator to the store using key as its
// identifier. If a Generator already exists for the identifier it is silently
// replaced with the new Generator.
func (s *Store) New(key string) {
	s.mu.Lock()
	s.m[key] = NewGenerator(s.newSource(key))
	s.mu.Unlock()
}

// Add adds a copy of g to the store using key as its identifier. The copy
// draws from a source provided by the store and has no observer. If a
// Generator already exists for the identifier it is silently replaced.
func (s *Store) Add(key string, g *Generator) {
	s.mu.Lock()
	s.m[key] = g.clone(s.newSource(key))
	s.mu.Unlock()
}

// Get returns a copy of the Generator associated to key. The copy draws from
// a crypto seeded source. The second return value is true if the key exists
// in the store and false if not.
func (s *Store) Get(key string) (*Generator, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.m[key]
	if !ok {
		return nil, false
	}
	return g.clone(defaultSource()), true
}

// Delete removes the Generator associated to key, if any.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
}

// Next calls Next on the Generator associated to key.
func (s *Store) Next(key string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.m[key]
	if !ok {
		return 0, ErrKeyNotFound
	}
	return g.Next(), nil
}

// OnCreation registers fn as the observer of the Generator associated to
// key. The observer runs with the store lock held and must not call back
// into the store.
func (s *Store) OnCreation(key string, fn func(State)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.m[key]
	if !ok {
		return ErrKeyNotFound
	}
	g.OnCreation(fn)
	return nil
}

// Execute executes a statement against the store, returning an error if the
// statement cannot be executed.
func (s *Store) Execute(statement Statement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.executeUnsafe(statement)
}

// Batch executes multiple statements against the store. Individual errors are
// non blocking but if one or more statements could not be executed the method
// returns a slice holding information about each individual error along with
// a global error.
func (s *Store) Batch(statements []Statement) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var report []string
	for i, v := range statements {
		if err := s.executeUnsafe(v); err != nil {
			report = append(report, fmt.Sprintf("%s, at index %d", err, i))
		}
	}
	if len(report) > 0 {
		return report, errors.New("some operations could not be completed")
	}
	return report, nil
}

// Keys returns the identifiers known in the store in lexical order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	keys := maps.Keys(s.m)
	s.mu.RUnlock()
	slices.Sort(keys)
	return keys
}

// Dump allows to export the store as a slice of bytes.
func (s *Store) Dump() ([]byte, error) {
	var buf bytes.Buffer
	container := make([]byte, binary.MaxVarintLen64)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for k, v := range s.m {
		for _, data := range [][]byte{[]byte(k), v.Bytes()} {
			n := binary.PutUvarint(container, uint64(len(data)))
			if _, err := buf.Write(container[:n]); err != nil {
				return nil, err
			}
			if _, err := buf.Write(data); err != nil {
				return nil, err
			}
		}
	}
	return buf.Bytes(), nil
}

// Load replaces the content of the store with data previously exported using
// the Dump method. The store is left untouched if data cannot be decoded.
func (s *Store) Load(data []byte) error {
	m := make(map[string]*Generator)
	i := 0
	for i < len(data) {
		key, n, err := readChunk(data[i:])
		if err != nil {
			return err
		}
		i += n
		value, n, err := readChunk(data[i:])
		if err != nil {
			return err
		}
		i += n
		g, err := NewGeneratorFromBytes(s.newSource(string(key)), value)
		if err != nil {
			return fmt.Errorf("load %q: %w", key, err)
		}
		m[string(key)] = g
	}
	s.mu.Lock()
	s.m = m
	s.mu.Unlock()
	return nil
}

// readChunk reads a length prefixed chunk from data, returning the chunk and
// the number of bytes consumed.
func readChunk(data []byte) ([]byte, int, error) {
	v, n := binary.Uvarint(data)
	if n <= 0 || v > uint64(len(data)-n) {
		return nil, 0, ErrDecode
	}
	end := n + int(v)
	return data[n:end], end, nil
}

// executeUnsafe executes a statement against the store, returning an error if
// the statement cannot be executed. This method is not goroutine-safe. The
// caller is responsible for properly acquiring / releasing the lock on the
// store.
func (s *Store) executeUnsafe(statement Statement) error {
	if statement.Type >= statementUnknown {
		return ErrUnknownStatement
	}
	g, ok := s.m[statement.Key]
	if !ok {
		if !statement.CreateIfNotExists {
			return ErrKeyNotFound
		}
		g = NewGenerator(s.newSource(statement.Key))
		s.m[statement.Key] = g
	}
	switch statement.Type {
	case StatementNext:
		g.Next()
	case StatementReset:
		g.Reset()
	}
	return nil
}
