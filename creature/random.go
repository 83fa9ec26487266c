package creature

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// A Source provides fair random booleans to a Generator.
type Source interface {
	Bool() bool
}

// SourceFunc adapts an ordinary function to the Source interface.
type SourceFunc func() bool

// Bool returns f().
func (f SourceFunc) Bool() bool {
	return f()
}

// randSource draws booleans from a math/rand generator.
type randSource struct {
	rng *rand.Rand
}

func (s *randSource) Bool() bool {
	return s.rng.Int63()&1 == 1
}

// NewRandSource returns a Source backed by math/rand and seeded with seed.
// Given the same seed, the returned Source always produces the same draws.
func NewRandSource(seed int64) Source {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// script replays a fixed list of draws.
type script struct {
	values []bool
	i      int
}

func (s *script) Bool() bool {
	if len(s.values) == 0 {
		return false
	}
	v := s.values[s.i]
	if s.i < len(s.values)-1 {
		s.i++
	}
	return v
}

// Script returns a Source replaying values in order. Once exhausted, the
// last value is repeated. An empty script always draws false.
func Script(values ...bool) Source {
	v := make([]bool, len(values))
	copy(v, values)
	return &script{values: v}
}

// defaultSource returns a math/rand Source seeded from crypto/rand, falling
// back to seed 1 if the system entropy source is unavailable.
func defaultSource() Source {
	seed, err := NewSeed()
	if err != nil {
		seed = 1
	}
	return NewRandSource(seed)
}
