package creature

import (
	"encoding/binary"
	"errors"
)

const (
	sizeCounter    = 4
	sizeStreak     = 1
	sizeInjections = 4
	sizeKills      = 4

	indexCounter    = 0
	indexAlive      = indexCounter + sizeCounter
	indexDead       = indexAlive + sizeStreak
	indexInjections = indexDead + sizeStreak
	indexKills      = indexInjections + sizeInjections
	indexData       = indexKills + sizeKills

	flagBits       = 2
	maxRepetitions = uint16(1<<(16-flagBits) - 1)
)

// MaxLength is the maximum number of values that can be exported by Bytes.
const MaxLength = 1<<(sizeCounter*8) - 1 // 4294967295

var ErrDecode = errors.New("cannot decode the sequence")

// Bytes returns the run-length encoded history along with the streak
// counters and statistics. Values beyond MaxLength are silently ignored.
func (g *Generator) Bytes() []byte {
	values := g.values
	if len(values) > MaxLength {
		values = values[:MaxLength]
	}
	x := make([]byte, indexData, indexData+2*len(values))
	binary.LittleEndian.PutUint32(x[indexCounter:], uint32(len(values)))
	x[indexAlive] = byte(g.alive)
	x[indexDead] = byte(g.dead)
	binary.LittleEndian.PutUint32(x[indexInjections:], g.injections)
	binary.LittleEndian.PutUint32(x[indexKills:], g.kills)
	for _, r := range runsOf(values) {
		c := r.Count
		for c > int(maxRepetitions) {
			b0, b1 := encode(maxRepetitions, r.State)
			x = append(x, b0, b1)
			c -= int(maxRepetitions)
		}
		b0, b1 := encode(uint16(c), r.State)
		x = append(x, b0, b1)
	}
	return x
}

// NewGeneratorFromBytes creates a new Generator drawing from src and using
// data, an encoded Generator, as its initial content.
func NewGeneratorFromBytes(src Source, data []byte) (*Generator, error) {
	n := len(data)
	if n < indexData || (n-indexData)%2 != 0 {
		return nil, ErrDecode
	}
	count := binary.LittleEndian.Uint32(data[indexCounter:])
	alive, dead := uint(data[indexAlive]), uint(data[indexDead])
	if alive >= streakLength || dead >= streakLength || (alive != 0 && dead != 0) {
		return nil, ErrDecode
	}
	// Each pair holds at most maxRepetitions values.
	if uint64(count) > uint64(n-indexData)/2*uint64(maxRepetitions) {
		return nil, ErrDecode
	}
	values := make([]State, 0, count)
	for i := indexData; i < n; i += 2 {
		c, v := decode(data[i], data[i+1])
		if c == 0 || !v.Valid() || uint64(len(values))+uint64(c) > uint64(count) {
			return nil, ErrDecode
		}
		for j := uint16(0); j < c; j++ {
			values = append(values, v)
		}
	}
	if uint32(len(values)) != count {
		return nil, ErrDecode
	}
	g := NewGenerator(src)
	g.values = values
	g.indexLives()
	g.alive, g.dead = alive, dead
	g.injections = binary.LittleEndian.Uint32(data[indexInjections:])
	g.kills = binary.LittleEndian.Uint32(data[indexKills:])
	return g, nil
}

// encode encodes count and value as 2 bytes, keeping the 14 least
// significant bits of count and the 2 least significant bits of value.
func encode(count uint16, value State) (byte, byte) {
	count <<= flagBits
	return byte(count) | byte(value)&(1<<flagBits-1), byte(count >> 8)
}

// decode decodes values encoded using the encode function.
func decode(x, y byte) (uint16, State) {
	return uint16(x>>flagBits) | uint16(y)<<(8-flagBits), State(x & (1<<flagBits - 1))
}
