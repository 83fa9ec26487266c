package creature

import (
	"errors"

	"golang.org/x/exp/slices"
)

// streakLength is the number of consecutive identical primary outcomes
// that triggers a streak rule.
const streakLength = 3

var (
	ErrInvalidState     = errors.New("invalid creature state")
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrOutOfBounds      = errors.New("out of bounds")
)

// A Generator grows a history of creature states. The zero value is not
// usable, use NewGenerator. A Generator is not safe for concurrent use.
type Generator struct {
	src        Source
	values     []State
	lives      []int // indices of Life entries, most recent last
	alive      uint
	dead       uint
	injections uint32
	kills      uint32
	observer   func(State)
}

// NewGenerator creates and initializes a new Generator drawing from src.
// If src is nil, a math/rand source seeded from crypto/rand is used.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = defaultSource()
	}
	return &Generator{src: src}
}

// NewGeneratorFromValues creates a new Generator drawing from src and using
// values as its initial history. Streak counters are derived from the trailing
// run of values, modulo the streak length, and are zero if the last value is
// Life. Runs holding entries overwritten by a kill cannot be told apart from
// primary outcomes; use NewGeneratorFromBytes to restore exact counters.
func NewGeneratorFromValues(src Source, values []State) (*Generator, error) {
	g := NewGenerator(src)
	for _, x := range values {
		if !x.Valid() {
			return nil, ErrInvalidState
		}
	}
	g.values = slices.Clone(values)
	g.indexLives()
	n := len(values)
	if n == 0 || values[n-1] == Life {
		return g, nil
	}
	last := values[n-1]
	var run uint
	for i := n - 1; i >= 0 && values[i] == last; i-- {
		run++
	}
	if last == Alive {
		g.alive = run % streakLength
	} else {
		g.dead = run % streakLength
	}
	return g, nil
}

// Next draws one random boolean, appends the resulting primary outcome to the
// history and applies the streak rules. The registered observer, if any, is
// notified with the primary outcome once all state changes are done. Next
// returns the primary outcome, which is always Alive or Dead.
func (g *Generator) Next() State {
	var x State
	if g.src.Bool() {
		x = Alive
		g.alive++
		g.dead = 0
	} else {
		x = Dead
		g.dead++
		g.alive = 0
	}
	g.values = append(g.values, x)

	// The alive rule wins if both counters ever reach the streak length.
	if g.alive == streakLength {
		g.inject()
		g.alive = 0
	} else if g.dead == streakLength {
		g.kill()
		g.dead = 0
	}

	if g.observer != nil {
		g.observer(x)
	}
	return x
}

// OnCreation registers fn as the observer of primary outcomes, replacing any
// previously registered observer. A nil fn removes the observer.
func (g *Generator) OnCreation(fn func(State)) {
	g.observer = fn
}

// Sequence returns a copy of the full history.
func (g *Generator) Sequence() []State {
	if len(g.values) == 0 {
		return []State{}
	}
	return slices.Clone(g.values)
}

// Len returns the length of the history.
func (g *Generator) Len() int {
	return len(g.values)
}

// At returns the state at index i. The second return value is false if i is
// out of range.
func (g *Generator) At(i int) (State, bool) {
	if i < 0 || i >= len(g.values) {
		return 0, false
	}
	return g.values[i], true
}

// Streaks returns the current alive and dead streak counters.
func (g *Generator) Streaks() (alive, dead uint) {
	return g.alive, g.dead
}

// Reset clears the history, the streak counters and the statistics. The
// source and the observer are kept.
func (g *Generator) Reset() {
	g.values = nil
	g.lives = nil
	g.alive, g.dead = 0, 0
	g.injections, g.kills = 0, 0
}

// inject appends a Life entry.
func (g *Generator) inject() {
	g.lives = append(g.lives, len(g.values))
	g.values = append(g.values, Life)
	g.injections++
}

// kill overwrites the most recent Life entry with Dead. It does nothing if
// the history holds no Life entry.
func (g *Generator) kill() {
	n := len(g.lives)
	if n == 0 {
		return
	}
	g.values[g.lives[n-1]] = Dead
	g.lives = g.lives[:n-1]
	g.kills++
}

// indexLives rebuilds the index of Life entries from the history.
func (g *Generator) indexLives() {
	g.lives = g.lives[:0]
	for i, x := range g.values {
		if x == Life {
			g.lives = append(g.lives, i)
		}
	}
}

// clone returns a copy of g drawing from src. The observer is not copied.
func (g *Generator) clone(src Source) *Generator {
	return &Generator{
		src:        src,
		values:     slices.Clone(g.values),
		lives:      slices.Clone(g.lives),
		alive:      g.alive,
		dead:       g.dead,
		injections: g.injections,
		kills:      g.kills,
	}
}
