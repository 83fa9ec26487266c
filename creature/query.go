package creature

import "golang.org/x/exp/slices"

// A Run is a series of consecutive identical states.
type Run struct {
	State State
	Count int
}

// A Summary holds aggregated figures about a Generator.
type Summary struct {
	Length       int
	Alive        int
	Dead         int
	Life         int
	Injections   int // Life entries appended since creation or reset
	Kills        int // Life entries overwritten since creation or reset
	LongestAlive int // longest run of Alive entries in the history
	LongestDead  int // longest run of Dead entries in the history
}

// Query returns the states stored in the history using start and end as
// closed interval filter on indices. The method returns an error if the
// interval filter and the history don't overlap.
func (g *Generator) Query(start, end int) ([]State, error) {
	if start > end {
		return nil, ErrInvalidArguments
	}
	if len(g.values) == 0 {
		return nil, ErrOutOfBounds
	}
	r, ok := g.interval().intersect(interval{start: start, end: end})
	if !ok {
		return nil, ErrOutOfBounds
	}
	return slices.Clone(g.values[r.start : r.end+1]), nil
}

// Runs returns the history collapsed into runs of identical states.
func (g *Generator) Runs() []Run {
	return runsOf(g.values)
}

// Summary returns aggregated figures about the history.
func (g *Generator) Summary() Summary {
	s := Summary{
		Length:     len(g.values),
		Injections: int(g.injections),
		Kills:      int(g.kills),
	}
	for _, r := range runsOf(g.values) {
		switch r.State {
		case Alive:
			s.Alive += r.Count
			if r.Count > s.LongestAlive {
				s.LongestAlive = r.Count
			}
		case Dead:
			s.Dead += r.Count
			if r.Count > s.LongestDead {
				s.LongestDead = r.Count
			}
		case Life:
			s.Life += r.Count
		}
	}
	return s
}

// interval returns the closed index interval covered by the history.
func (g *Generator) interval() interval {
	return interval{start: 0, end: len(g.values) - 1}
}

// runsOf collapses values into runs of identical states.
func runsOf(values []State) []Run {
	runs := []Run{}
	for _, x := range values {
		if n := len(runs); n > 0 && runs[n-1].State == x {
			runs[n-1].Count++
			continue
		}
		runs = append(runs, Run{State: x, Count: 1})
	}
	return runs
}
