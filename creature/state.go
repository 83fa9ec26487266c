package creature

import "strconv"

// A State is the state of a creature in a sequence.
type State uint8

// Creature states. Values are chosen to fit in 2 bits.
const (
	Alive   State = iota // 0b00
	Dead                 // 0b01
	Life                 // 0b10
	notUsed              // 0b11
)

var stateNames = [...]string{
	Alive: "alive",
	Dead:  "dead",
	Life:  "life",
}

// Valid reports whether x is one of Alive, Dead or Life.
func (x State) Valid() bool {
	return x < notUsed
}

func (x State) String() string {
	if x.Valid() {
		return stateNames[x]
	}
	return "State(" + strconv.Itoa(int(x)) + ")"
}
