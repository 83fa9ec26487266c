/*
Package creature implements the creature sequence generator of Fancy Cells.
It defines the type Generator, with methods for growing and querying a history
of creature states, and the type Store, with methods for interacting with a
collection of generators.

Each call to Generator.Next draws one fair random boolean and appends the
resulting primary outcome to the history:

	true  -> Alive
	false -> Dead

Three consecutive Alive outcomes append a Life entry right after the third one.
Three consecutive Dead outcomes overwrite the most recent Life entry, if any,
with Dead. Both streak counters are reset once their rule fires.

Creature states are represented as uint8 and fit in 2 bits:

	const (
	  Alive State = iota // 0b00
	  Dead               // 0b01
	  Life               // 0b10
	)

The history can be exported as []byte using a run-length encoding, easing
integration with storage systems.

A Generator is not safe for concurrent use. A Store is essentially a wrapper
around a map of generators that provides convenience methods safe to use from
multiple goroutines.
*/
package creature
