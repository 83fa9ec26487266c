package creature_test

import (
	"fmt"

	"github.com/geofduf/fancy-cells/creature"
)

func ExampleGenerator_Next() {
	g := creature.NewGenerator(creature.Script(true, true, true, false, false, false))
	g.OnCreation(func(x creature.State) {
		fmt.Println("created", x)
	})

	for i := 0; i < 6; i++ {
		g.Next()
	}
	fmt.Println(g.Sequence())
	// Output:
	// created alive
	// created alive
	// created alive
	// created dead
	// created dead
	// created dead
	// [alive alive alive dead dead dead dead]
}

func ExampleSerializeRuns() {
	g := creature.NewGenerator(creature.Script(true, true, true, false))
	for i := 0; i < 4; i++ {
		g.Next()
	}
	fmt.Printf("%s\n", creature.SerializeRuns(g.Runs()))
	fmt.Printf("%s", g.Summary().Serialize())
	// Output:
	// [{"state":"alive","count":3},{"state":"life","count":1},{"state":"dead","count":1}]
	// {"length":5,"alive":3,"dead":1,"life":1,"injections":1,"kills":0,"longestAlive":3,"longestDead":1}
}
