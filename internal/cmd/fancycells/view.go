package fancycells

import (
	"fmt"
	"io"

	"github.com/geofduf/fancy-cells/creature"
)

const (
	listTitle = "Cell contents"
	help      = "press enter to create a creature, or type list, runs, stats, reset, quit"
)

type cellText struct {
	icon        string
	title       string
	description string
}

var cells = map[creature.State]cellText{
	creature.Alive: {"💥", "Alive", "and wriggling!"},
	creature.Dead:  {"💀", "Dead", "or pretending"},
	creature.Life:  {"🐣", "Life", "Peek-a-boo!"},
}

// renderCell returns the one line representation of a creature.
func renderCell(x creature.State) string {
	c, ok := cells[x]
	if !ok {
		return x.String()
	}
	return fmt.Sprintf("%s %s %s", c.icon, c.title, c.description)
}

// renderList writes the creature list, oldest first.
func renderList(w io.Writer, values []creature.State) {
	fmt.Fprintf(w, "%s (%d)\n", listTitle, len(values))
	for i, x := range values {
		fmt.Fprintf(w, "%4d  %s\n", i+1, renderCell(x))
	}
}
