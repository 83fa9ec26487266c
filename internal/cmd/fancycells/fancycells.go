// Package fancycells parses demo command flags and runs the interactive
// creature list.
package fancycells

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/geofduf/fancy-cells/creature"
	"github.com/geofduf/fancy-cells/internal/config"
)

// Config holds demo command configuration.
type Config struct {
	Seed  int64 `env:"FANCY_CELLS_SEED"`
	Auto  int   `env:"FANCY_CELLS_AUTO"`
	Quiet bool  `env:"FANCY_CELLS_QUIET"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducibility (0 = random)")
	fs.IntVar(&cfg.Auto, "auto", cfg.Auto, "create this many creatures, print the list and exit")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "do not announce each created creature")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Auto < 0 {
		return Config{}, fmt.Errorf("auto must be non-negative, got %d", cfg.Auto)
	}
	return cfg, nil
}

// Run creates a generator from cfg and forwards user commands read from in.
// Output is written to out. Run returns when in is exhausted, on quit, or
// when ctx is done.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	seed := cfg.Seed
	if seed == 0 {
		var err error
		if seed, err = creature.NewSeed(); err != nil {
			return err
		}
	}
	log.Printf("using seed %d", seed)

	g := creature.NewGenerator(creature.NewRandSource(seed))
	if !cfg.Quiet {
		g.OnCreation(func(x creature.State) {
			fmt.Fprintf(out, "+ %s\n", renderCell(x))
		})
	}

	if cfg.Auto > 0 {
		for i := 0; i < cfg.Auto; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			g.Next()
		}
		renderList(out, g.Sequence())
		return nil
	}

	fmt.Fprintln(out, help)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch cmd := strings.ToLower(strings.TrimSpace(scanner.Text())); cmd {
		case "", "c", "create":
			g.Next()
		case "l", "list":
			renderList(out, g.Sequence())
		case "runs":
			fmt.Fprintf(out, "%s\n", creature.SerializeRuns(g.Runs()))
		case "stats":
			fmt.Fprintf(out, "%s\n", g.Summary().Serialize())
		case "reset":
			g.Reset()
		case "q", "quit", "exit":
			return nil
		default:
			fmt.Fprintf(out, "unknown command %q\n%s\n", cmd, help)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}
