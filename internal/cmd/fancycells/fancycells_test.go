package fancycells

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/geofduf/fancy-cells/creature"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("fancycells", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg != (Config{}) {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("FANCY_CELLS_SEED", "99")
	t.Setenv("FANCY_CELLS_QUIET", "true")
	fs := flag.NewFlagSet("fancycells", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed != 99 || !cfg.Quiet {
		t.Fatalf("expected env values, got %+v", cfg)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("FANCY_CELLS_SEED", "99")
	fs := flag.NewFlagSet("fancycells", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-seed", "7", "-auto", "12"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed != 7 || cfg.Auto != 12 {
		t.Fatalf("expected flag overrides, got %+v", cfg)
	}
}

func TestParseConfigErrors(t *testing.T) {
	fs := flag.NewFlagSet("fancycells", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	if _, err := ParseConfig(fs, []string{"-auto", "-1"}); err == nil {
		t.Fatal("expected error for negative auto")
	}
	t.Setenv("FANCY_CELLS_AUTO", "many")
	fs = flag.NewFlagSet("fancycells", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
	if _, err := ParseConfig(nil, nil); err == nil {
		t.Fatal("expected error for nil flag set")
	}
}

func expectedList(seed int64, n int) string {
	g := creature.NewGenerator(creature.NewRandSource(seed))
	for i := 0; i < n; i++ {
		g.Next()
	}
	var buf bytes.Buffer
	renderList(&buf, g.Sequence())
	return buf.String()
}

func TestRunAuto(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Config{Seed: 7, Auto: 20, Quiet: true}, strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got, want := out.String(), expectedList(7, 20); got != want {
		t.Fatalf("\ngot  %s\nwant %s", got, want)
	}
}

func TestRunInteractive(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("\nc\ncreate\nlist\nwhat\nstats\nquit\nc\n")
	if err := Run(context.Background(), Config{Seed: 3}, in, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if n := strings.Count(got, "+ "); n != 3 {
		t.Fatalf("expected 3 creations, got %d in %q", n, got)
	}
	if !strings.Contains(got, expectedList(3, 3)) {
		t.Fatalf("expected list of 3 creatures in %q", got)
	}
	if !strings.Contains(got, `unknown command "what"`) {
		t.Fatalf("expected unknown command message in %q", got)
	}
	if !strings.Contains(got, `"injections":`) {
		t.Fatalf("expected stats in %q", got)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, Config{Seed: 1, Auto: 5}, strings.NewReader(""), &bytes.Buffer{})
	if err != context.Canceled {
		t.Fatalf("expected context canceled, got %v", err)
	}
}

func TestRenderCell(t *testing.T) {
	tests := []struct {
		state creature.State
		want  string
	}{
		{creature.Alive, "💥 Alive and wriggling!"},
		{creature.Dead, "💀 Dead or pretending"},
		{creature.Life, "🐣 Life Peek-a-boo!"},
		{creature.State(9), "State(9)"},
	}
	for _, tt := range tests {
		if got := renderCell(tt.state); got != tt.want {
			t.Fatalf("expected %q, got %q", tt.want, got)
		}
	}
}
