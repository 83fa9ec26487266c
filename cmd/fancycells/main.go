package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	fancycellscmd "github.com/geofduf/fancy-cells/internal/cmd/fancycells"
)

func main() {
	cfg, err := fancycellscmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[FANCY-CELLS] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fancycellscmd.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("run: %v", err)
	}
}
