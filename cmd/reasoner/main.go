// Package main provides the entry point for the line-oriented NAVM shell.
//
// It reads one command per line from stdin (NSE, CYC, VOL, RES, REM, INF,
// SAV, LOA, EXI) and writes one tagged output line per record to stdout,
// until EXI or end of input.
//
// Environment variables:
//   - DEBUG: set to "true" to enable debug logging
//   - NARS_*: see internal/config for the full list of overrides
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/narust/reasoner/internal/command"
	"github.com/narust/reasoner/internal/config"
	"github.com/narust/reasoner/internal/reasoner"
	"github.com/narust/reasoner/internal/status"
)

func main() {
	if os.Getenv("DEBUG") == "true" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.Println("Starting reasoner shell in debug mode...")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Println("Loaded configuration")

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize status store: %v", err)
	}
	if closer, ok := store.(interface{ Close() error }); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				log.Printf("Warning: failed to close status store: %v", err)
			}
		}()
	}
	log.Printf("Initialized %s status store", cfg.Storage.Type)

	r := reasoner.New(cfg.ToParameters())
	log.Println("Initialized reasoner")

	dispatcher := command.New(r, store)
	log.Println("Created command dispatcher")

	if cfg.Storage.Neo4jURI != "" {
		exporter, err := status.NewNeo4jExporter(cfg.Storage.Neo4jURI, cfg.Storage.Neo4jUsername, cfg.Storage.Neo4jPassword, cfg.Storage.Neo4jDatabase)
		if err != nil {
			log.Printf("Warning: failed to initialize neo4j exporter: %v", err)
		} else {
			dispatcher.Neo4j = exporter
			defer exporter.Close(context.Background())
			log.Println("Wired neo4j concept-network exporter")
		}
	}

	ctx := context.Background()
	log.Println("Reading NAVM commands from stdin...")
	runShell(ctx, dispatcher, os.Stdin, os.Stdout)
}

func newStore(cfg *config.Config) (status.Store, error) {
	switch cfg.Storage.Type {
	case "sqlite":
		return status.NewSQLiteStore(cfg.Storage.SQLitePath)
	default:
		return status.NewMemoryStore(), nil
	}
}

func runShell(ctx context.Context, d *command.Dispatcher, in *os.File, out *os.File) {
	scanner := bufio.NewScanner(in)
	w := bufio.NewWriter(out)
	defer w.Flush()

	for scanner.Scan() {
		for _, o := range d.Execute(ctx, scanner.Text()) {
			fmt.Fprintf(w, "%s: %s\n", o.Kind, o.Text)
		}
		w.Flush()
		if d.Exit {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("Warning: error reading stdin: %v", err)
	}
}
