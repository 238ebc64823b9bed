// Package main provides the entry point for the MCP tool-surface binary.
//
// It exposes the same command set (submit, cycle, info, save, load, reset)
// as cmd/reasoner's NAVM shell, but as MCP tools over stdio, for hosts that
// drive the reasoner as a Model Context Protocol server rather than a
// line-oriented shell.
package main

import (
	"context"
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/narust/reasoner/internal/command"
	"github.com/narust/reasoner/internal/config"
	"github.com/narust/reasoner/internal/reasoner"
	"github.com/narust/reasoner/internal/status"
)

func main() {
	if os.Getenv("DEBUG") == "true" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.Println("Starting reasoner MCP server in debug mode...")
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

	toolServer := NewToolServer(dispatcher)
	log.Println("Created tool server")

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "narust-reasoner",
		Version: "1.0.0",
	}, nil)
	log.Println("Created MCP server")

	toolServer.RegisterTools(mcpServer)
	log.Println("Registered tools: submit, cycle, info, save, load, reset")

	transport := &mcp.StdioTransport{}
	log.Println("Created stdio transport")

	ctx := context.Background()
	log.Println("Starting MCP server...")
	if err := mcpServer.Run(ctx, transport); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func newStore(cfg *config.Config) (status.Store, error) {
	switch cfg.Storage.Type {
	case "sqlite":
		return status.NewSQLiteStore(cfg.Storage.SQLitePath)
	default:
		return status.NewMemoryStore(), nil
	}
}
