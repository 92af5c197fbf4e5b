// Command runplans-mcp exposes the plan engine to MCP clients over stdio.
// It runs in one of two modes: local (direct database access, same config
// file as the HTTP server) or remote (proxying an already-running server
// over its REST API).
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/herrenbrad/runplans/internal/catalog"
	"github.com/herrenbrad/runplans/internal/config"
	"github.com/herrenbrad/runplans/internal/mcp"
	"github.com/herrenbrad/runplans/internal/storage"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file (local mode)")
	remoteURL := flag.String("remote", "", "base URL of a running server; enables remote mode")
	apiKey := flag.String("api-key", "", "API key for remote mode (or RUNPLANS_API_KEY)")
	overlayPath := flag.String("catalog-overlay", "", "optional workout catalog overlay YAML")
	flag.Parse()

	// Stdout carries the MCP protocol, so logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cat := catalog.Builtin()
	if *overlayPath != "" {
		if err := cat.LoadOverlay(*overlayPath); err != nil {
			log.Error("failed to load catalog overlay", "path", *overlayPath, "error", err)
			os.Exit(1)
		}
	}

	var ds mcp.DataSource

	if *remoteURL != "" {
		key := *apiKey
		if key == "" {
			key = os.Getenv("RUNPLANS_API_KEY")
		}
		if key == "" {
			log.Error("remote mode requires -api-key or RUNPLANS_API_KEY")
			os.Exit(1)
		}
		ds = mcp.NewHTTPClient(*remoteURL, key)
		log.Info("remote mode", "url", *remoteURL)
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}

		db, err := storage.New(context.Background(), cfg.Database.DSN())
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		ds = mcp.NewLocal(db, cat, log)
		log.Info("local mode", "database", cfg.Database.Name)
	}

	srv := mcp.New(ds, cat, Version, log)
	if err := mcpserver.ServeStdio(srv); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
