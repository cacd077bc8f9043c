// Command smartgym-mcp serves the workout data to AI assistants over
// MCP stdio. It runs in two modes: local (open the database directly,
// via the same config file as the main server) or remote (talk to a
// running SmartGym server over its REST API).
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Cyb3rh4ck/SmartGym/internal/config"
	"github.com/Cyb3rh4ck/SmartGym/internal/mcp"
	"github.com/Cyb3rh4ck/SmartGym/internal/storage"
	"github.com/Cyb3rh4ck/SmartGym/internal/tracker"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file (local mode)")
	serverURL := flag.String("url", "", "base URL of a running SmartGym server (remote mode)")
	apiKey := flag.String("api-key", "", "API key for mutating tools (remote mode)")
	flag.Parse()

	// Logs go to stderr; stdout carries the MCP protocol.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource
	if *serverURL != "" {
		ds = mcp.NewHTTPClient(*serverURL, *apiKey)
		log.Info("remote mode", "url", *serverURL)
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}

		ctx := context.Background()
		db, err := storage.Open(ctx, cfg.Database.Driver, cfg.Database.DSN())
		if err != nil {
			log.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		tr := tracker.New(db, log)
		if err := tr.Load(ctx); err != nil {
			log.Error("failed to load tracker state", "error", err)
			os.Exit(1)
		}

		ds = mcp.NewLocalSource(tr)
		log.Info("local mode", "driver", cfg.Database.Driver)
	}

	s := mcp.New(ds, Version, log)
	if err := mcpserver.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
