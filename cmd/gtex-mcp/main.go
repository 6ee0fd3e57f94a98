package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/gtex/mcp/internal/cli"
	"github.com/gtex/mcp/internal/config"
	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/logger"
	"github.com/gtex/mcp/internal/server"
)

// Version is set at build time via -ldflags "-X main.Version=..."
var Version = "dev"

func main() {
	// Handle help/version flags and validate the argument list before the
	// flag package parses configuration values.
	cli.HandleArgs(Version)

	baseURL := flag.String("gtex-base-url", "", "GTEx API base URL (overrides GTEX_BASE_URL)")
	timeout := flag.String("gtex-timeout", "", "GTEx API request timeout in seconds (overrides GTEX_HTTP_TIMEOUT_SECONDS)")
	transport := flag.String("transport", "", "Transport mode: stdio or http (overrides GTEX_TRANSPORT_MODE)")
	flag.Parse()

	cfg, err := config.LoadConfig(&config.CLIOverrides{
		BaseURL:       *baseURL,
		Timeout:       *timeout,
		TransportMode: *transport,
	})
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// MCP stdio uses stdout for the protocol stream, so logs go to stderr.
	appLogger := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	gtexService := gtex.NewService(cfg.BaseURL, time.Duration(cfg.HTTPTimeoutSeconds)*time.Second, appLogger)

	mcpServer, err := server.NewGTExMCPServer(Version, cfg, gtexService, appLogger)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	defer func() {
		if err := mcpServer.Stop(context.Background()); err != nil {
			appLogger.Error("Error stopping server", "error", err)
		}
	}()

	// Start the server (this blocks until the server is stopped)
	if err := mcpServer.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
