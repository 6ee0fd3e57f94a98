package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/gtex/mcp/internal/config"
	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/logger"
)

const (
	httpReadHeaderTimeout = 10 * time.Second
	httpShutdownTimeout   = 5 * time.Second
	mcpEndpointPath       = "/mcp"
)

// GTExMCPServer represents the MCP server instance
type GTExMCPServer struct {
	mcpServer   *server.MCPServer
	httpServer  *http.Server
	config      *config.Config
	gtexService gtex.Service
	log         *logger.Service
	version     string
}

// NewGTExMCPServer creates a new MCP server instance.
// The config parameter is expected to be already validated.
func NewGTExMCPServer(version string, cfg *config.Config, gtexService gtex.Service, log *logger.Service) (*GTExMCPServer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required but was nil")
	}
	if gtexService == nil {
		return nil, fmt.Errorf("GTEx API service is required but was nil")
	}

	s := &GTExMCPServer{
		config:      cfg,
		gtexService: gtexService,
		log:         log,
		version:     version,
	}

	hooks := &server.Hooks{}
	hooks.AddAfterSetLevel(s.onAfterSetLevelHook)

	s.mcpServer = server.NewMCPServer(
		"gtex-mcp",
		version,
		server.WithToolCapabilities(true),
		server.WithLogging(),
		server.WithHooks(hooks),
		server.WithInstructions("This server exposes the GTEx Portal API as tools for querying human gene expression, "+
			"eQTL and sQTL associations, variants, tissues, samples and donors across GTEx dataset releases."),
	)

	return s, nil
}

// Start initializes and starts the MCP server using the configured transport
func (s *GTExMCPServer) Start() error {
	s.log.Info("Starting GTEx MCP Server", "transport", s.config.TransportMode, "version", s.version)

	if err := s.RegisterTools(); err != nil {
		return fmt.Errorf("failed to register tools: %w", err)
	}

	switch s.config.TransportMode {
	case config.TransportModeHTTP:
		return s.startHTTP()
	case config.TransportModeStdio:
		s.log.Info("Started GTEx MCP Server. Now listening for input...")
		return server.ServeStdio(s.mcpServer)
	default:
		return fmt.Errorf("unsupported transport mode: %s", s.config.TransportMode)
	}
}

// startHTTP initializes and starts the HTTP server
func (s *GTExMCPServer) startHTTP() error {
	addr := fmt.Sprintf("%s:%s", s.config.HTTPHost, s.config.HTTPPort)

	streamable := server.NewStreamableHTTPServer(
		s.mcpServer,
		server.WithEndpointPath(mcpEndpointPath),
		server.WithStateLess(true),
	)

	mux := http.NewServeMux()
	mux.Handle(mcpEndpointPath, streamable)

	var allowedOrigins []string
	if s.config.HTTPAllowedOrigins != "" {
		for _, origin := range strings.Split(s.config.HTTPAllowedOrigins, ",") {
			allowedOrigins = append(allowedOrigins, strings.TrimSpace(origin))
		}
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           chainMiddleware(s.log, allowedOrigins, mux),
		ReadHeaderTimeout: httpReadHeaderTimeout,
	}

	scheme := "http"
	if s.config.HTTPTLSEnabled {
		scheme = "https"
	}
	s.log.Info("Started GTEx MCP HTTP Server",
		"url", fmt.Sprintf("%s://%s%s", scheme, addr, mcpEndpointPath),
		"allowed_origins", len(allowedOrigins),
	)

	if s.config.HTTPTLSEnabled {
		return s.httpServer.ListenAndServeTLS(s.config.HTTPTLSCertFile, s.config.HTTPTLSKeyFile)
	}
	return s.httpServer.ListenAndServe()
}

// Stop gracefully stops the server
func (s *GTExMCPServer) Stop(ctx context.Context) error {
	s.log.Info("Stopping GTEx MCP Server...")
	if s.httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, httpShutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
	// Stdio transport has no resources to release beyond process exit.
	return nil
}
