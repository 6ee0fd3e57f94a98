package config

import (
	"crypto/tls"
	"fmt"
	"log"
	"os"
	"slices"
	"strconv"

	"github.com/gtex/mcp/internal/logger"
)

type TransportMode string

const (
	// DefaultBaseURL is the public GTEx Portal API v2 root.
	DefaultBaseURL = "https://gtexportal.org/api/v2"
	// DefaultHTTPTimeoutSeconds bounds each outgoing GTEx API request.
	DefaultHTTPTimeoutSeconds int           = 30
	TransportModeStdio        TransportMode = "stdio"
	TransportModeHTTP         TransportMode = "http"
)

// ValidTransportModes defines the allowed transport mode values
var ValidTransportModes = []TransportMode{TransportModeStdio, TransportModeHTTP}

// Config holds the application configuration
type Config struct {
	BaseURL            string // GTEx Portal API base URL
	HTTPTimeoutSeconds int    // Timeout for outgoing GTEx API requests
	LogLevel           string
	LogFormat          string
	TransportMode      TransportMode // MCP Transport mode (e.g., "stdio", "http")
	HTTPPort           string        // HTTP server port (default: "443" with TLS, "80" without TLS)
	HTTPHost           string        // HTTP server host (default: "127.0.0.1")
	HTTPAllowedOrigins string        // Comma-separated list of allowed CORS origins (optional, "*" for all)
	HTTPTLSEnabled     bool          // If true, enables TLS/HTTPS for HTTP server (default: false)
	HTTPTLSCertFile    string        // Path to TLS certificate file (required if HTTPTLSEnabled is true)
	HTTPTLSKeyFile     string        // Path to TLS private key file (required if HTTPTLSEnabled is true)
	MCPVersion         string        // MCP version string
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("configuration is required but was nil")
	}

	if c.BaseURL == "" {
		return fmt.Errorf("GTEx API base URL is required but was empty")
	}

	if c.HTTPTimeoutSeconds <= 0 {
		return fmt.Errorf("HTTP timeout must be a positive number of seconds, got %d", c.HTTPTimeoutSeconds)
	}

	// Default to stdio if not provided (maintains backward compatibility with tests constructing Config directly)
	if c.TransportMode == "" {
		c.TransportMode = TransportModeStdio
	}

	// Validate transport mode
	if !slices.Contains(ValidTransportModes, c.TransportMode) {
		return fmt.Errorf("invalid transport mode '%s', must be one of %v", c.TransportMode, ValidTransportModes)
	}

	// For HTTP mode with TLS enabled, require certificate and key files
	if c.TransportMode == TransportModeHTTP && c.HTTPTLSEnabled {
		if c.HTTPTLSCertFile == "" {
			return fmt.Errorf("TLS certificate file is required when TLS is enabled (set GTEX_MCP_HTTP_TLS_CERT_FILE)")
		}
		if c.HTTPTLSKeyFile == "" {
			return fmt.Errorf("TLS key file is required when TLS is enabled (set GTEX_MCP_HTTP_TLS_KEY_FILE)")
		}

		// Validate that certificate and key files exist and are valid
		// This provides early, clear error messages before attempting to start the server
		if _, err := tls.LoadX509KeyPair(c.HTTPTLSCertFile, c.HTTPTLSKeyFile); err != nil {
			return fmt.Errorf("failed to load TLS certificate and key: %w", err)
		}
	}

	return nil
}

// CLIOverrides holds optional configuration values from CLI flags
type CLIOverrides struct {
	BaseURL        string
	Timeout        string
	TransportMode  string
	Port           string
	Host           string
	AllowedOrigins string
	TLSEnabled     string
	TLSCertFile    string
	TLSKeyFile     string
}

// LoadConfig loads configuration from environment variables, applies CLI overrides, and validates.
// CLI flag values take precedence over environment variables.
// Returns an error if required configuration is missing or invalid.
func LoadConfig(cliOverrides *CLIOverrides) (*Config, error) {
	logLevel := GetEnvWithDefault("GTEX_LOG_LEVEL", "info")
	logFormat := GetEnvWithDefault("GTEX_LOG_FORMAT", "text")

	// Validate log level and use default if invalid
	if !slices.Contains(logger.ValidLogLevels, logLevel) {
		fmt.Fprintf(os.Stderr, "Warning: invalid GTEX_LOG_LEVEL '%s', using default 'info'. Valid values: %v\n", logLevel, logger.ValidLogLevels)
		logLevel = "info"
	}

	// Validate log format and use default if invalid
	if !slices.Contains(logger.ValidLogFormats, logFormat) {
		fmt.Fprintf(os.Stderr, "Warning: invalid GTEX_LOG_FORMAT '%s', using default 'text'. Valid values: %v\n", logFormat, logger.ValidLogFormats)
		logFormat = "text"
	}

	cfg := &Config{
		BaseURL:            GetEnvWithDefault("GTEX_BASE_URL", DefaultBaseURL),
		HTTPTimeoutSeconds: ParseInt(GetEnv("GTEX_HTTP_TIMEOUT_SECONDS"), DefaultHTTPTimeoutSeconds),
		LogLevel:           logLevel,
		LogFormat:          logFormat,
		TransportMode:      GetTransportModeWithDefault("GTEX_TRANSPORT_MODE", TransportModeStdio),
		HTTPPort:           GetEnv("GTEX_MCP_HTTP_PORT"), // Default set after TLS determination
		HTTPHost:           GetEnvWithDefault("GTEX_MCP_HTTP_HOST", "127.0.0.1"),
		HTTPAllowedOrigins: GetEnv("GTEX_MCP_HTTP_ALLOWED_ORIGINS"),
		HTTPTLSEnabled:     ParseBool(GetEnv("GTEX_MCP_HTTP_TLS_ENABLED"), false),
		HTTPTLSCertFile:    GetEnv("GTEX_MCP_HTTP_TLS_CERT_FILE"),
		HTTPTLSKeyFile:     GetEnv("GTEX_MCP_HTTP_TLS_KEY_FILE"),
	}

	// Apply CLI overrides if provided
	if cliOverrides != nil {
		if cliOverrides.BaseURL != "" {
			cfg.BaseURL = cliOverrides.BaseURL
		}
		if cliOverrides.Timeout != "" {
			cfg.HTTPTimeoutSeconds = ParseInt(cliOverrides.Timeout, DefaultHTTPTimeoutSeconds)
		}
		if cliOverrides.TransportMode != "" {
			cfg.TransportMode = TransportMode(cliOverrides.TransportMode)
		}
		if cliOverrides.Port != "" {
			cfg.HTTPPort = cliOverrides.Port
		}
		if cliOverrides.Host != "" {
			cfg.HTTPHost = cliOverrides.Host
		}
		if cliOverrides.AllowedOrigins != "" {
			cfg.HTTPAllowedOrigins = cliOverrides.AllowedOrigins
		}
		if cliOverrides.TLSEnabled != "" {
			cfg.HTTPTLSEnabled = ParseBool(cliOverrides.TLSEnabled, false)
		}
		if cliOverrides.TLSCertFile != "" {
			cfg.HTTPTLSCertFile = cliOverrides.TLSCertFile
		}
		if cliOverrides.TLSKeyFile != "" {
			cfg.HTTPTLSKeyFile = cliOverrides.TLSKeyFile
		}
	}

	// Set default HTTP port based on TLS configuration if not explicitly provided
	// Default to 443 for HTTPS, 80 for HTTP
	if cfg.HTTPPort == "" {
		if cfg.HTTPTLSEnabled {
			cfg.HTTPPort = "443"
		} else {
			cfg.HTTPPort = "80"
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetEnv returns the value of an environment variable or empty string if not set
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvWithDefault returns the value of an environment variable or a default value
func GetEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetTransportModeWithDefault returns the value of an environment variable or a default value
func GetTransportModeWithDefault(key string, defaultValue TransportMode) TransportMode {
	if value := os.Getenv(key); value != "" {
		return TransportMode(value)
	}
	return defaultValue
}

// ParseBool parses a string to bool using strconv.ParseBool.
// Returns the default value if the string is empty or invalid.
// Logs a warning if the value is non-empty but invalid.
// Accepts: "1", "t", "T", "true", "True", "TRUE" for true
//
//	"0", "f", "F", "false", "False", "FALSE" for false
func ParseBool(value string, defaultValue bool) bool {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Warning: Invalid boolean value %q, using default: %v", value, defaultValue)
		return defaultValue
	}
	return parsed
}

// ParseInt parses a string to int.
// Returns the default value if the string is empty or invalid.
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: Invalid integer value %q, using default: %v", value, defaultValue)
		return defaultValue
	}
	return parsed
}
