package cli

import (
	"fmt"
	"os"
	"strings"
)

// osExit is a variable that can be mocked in tests
var osExit = os.Exit

const helpText = `gtex-mcp - GTEx Portal Model Context Protocol Server

Usage:
  gtex-mcp [OPTIONS]

Options:
  -h, --help                          Show this help message
  -v, --version                       Show version information
  --gtex-base-url <URL>               GTEx API base URL (overrides env var)
  --gtex-timeout <SECONDS>            GTEx API request timeout (overrides env var)
  --transport <MODE>                  Transport mode: stdio or http (overrides env var)

Optional Environment Variables:
  GTEX_BASE_URL                  GTEx API base URL (default: https://gtexportal.org/api/v2)
  GTEX_HTTP_TIMEOUT_SECONDS      GTEx API request timeout in seconds (default: 30)
  GTEX_LOG_LEVEL                 Log level (default: info)
  GTEX_LOG_FORMAT                Log format: text or json (default: text)
  GTEX_TRANSPORT_MODE            Transport mode: stdio or http (default: stdio)
  GTEX_MCP_HTTP_HOST             HTTP server host (default: 127.0.0.1)
  GTEX_MCP_HTTP_PORT             HTTP server port (default: 80, 443 with TLS)
  GTEX_MCP_HTTP_ALLOWED_ORIGINS  Comma-separated CORS origins

Examples:
  # Using defaults against the public GTEx Portal API
  gtex-mcp

  # Using CLI flags (takes precedence over environment variables)
  gtex-mcp --gtex-base-url https://gtexportal.org/api/v2 --transport http

For more information, visit: https://github.com/gtex/mcp
`

/*
Example walkthrough for argument parsing:

gtex-mcp --gtex-base-url https://gtexportal.org/api/v2 --transport http

os.Args:
- os.Args[0] = "gtex-mcp"
- os.Args[1] = "--gtex-base-url"
- os.Args[2] = "https://gtexportal.org/api/v2"
- os.Args[3] = "--transport"
- os.Args[4] = "http"

As the loop processes:
1. i=1: Matches case "--gtex-base-url" → i += 2 → i=3 (skips the URL value)
2. i=3: Matches case "--transport" → i += 2 → i=5 (skips the "http" value)
3. i=5: Loop ends

This allows the arguments to "pass through" untouched so that flag.Parse() in main.go can later handle them properly.
*/

// HandleArgs processes command-line arguments for version and help flags.
// It exits the program after displaying the requested information.
// If unknown flags are encountered, it prints an error message and exits.
// Known configuration flags are skipped to allow the flag package to handle them.
func HandleArgs(version string) {
	if len(os.Args) <= 1 {
		return
	}

	flags := make(map[string]bool)
	var err error
	i := 1 // we start from 1 because os.Args[0] is the program name ("gtex-mcp") - not a flag

	for i < len(os.Args) {
		arg := os.Args[i]
		switch arg {
		case "-h", "--help":
			flags["help"] = true
			i++
		case "-v", "--version":
			flags["version"] = true
			i++
		// Allow configuration flags to be parsed by the flag package
		case "--gtex-base-url", "--gtex-timeout", "--transport":
			// Check if there's a value following the flag
			if i+1 >= len(os.Args) {
				err = fmt.Errorf("%s requires a value", arg)
				break
			}
			// Check if next argument is another flag (starts with --)
			nextArg := os.Args[i+1]
			if strings.HasPrefix(nextArg, "--") {
				err = fmt.Errorf("%s requires a value (got flag %s instead)", arg, nextArg)
				break
			}
			// Safe to skip flag and value - let flag package handle them
			i += 2
		default:
			if arg == "--" {
				// Stop processing our flags, let flag package handle the rest
				i = len(os.Args) // Exit the loop
				break
			}
			err = fmt.Errorf("unknown flag or argument: %s", arg)
			i++
		}
		// Exit loop if an error occurred
		if err != nil {
			break
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		osExit(1)
	}

	if flags["help"] {
		fmt.Print(helpText)
		osExit(0)
	}

	if flags["version"] {
		fmt.Printf("gtex-mcp version: %s\n", version)
		osExit(0)
	}
}
