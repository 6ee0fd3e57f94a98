package tools

import (
	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/logger"
)

// ToolDependencies contains all dependencies needed by tool handlers.
type ToolDependencies struct {
	GTEx gtex.Service
	Log  *logger.Service
}
