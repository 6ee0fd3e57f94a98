package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Per-operation maximums for id-list parameters. Exceeding one is not an
// error: the tool returns an advisory text result instructing the caller to
// reduce the list, and issues no network call.
const (
	MaxExpressionGenes  = 60
	MaxGeneInfoIDs      = 50
	MaxClusteringGenes  = 20
	MaxCorrelationGenes = 10
	MinComparisonGenes  = 2
)

// RequireIDList validates a required id-list parameter. It returns a non-nil
// result when the handler should return early: an error-flagged result when
// the list is missing or empty, or an advisory plain-text result when it
// exceeds max. A max of 0 disables the quota check.
func RequireIDList(name string, ids []string, noun string, max int) *mcp.CallToolResult {
	if len(ids) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("Parameter %q is required and must be a non-empty array of IDs", name))
	}
	if max > 0 && len(ids) > max {
		return mcp.NewToolResultText(fmt.Sprintf(
			"Maximum %d %s allowed per query, but %d were provided. Please reduce the list and try again.",
			max, noun, len(ids)))
	}
	return nil
}

// RequireString validates a required scalar string parameter.
func RequireString(name, value string) *mcp.CallToolResult {
	if value == "" {
		return mcp.NewToolResultError(fmt.Sprintf("Parameter %q is required and must be a non-empty string", name))
	}
	return nil
}

// InternalError wraps an unexpected fault during grouping or formatting into
// an error-flagged result naming the operation; faults are never allowed to
// escape a handler as a raw error.
func InternalError(operation string, err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("Internal error in %s: %v", operation, err))
}

// OrDefault substitutes the documented default for an unset optional
// string parameter.
func OrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// PageDefaults applies the shared pagination defaults. itemsPerPage of 0
// selects the operation default.
func PageDefaults(page, itemsPerPage, defaultItems int) (int, int) {
	if page < 0 {
		page = 0
	}
	if itemsPerPage <= 0 {
		itemsPerPage = defaultItems
	}
	return page, itemsPerPage
}
