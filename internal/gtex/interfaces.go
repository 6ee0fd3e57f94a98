package gtex

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/gtex/mcp/internal/gtex Service

import "context"

// Service is the boundary between the tool handlers and the GTEx API.
// Implementations never panic and never return partial results: a call
// yields either a Result or an error whose message is safe to show to the
// end user verbatim.
type Service interface {
	// Get issues one GET request against the given endpoint path with the
	// given query parameters and decodes the JSON body into Records.
	Get(ctx context.Context, path string, params Query) (*Result, error)
}
