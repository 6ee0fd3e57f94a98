package dataset

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetServiceInfoInput struct{}

func GetServiceInfoSpec() mcp.Tool {
	return mcp.NewTool("get_service_info",
		mcp.WithDescription("Report the GTEx Portal API service name and version and the supported dataset releases."),
		mcp.WithInputSchema[GetServiceInfoInput](),
		mcp.WithTitleAnnotation("Get Service Info"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
