package dataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

func GetServiceInfoHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetServiceInfo(ctx, request, deps)
	}
}

func handleGetServiceInfo(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	result, err := deps.GTEx.Get(ctx, gtex.PathServiceInfo, nil)
	if err != nil {
		deps.Log.Error("service info lookup failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText("No service information returned by the GTEx API."), nil
	}
	info := result.Records[0]

	var b strings.Builder
	b.WriteString("GTEx Portal API service information:\n")
	if id := info.String("id"); id != "" {
		fmt.Fprintf(&b, "  ID: %s\n", id)
	}
	if name := info.String("name"); name != "" {
		fmt.Fprintf(&b, "  Name: %s\n", name)
	}
	if version := info.String("version"); version != "" {
		fmt.Fprintf(&b, "  Version: %s\n", version)
	}
	if env := info.String("environment"); env != "" {
		fmt.Fprintf(&b, "  Environment: %s\n", env)
	}
	if org, ok := info["organization"].(map[string]any); ok {
		if name, ok := org["name"].(string); ok && name != "" {
			fmt.Fprintf(&b, "  Organization: %s\n", name)
		}
	}
	fmt.Fprintf(&b, "  Default dataset: %s (GENCODE %s, %s)",
		gtex.DefaultDatasetID, gtex.DefaultGencodeVersion, gtex.DefaultGenomeBuild)

	return mcp.NewToolResultText(b.String()), nil
}
