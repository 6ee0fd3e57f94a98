package dataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// Validation issues one lookup per ID, so the quota is tighter than for
// batch endpoints.
const maxValidateVariantIDs = 50

func ValidateVariantIdsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleValidateVariantIds(ctx, request, deps)
	}
}

func handleValidateVariantIds(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args ValidateVariantIdsInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "validate_variant_ids", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if result := tools.RequireIDList("variantIds", args.VariantIds, "variant IDs", maxValidateVariantIDs); result != nil {
		return result, nil
	}
	datasetID := tools.OrDefault(args.DatasetId, gtex.DefaultDatasetID)

	// One lookup per ID, in input order. Lookups are sequential on purpose:
	// the portal rate-limits aggressively and the ID lists here are short.
	var valid, invalid []string
	resolved := map[string]string{}
	for _, id := range args.VariantIds {
		query := gtex.Query{}.Add("datasetId", datasetID)
		if strings.HasPrefix(id, "rs") {
			query = query.Add("snpId", id)
		} else {
			query = query.Add("variantId", id)
		}

		result, err := deps.GTEx.Get(ctx, gtex.PathVariant, query)
		if err != nil {
			deps.Log.Error("variant validation lookup failed", "id", id, "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		if len(result.Records) == 0 {
			invalid = append(invalid, id)
			continue
		}
		valid = append(valid, id)
		if canonical := result.Records[0].String("variantId"); canonical != "" && canonical != id {
			resolved[id] = canonical
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Variant ID validation against %s (%d checked):\n", datasetID, len(args.VariantIds))
	fmt.Fprintf(&b, "\nValid: %d\n", len(valid))
	for _, id := range valid {
		if canonical, ok := resolved[id]; ok {
			fmt.Fprintf(&b, "  %s -> %s\n", id, canonical)
		} else {
			fmt.Fprintf(&b, "  %s\n", id)
		}
	}
	fmt.Fprintf(&b, "\nNot found: %d\n", len(invalid))
	for _, id := range invalid {
		fmt.Fprintf(&b, "  %s\n", id)
	}

	return mcp.NewToolResultText(strings.TrimRight(b.String(), "\n")), nil
}
