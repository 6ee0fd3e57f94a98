package association

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/report"
	"github.com/gtex/mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

func GetSingleTissueEqtlsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetSingleTissueEqtls(ctx, request, deps)
	}
}

func handleGetSingleTissueEqtls(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args GetSingleTissueEqtlsInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "get_single_tissue_eqtls", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(args.GencodeIds) == 0 && args.VariantId == "" {
		return mcp.NewToolResultError(
			"At least one of \"gencodeIds\" (non-empty array) or \"variantId\" (string) is required"), nil
	}
	page, itemsPerPage := tools.PageDefaults(args.Page, args.ItemsPerPage, gtex.DefaultItemsPerPage)

	query := gtex.Query{}.
		AddAll("gencodeId", args.GencodeIds).
		Add("variantId", args.VariantId).
		AddAll("tissueSiteDetailId", args.TissueSiteDetailIds).
		Add("datasetId", tools.OrDefault(args.DatasetId, gtex.DefaultDatasetID)).
		AddInt("page", page).
		AddInt("itemsPerPage", itemsPerPage)

	result, err := deps.GTEx.Get(ctx, gtex.PathSingleTissueEqtl, query)
	if err != nil {
		deps.Log.Error("single-tissue eQTL lookup failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		filters := args.GencodeIds
		if args.VariantId != "" {
			filters = append(filters, args.VariantId)
		}
		return mcp.NewToolResultText(fmt.Sprintf(
			"No eQTL data found for %s%s.",
			strings.Join(filters, ", "),
			report.FilterClause("tissues", args.TissueSiteDetailIds))), nil
	}

	pipeline := report.Pipeline[gtex.Record]{
		GroupKey: func(rec gtex.Record) string {
			return report.GeneLabel(rec.String("geneSymbol"), rec.String("gencodeId"))
		},
		Less: func(a, b gtex.Record) bool { return a.Float("pValue") < b.Float("pValue") },
		TopN: 10,
		Header: func(key string, items []gtex.Record) string {
			return fmt.Sprintf("%s - %d eQTL(s):", key, len(items))
		},
		Item: func(rank int, rec gtex.Record) string {
			return fmt.Sprintf("  %d. %s in %s: p=%.2e NES=%.3f",
				rank, rec.String("variantId"),
				report.TissueDisplayName(rec.String("tissueSiteDetailId")),
				rec.Float("pValue"), rec.Float("nes"))
		},
		Summary: func(key string, items []gtex.Record) string {
			sumAbsNes := 0.0
			for _, rec := range items {
				sumAbsNes += math.Abs(rec.Float("nes"))
			}
			return fmt.Sprintf("  Mean |NES| across associations: %.3f", sumAbsNes/float64(len(items)))
		},
	}

	body := report.AppendPagingNote(pipeline.Render(result.Records), len(result.Records), result.Paging)
	return mcp.NewToolResultText(body), nil
}
