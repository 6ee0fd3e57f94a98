package expression

import (
	"context"
	"fmt"
	"strings"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/report"
	"github.com/gtex/mcp/internal/stats"
	"github.com/gtex/mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

func GetMedianGeneExpressionHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetMedianGeneExpression(ctx, request, deps)
	}
}

func handleGetMedianGeneExpression(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args GetMedianGeneExpressionInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "get_median_gene_expression", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if res := tools.RequireIDList("gencodeIds", args.GencodeIds, "genes", tools.MaxExpressionGenes); res != nil {
		return res, nil
	}
	page, itemsPerPage := tools.PageDefaults(args.Page, args.ItemsPerPage, gtex.DefaultItemsPerPage)

	query := gtex.Query{}.
		AddAll("gencodeId", args.GencodeIds).
		AddAll("tissueSiteDetailId", args.TissueSiteDetailIds).
		Add("datasetId", tools.OrDefault(args.DatasetId, gtex.DefaultDatasetID)).
		AddInt("page", page).
		AddInt("itemsPerPage", itemsPerPage)

	result, err := deps.GTEx.Get(ctx, gtex.PathMedianGeneExpression, query)
	if err != nil {
		deps.Log.Error("median gene expression lookup failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No median gene expression data found for %s%s.",
			strings.Join(args.GencodeIds, ", "),
			report.FilterClause("tissues", args.TissueSiteDetailIds))), nil
	}

	pipeline := report.Pipeline[gtex.Record]{
		GroupKey: func(rec gtex.Record) string {
			return report.GeneLabel(rec.String("geneSymbol"), rec.String("gencodeId"))
		},
		Less: func(a, b gtex.Record) bool { return a.Float("median") > b.Float("median") },
		TopN: 10,
		Header: func(key string, items []gtex.Record) string {
			return fmt.Sprintf("%s - median expression in %d tissue(s):", key, len(items))
		},
		Item: func(rank int, rec gtex.Record) string {
			return fmt.Sprintf("  %d. %s: %.2f %s",
				rank, report.TissueDisplayName(rec.String("tissueSiteDetailId")),
				rec.Float("median"), tools.OrDefault(rec.String("unit"), "TPM"))
		},
		Summary: func(key string, items []gtex.Record) string {
			medians := make([]float64, 0, len(items))
			for _, rec := range items {
				medians = append(medians, rec.Float("median"))
			}
			s := stats.Expression(medians)
			return fmt.Sprintf("  Across tissues: mean=%.2f median=%.2f range=%.2f-%.2f, expressed in %d/%d tissues (%.1f%%)",
				s.Mean, s.Median, s.Min, s.Max, s.NonZeroCount, s.Count, s.NonZeroPercent)
		},
	}

	body := report.AppendPagingNote(pipeline.Render(result.Records), len(result.Records), result.Paging)
	return mcp.NewToolResultText(body), nil
}
