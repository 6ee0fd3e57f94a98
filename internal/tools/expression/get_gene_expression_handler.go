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

// expressionRow pairs one gene-by-tissue record with the statistics computed
// over its per-sample TPM values.
type expressionRow struct {
	rec     gtex.Record
	summary stats.ExpressionSummary
}

func GetGeneExpressionHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetGeneExpression(ctx, request, deps)
	}
}

func handleGetGeneExpression(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args GetGeneExpressionInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "get_gene_expression", "error", err)
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

	result, err := deps.GTEx.Get(ctx, gtex.PathGeneExpression, query)
	if err != nil {
		deps.Log.Error("gene expression lookup failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No gene expression data found for %s%s.",
			strings.Join(args.GencodeIds, ", "),
			report.FilterClause("tissues", args.TissueSiteDetailIds))), nil
	}

	rows := make([]expressionRow, 0, len(result.Records))
	for _, rec := range result.Records {
		rows = append(rows, expressionRow{rec: rec, summary: stats.Expression(rec.Floats("data"))})
	}

	pipeline := report.Pipeline[expressionRow]{
		GroupKey: func(r expressionRow) string {
			return report.GeneLabel(r.rec.String("geneSymbol"), r.rec.String("gencodeId"))
		},
		Less: func(a, b expressionRow) bool { return a.summary.Mean > b.summary.Mean },
		TopN: 10,
		Header: func(key string, items []expressionRow) string {
			return fmt.Sprintf("%s - expression in %d tissue(s):", key, len(items))
		},
		Item: func(rank int, r expressionRow) string {
			s := r.summary
			return fmt.Sprintf("  %d. %s: mean=%.2f median=%.2f range=%.2f-%.2f TPM, detected in %d/%d samples (%.1f%%)",
				rank, report.TissueDisplayName(r.rec.String("tissueSiteDetailId")),
				s.Mean, s.Median, s.Min, s.Max, s.NonZeroCount, s.Count, s.NonZeroPercent)
		},
		Summary: func(key string, items []expressionRow) string {
			var all []float64
			for _, r := range items {
				all = append(all, r.rec.Floats("data")...)
			}
			s := stats.Expression(all)
			return fmt.Sprintf("  Overall: mean=%.2f median=%.2f max=%.2f TPM across %d samples",
				s.Mean, s.Median, s.Max, s.Count)
		},
	}

	body := report.AppendPagingNote(pipeline.Render(rows), len(result.Records), result.Paging)
	return mcp.NewToolResultText(body), nil
}
