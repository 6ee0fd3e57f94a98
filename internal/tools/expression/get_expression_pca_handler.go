package expression

import (
	"context"
	"fmt"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/report"
	"github.com/gtex/mcp/internal/stats"
	"github.com/gtex/mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

func GetExpressionPcaHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetExpressionPca(ctx, request, deps)
	}
}

func handleGetExpressionPca(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args GetExpressionPcaInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "get_expression_pca", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	page, itemsPerPage := tools.PageDefaults(args.Page, args.ItemsPerPage, gtex.DefaultItemsPerPage)

	query := gtex.Query{}.
		AddAll("tissueSiteDetailId", args.TissueSiteDetailIds).
		Add("datasetId", tools.OrDefault(args.DatasetId, gtex.DefaultDatasetID)).
		AddInt("page", page).
		AddInt("itemsPerPage", itemsPerPage)

	result, err := deps.GTEx.Get(ctx, gtex.PathExpressionPca, query)
	if err != nil {
		deps.Log.Error("expression PCA lookup failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No expression PCA data found%s.",
			report.FilterClause("tissues", args.TissueSiteDetailIds))), nil
	}

	pipeline := report.Pipeline[gtex.Record]{
		GroupKey: func(rec gtex.Record) string {
			return report.TissueDisplayName(rec.String("tissueSiteDetailId"))
		},
		Less: func(a, b gtex.Record) bool { return a.Float("pc1") > b.Float("pc1") },
		TopN: 3,
		Header: func(key string, items []gtex.Record) string {
			return fmt.Sprintf("%s - %d sample(s):", key, len(items))
		},
		Item: func(rank int, rec gtex.Record) string {
			return fmt.Sprintf("  %d. %s: PC1=%.3f PC2=%.3f PC3=%.3f",
				rank, rec.String("sampleId"), rec.Float("pc1"), rec.Float("pc2"), rec.Float("pc3"))
		},
		Summary: func(key string, items []gtex.Record) string {
			var pc1, pc2, pc3 []float64
			for _, rec := range items {
				pc1 = append(pc1, rec.Float("pc1"))
				pc2 = append(pc2, rec.Float("pc2"))
				pc3 = append(pc3, rec.Float("pc3"))
			}
			return fmt.Sprintf("  Centroid: PC1=%.3f PC2=%.3f PC3=%.3f",
				stats.Basic(pc1).Mean, stats.Basic(pc2).Mean, stats.Basic(pc3).Mean)
		},
	}

	body := report.AppendPagingNote(pipeline.Render(result.Records), len(result.Records), result.Paging)
	return mcp.NewToolResultText(body), nil
}
