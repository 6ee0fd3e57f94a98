package association

import (
	"context"
	"fmt"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/report"
	"github.com/gtex/mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

func GetEqtlGenesHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetEqtlGenes(ctx, request, deps)
	}
}

func handleGetEqtlGenes(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args GetEqtlGenesInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "get_eqtl_genes", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	page, itemsPerPage := tools.PageDefaults(args.Page, args.ItemsPerPage, gtex.DefaultItemsPerPage)

	query := gtex.Query{}.
		AddAll("tissueSiteDetailId", args.TissueSiteDetailIds).
		Add("datasetId", tools.OrDefault(args.DatasetId, gtex.DefaultDatasetID)).
		AddInt("page", page).
		AddInt("itemsPerPage", itemsPerPage)

	result, err := deps.GTEx.Get(ctx, gtex.PathEqtlGenes, query)
	if err != nil {
		deps.Log.Error("eGene lookup failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No eGene data found%s.",
			report.FilterClause("tissues", args.TissueSiteDetailIds))), nil
	}

	pipeline := report.Pipeline[gtex.Record]{
		GroupKey: func(rec gtex.Record) string {
			return report.TissueDisplayName(rec.String("tissueSiteDetailId"))
		},
		Less: func(a, b gtex.Record) bool { return a.Float("qValue") < b.Float("qValue") },
		TopN: 10,
		Header: func(key string, items []gtex.Record) string {
			return fmt.Sprintf("%s - %d eGene(s):", key, len(items))
		},
		Item: func(rank int, rec gtex.Record) string {
			return fmt.Sprintf("  %d. %s: q-value=%.2e p-value=%.2e",
				rank, report.GeneLabel(rec.String("geneSymbol"), rec.String("gencodeId")),
				rec.Float("qValue"), rec.Float("pValue"))
		},
		Summary: func(key string, items []gtex.Record) string {
			significant := 0
			for _, rec := range items {
				if rec.Float("qValue") < 0.05 {
					significant++
				}
			}
			return fmt.Sprintf("  %d of %d eGenes significant at q<0.05", significant, len(items))
		},
	}

	body := report.AppendPagingNote(pipeline.Render(result.Records), len(result.Records), result.Paging)
	return mcp.NewToolResultText(body), nil
}
