package expression

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/report"
	"github.com/gtex/mcp/internal/stats"
	"github.com/gtex/mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

const defaultTopExpressedItems = 50

func GetTopExpressedGenesHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetTopExpressedGenes(ctx, request, deps)
	}
}

func handleGetTopExpressedGenes(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args GetTopExpressedGenesInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "get_top_expressed_genes", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if res := tools.RequireString("tissueSiteDetailId", args.TissueSiteDetailId); res != nil {
		return res, nil
	}
	filterMt := true
	if args.FilterMtGene != nil {
		filterMt = *args.FilterMtGene
	}
	page, itemsPerPage := tools.PageDefaults(args.Page, args.ItemsPerPage, defaultTopExpressedItems)

	query := gtex.Query{}.
		Add("tissueSiteDetailId", args.TissueSiteDetailId).
		Add("filterMtGene", strconv.FormatBool(filterMt)).
		Add("datasetId", tools.OrDefault(args.DatasetId, gtex.DefaultDatasetID)).
		AddInt("page", page).
		AddInt("itemsPerPage", itemsPerPage)

	result, err := deps.GTEx.Get(ctx, gtex.PathTopExpressedGene, query)
	if err != nil {
		deps.Log.Error("top expressed genes lookup failed", "tissue", args.TissueSiteDetailId, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No top expressed gene data found in tissue: %s.", args.TissueSiteDetailId)), nil
	}

	pipeline := report.Pipeline[gtex.Record]{
		GroupKey: func(gtex.Record) string {
			return report.TissueDisplayName(args.TissueSiteDetailId)
		},
		Less: func(a, b gtex.Record) bool { return a.Float("median") > b.Float("median") },
		Header: func(key string, items []gtex.Record) string {
			return fmt.Sprintf("Top expressed genes in %s (%d shown):", key, len(items))
		},
		Item: func(rank int, rec gtex.Record) string {
			return fmt.Sprintf("  %d. %s: %.2f %s",
				rank, report.GeneLabel(rec.String("geneSymbol"), rec.String("gencodeId")),
				rec.Float("median"), tools.OrDefault(rec.String("unit"), "TPM"))
		},
		Summary: func(key string, items []gtex.Record) string {
			medians := make([]float64, 0, len(items))
			for _, rec := range items {
				medians = append(medians, rec.Float("median"))
			}
			s := stats.Basic(medians)
			return fmt.Sprintf("  Median TPM across shown genes: mean=%.2f range=%.2f-%.2f", s.Mean, s.Min, s.Max)
		},
	}

	body := report.AppendPagingNote(pipeline.Render(result.Records), len(result.Records), result.Paging)
	return mcp.NewToolResultText(body), nil
}
