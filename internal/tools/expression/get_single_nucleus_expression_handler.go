package expression

import (
	"context"
	"fmt"
	"strings"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/report"
	"github.com/gtex/mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// cellTypeRow flattens one (gene, tissue, cell type) entry of the nested
// single-nucleus response.
type cellTypeRow struct {
	geneLabel string
	tissueID  string
	cellType  string
	mean      float64
	cellCount int
}

func GetSingleNucleusExpressionHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetSingleNucleusExpression(ctx, request, deps)
	}
}

func handleGetSingleNucleusExpression(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args GetSingleNucleusExpressionInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "get_single_nucleus_expression", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if res := tools.RequireIDList("gencodeIds", args.GencodeIds, "genes", tools.MaxExpressionGenes); res != nil {
		return res, nil
	}
	page, itemsPerPage := tools.PageDefaults(args.Page, args.ItemsPerPage, gtex.DefaultItemsPerPage)

	query := gtex.Query{}.
		AddAll("gencodeId", args.GencodeIds).
		AddAll("tissueSiteDetailId", args.TissueSiteDetailIds).
		Add("datasetId", tools.OrDefault(args.DatasetId, snRNASeqDatasetID)).
		AddInt("page", page).
		AddInt("itemsPerPage", itemsPerPage)

	result, err := deps.GTEx.Get(ctx, gtex.PathSingleNucleusExpression, query)
	if err != nil {
		deps.Log.Error("single-nucleus expression lookup failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No single-nucleus expression data found for %s%s.",
			strings.Join(args.GencodeIds, ", "),
			report.FilterClause("tissues", args.TissueSiteDetailIds))), nil
	}

	var rows []cellTypeRow
	for _, rec := range result.Records {
		gene := report.GeneLabel(rec.String("geneSymbol"), rec.String("gencodeId"))
		tissue := rec.String("tissueSiteDetailId")
		for _, ct := range rec.Records("cellTypes") {
			rows = append(rows, cellTypeRow{
				geneLabel: gene,
				tissueID:  tissue,
				cellType:  ct.String("cellType"),
				mean:      ct.Float("meanWithZeros"),
				cellCount: ct.Int("count"),
			})
		}
	}
	if len(rows) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No per-cell-type expression entries found for %s%s.",
			strings.Join(args.GencodeIds, ", "),
			report.FilterClause("tissues", args.TissueSiteDetailIds))), nil
	}

	pipeline := report.Pipeline[cellTypeRow]{
		GroupKey: func(r cellTypeRow) string { return r.geneLabel },
		Less:     func(a, b cellTypeRow) bool { return a.mean > b.mean },
		TopN:     10,
		Header: func(key string, items []cellTypeRow) string {
			return fmt.Sprintf("%s - expression across %d cell type entries:", key, len(items))
		},
		Item: func(rank int, r cellTypeRow) string {
			return fmt.Sprintf("  %d. %s / %s: mean=%.3f (%d cells)",
				rank, report.TissueDisplayName(r.tissueID), r.cellType, r.mean, r.cellCount)
		},
		Summary: func(key string, items []cellTypeRow) string {
			total := 0
			for _, r := range items {
				total += r.cellCount
			}
			return fmt.Sprintf("  Total cells measured: %d", total)
		},
	}

	body := report.AppendPagingNote(pipeline.Render(rows), len(result.Records), result.Paging)
	return mcp.NewToolResultText(body), nil
}
