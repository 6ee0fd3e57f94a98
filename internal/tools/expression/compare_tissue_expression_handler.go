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

func CompareTissueExpressionHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleCompareTissueExpression(ctx, request, deps)
	}
}

func handleCompareTissueExpression(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args CompareTissueExpressionInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "compare_tissue_expression", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	for _, p := range []struct{ name, value string }{
		{"gencodeId", args.GencodeId},
		{"tissueGroup1", args.TissueGroup1},
		{"tissueGroup2", args.TissueGroup2},
	} {
		if res := tools.RequireString(p.name, p.value); res != nil {
			return res, nil
		}
	}

	query := gtex.Query{}.
		Add("gencodeId", args.GencodeId).
		Add("datasetId", tools.OrDefault(args.DatasetId, gtex.DefaultDatasetID)).
		AddInt("page", gtex.DefaultPage).
		AddInt("itemsPerPage", gtex.DefaultItemsPerPage)

	result, err := deps.GTEx.Get(ctx, gtex.PathMedianGeneExpression, query)
	if err != nil {
		deps.Log.Error("median expression lookup for comparison failed", "gencodeId", args.GencodeId, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No median expression data found for %s.", args.GencodeId)), nil
	}

	groups := []string{args.TissueGroup1, args.TissueGroup2}
	byGroup := map[string][]gtex.Record{}
	for _, rec := range result.Records {
		if group, ok := matchTissueGroup(rec.String("tissueSiteDetailId"), groups); ok {
			byGroup[group] = append(byGroup[group], rec)
		}
	}
	for _, group := range groups {
		if len(byGroup[group]) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf(
				"No tissues matched group %q for gene %s. Group names match tissue identifiers by substring (e.g. brain / heart / muscle / skin / liver).",
				group, args.GencodeId)), nil
		}
	}

	gene := report.GeneLabel(result.Records[0].String("geneSymbol"), args.GencodeId)
	mean1 := groupMean(byGroup[args.TissueGroup1])
	mean2 := groupMean(byGroup[args.TissueGroup2])
	fold := stats.FoldChange(mean1, mean2)
	log2Fold := stats.Log2FoldChange(mean1, mean2)

	direction := fmt.Sprintf("Higher in %s", args.TissueGroup1)
	if mean2 > mean1 {
		direction = fmt.Sprintf("Higher in %s", args.TissueGroup2)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Differential expression of %s:\n", gene)
	writeGroupSection(&b, args.TissueGroup1, byGroup[args.TissueGroup1], mean1)
	writeGroupSection(&b, args.TissueGroup2, byGroup[args.TissueGroup2], mean2)
	fmt.Fprintf(&b, "\nFold change (%s / %s): %.2f\n", args.TissueGroup1, args.TissueGroup2, fold)
	fmt.Fprintf(&b, "Log2 fold change: %.2f\n", log2Fold)
	fmt.Fprintf(&b, "Direction: %s", direction)

	return mcp.NewToolResultText(b.String()), nil
}

func groupMean(records []gtex.Record) float64 {
	medians := make([]float64, 0, len(records))
	for _, rec := range records {
		medians = append(medians, rec.Float("median"))
	}
	return stats.Basic(medians).Mean
}

func writeGroupSection(b *strings.Builder, group string, records []gtex.Record, mean float64) {
	fmt.Fprintf(b, "\nGroup %q (%d tissue(s), mean median TPM %.2f):\n", group, len(records), mean)
	for _, rec := range records {
		fmt.Fprintf(b, "  - %s: %.2f\n",
			report.TissueDisplayName(rec.String("tissueSiteDetailId")), rec.Float("median"))
	}
}
