package association

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/report"
	"github.com/gtex/mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// Fine-mapping rows are grouped two levels deep: by gene, then by a
// composite tissue+method key, then bucketed into credible sets. The
// credible-set size shown in the summary is the set's declared size from the
// API, not the visible member count, which may be smaller after truncation.
const fineMappingTopVariants = 5

func GetFineMappingHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetFineMapping(ctx, request, deps)
	}
}

func handleGetFineMapping(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args GetFineMappingInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "get_fine_mapping", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if res := tools.RequireIDList("gencodeIds", args.GencodeIds, "genes", 0); res != nil {
		return res, nil
	}
	page, itemsPerPage := tools.PageDefaults(args.Page, args.ItemsPerPage, gtex.DefaultItemsPerPage)

	query := gtex.Query{}.
		AddAll("gencodeId", args.GencodeIds).
		Add("variantId", args.VariantId).
		Add("datasetId", tools.OrDefault(args.DatasetId, gtex.DefaultDatasetID)).
		AddInt("page", page).
		AddInt("itemsPerPage", itemsPerPage)

	result, err := deps.GTEx.Get(ctx, gtex.PathFineMapping, query)
	if err != nil {
		deps.Log.Error("fine mapping lookup failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No fine mapping data found for %s.", strings.Join(args.GencodeIds, ", "))), nil
	}

	var b strings.Builder
	byGene := report.GroupBy(result.Records, func(rec gtex.Record) string {
		return report.GeneLabel(rec.String("geneSymbol"), rec.String("gencodeId"))
	})
	for gi, gene := range byGene.Keys() {
		if gi > 0 {
			b.WriteString("\n")
		}
		geneRows := byGene.Get(gene)
		fmt.Fprintf(&b, "%s - fine mapping (%d variant record(s)):\n", gene, len(geneRows))

		byContext := report.GroupBy(geneRows, func(rec gtex.Record) string {
			return rec.String("tissueSiteDetailId") + "_" + rec.String("method")
		})
		for _, contextKey := range byContext.Keys() {
			contextRows := byContext.Get(contextKey)
			first := contextRows[0]
			fmt.Fprintf(&b, "\n  %s [%s]:\n",
				report.TissueDisplayName(first.String("tissueSiteDetailId")), first.String("method"))
			writeCredibleSets(&b, contextRows)
		}
	}

	body := report.AppendPagingNote(strings.TrimRight(b.String(), "\n"), len(result.Records), result.Paging)
	return mcp.NewToolResultText(body), nil
}

func writeCredibleSets(b *strings.Builder, rows []gtex.Record) {
	bySet := report.GroupBy(rows, func(rec gtex.Record) string {
		return rec.String("credibleSetId")
	})
	for _, setID := range bySet.Keys() {
		members := bySet.Get(setID)
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Float("pip") > members[j].Float("pip")
		})

		totalPip := 0.0
		for _, rec := range members {
			totalPip += rec.Float("pip")
		}
		declaredSize := members[0].Int("credibleSetSize")

		fmt.Fprintf(b, "    Credible set %s (declared size %d, total PIP %.3f):\n",
			setID, declaredSize, totalPip)
		shown := members
		if len(members) > fineMappingTopVariants {
			shown = members[:fineMappingTopVariants]
		}
		for i, rec := range shown {
			fmt.Fprintf(b, "      %d. %s: PIP=%.3f\n", i+1, rec.String("variantId"), rec.Float("pip"))
		}
		if remaining := len(members) - len(shown); remaining > 0 {
			fmt.Fprintf(b, "      ... and %d more\n", remaining)
		}
	}
}
