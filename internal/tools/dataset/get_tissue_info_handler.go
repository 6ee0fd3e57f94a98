package dataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/report"
	"github.com/gtex/mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

func GetTissueInfoHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetTissueInfo(ctx, request, deps)
	}
}

func handleGetTissueInfo(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args GetTissueInfoInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "get_tissue_info", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	page, itemsPerPage := tools.PageDefaults(args.Page, args.ItemsPerPage, gtex.DefaultItemsPerPage)

	query := gtex.Query{}.
		AddAll("tissueSiteDetailId", args.TissueSiteDetailIds).
		Add("datasetId", tools.OrDefault(args.DatasetId, gtex.DefaultDatasetID)).
		AddInt("page", page).
		AddInt("itemsPerPage", itemsPerPage)

	result, err := deps.GTEx.Get(ctx, gtex.PathTissueSiteDetail, query)
	if err != nil {
		deps.Log.Error("tissue info lookup failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No tissue information found%s.",
			report.FilterClause("tissues", args.TissueSiteDetailIds))), nil
	}

	totalSamples := 0
	var b strings.Builder
	fmt.Fprintf(&b, "GTEx tissue site details (%d tissue(s)):\n", len(result.Records))
	for _, rec := range result.Records {
		sampleCount := rec.Int("rnaSeqSampleCount")
		totalSamples += sampleCount
		fmt.Fprintf(&b, "\n%s (%s)\n", report.TissueDisplayName(rec.String("tissueSiteDetailId")), rec.String("tissueSiteDetailId"))
		fmt.Fprintf(&b, "  RNA-seq samples: %d", sampleCount)
		if rec.Has("rnaSeqAndGenotypeSampleCount") {
			fmt.Fprintf(&b, " (%d with genotype)", rec.Int("rnaSeqAndGenotypeSampleCount"))
		}
		b.WriteByte('\n')
		fmt.Fprintf(&b, "  Has eGenes: %v, has sGenes: %v\n", rec.Bool("hasEGenes"), rec.Bool("hasSGenes"))
		if site := rec.String("samplingSite"); site != "" {
			fmt.Fprintf(&b, "  Sampling site: %s\n", site)
		}
	}
	fmt.Fprintf(&b, "\nTotal RNA-seq samples across listed tissues: %d", totalSamples)

	body := report.AppendPagingNote(b.String(), len(result.Records), result.Paging)
	return mcp.NewToolResultText(body), nil
}
