package dataset

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/report"
	"github.com/gtex/mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

func GetBiobankSamplesHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetBiobankSamples(ctx, request, deps)
	}
}

func handleGetBiobankSamples(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args GetBiobankSamplesInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "get_biobank_samples", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	page, itemsPerPage := tools.PageDefaults(args.Page, args.ItemsPerPage, defaultSampleItemsPerPage)

	query := gtex.Query{}.
		AddAll("materialType", args.MaterialTypes).
		AddAll("tissueSiteDetailId", args.TissueSiteDetailIds).
		Add("sex", args.Sex).
		Add("ageBracket", args.AgeBracket)
	if args.HasExpressionData != nil {
		query = query.Add("hasExpressionData", strconv.FormatBool(*args.HasExpressionData))
	}
	if args.HasGenotype != nil {
		query = query.Add("hasGenotype", strconv.FormatBool(*args.HasGenotype))
	}
	query = query.
		AddInt("page", page).
		AddInt("itemsPerPage", itemsPerPage)

	result, err := deps.GTEx.Get(ctx, gtex.PathBiobankSample, query)
	if err != nil {
		deps.Log.Error("biobank sample search failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No biobank samples found%s.",
			report.FilterClause("material types", args.MaterialTypes))), nil
	}

	pipeline := report.Pipeline[gtex.Record]{
		GroupKey: func(rec gtex.Record) string {
			return tools.OrDefault(rec.String("materialType"), "unknown material")
		},
		TopN: sampleExamplesPerTissue,
		Header: func(material string, records []gtex.Record) string {
			return fmt.Sprintf("%s: %d sample(s)", material, len(records))
		},
		Item: func(_ int, rec gtex.Record) string {
			line := fmt.Sprintf("  %s", rec.String("sampleId"))
			if tissue := rec.String("tissueSiteDetailId"); tissue != "" {
				line += fmt.Sprintf(", %s", report.TissueDisplayName(tissue))
			}
			if rec.Bool("hasGenotype") {
				line += ", genotyped"
			}
			return line
		},
		Summary: func(_ string, records []gtex.Record) string {
			genotyped := 0
			for _, rec := range records {
				if rec.Bool("hasGenotype") {
					genotyped++
				}
			}
			if genotyped == 0 {
				return ""
			}
			return fmt.Sprintf("  With genotype data: %d of %d", genotyped, len(records))
		},
	}

	body := fmt.Sprintf("GTEx biobank samples (%d sample(s)):\n\n%s",
		len(result.Records), pipeline.Render(result.Records))
	body = report.AppendPagingNote(body, len(result.Records), result.Paging)
	return mcp.NewToolResultText(body), nil
}
