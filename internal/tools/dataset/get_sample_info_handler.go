package dataset

import (
	"context"
	"fmt"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/report"
	"github.com/gtex/mcp/internal/stats"
	"github.com/gtex/mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

const sampleExamplesPerTissue = 3

func GetSampleInfoHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetSampleInfo(ctx, request, deps)
	}
}

func handleGetSampleInfo(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args GetSampleInfoInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "get_sample_info", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	page, itemsPerPage := tools.PageDefaults(args.Page, args.ItemsPerPage, defaultSampleItemsPerPage)

	query := gtex.Query{}.
		AddAll("tissueSiteDetailId", args.TissueSiteDetailIds).
		AddAll("subjectId", args.SubjectIds).
		Add("datasetId", tools.OrDefault(args.DatasetId, gtex.DefaultDatasetID)).
		AddInt("page", page).
		AddInt("itemsPerPage", itemsPerPage)

	result, err := deps.GTEx.Get(ctx, gtex.PathSample, query)
	if err != nil {
		deps.Log.Error("sample lookup failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No sample information found%s.",
			report.FilterClause("tissues", args.TissueSiteDetailIds))), nil
	}

	pipeline := report.Pipeline[gtex.Record]{
		GroupKey: func(rec gtex.Record) string {
			return rec.String("tissueSiteDetailId")
		},
		TopN: sampleExamplesPerTissue,
		Header: func(tissue string, records []gtex.Record) string {
			return fmt.Sprintf("%s: %d sample(s)", report.TissueDisplayName(tissue), len(records))
		},
		Item: func(_ int, rec gtex.Record) string {
			line := fmt.Sprintf("  %s", rec.String("sampleId"))
			if t := rec.Float("ischemicTime"); t != 0 {
				line += fmt.Sprintf(", ischemic time %.0f min", t)
			}
			if rin := rec.Float("rin"); rin != 0 {
				line += fmt.Sprintf(", RIN %.1f", rin)
			}
			if site := rec.String("dataType"); site != "" {
				line += fmt.Sprintf(", %s", site)
			}
			return line
		},
		Summary: func(_ string, records []gtex.Record) string {
			var rins []float64
			for _, rec := range records {
				if rin := rec.Float("rin"); rin > 0 {
					rins = append(rins, rin)
				}
			}
			if len(rins) == 0 {
				return ""
			}
			summary := stats.Basic(rins)
			return fmt.Sprintf("  Mean RIN: %.2f (range %.1f-%.1f)", summary.Mean, summary.Min, summary.Max)
		},
	}

	body := fmt.Sprintf("GTEx sample information (%d sample(s)):\n\n%s",
		len(result.Records), pipeline.Render(result.Records))
	body = report.AppendPagingNote(body, len(result.Records), result.Paging)
	return mcp.NewToolResultText(body), nil
}
