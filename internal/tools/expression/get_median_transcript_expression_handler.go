package expression

import (
	"context"
	"fmt"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/report"
	"github.com/gtex/mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

func GetMedianTranscriptExpressionHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetMedianTranscriptExpression(ctx, request, deps)
	}
}

func handleGetMedianTranscriptExpression(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args GetMedianTranscriptExpressionInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "get_median_transcript_expression", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if res := tools.RequireString("gencodeId", args.GencodeId); res != nil {
		return res, nil
	}
	page, itemsPerPage := tools.PageDefaults(args.Page, args.ItemsPerPage, gtex.DefaultItemsPerPage)

	query := gtex.Query{}.
		Add("gencodeId", args.GencodeId).
		AddAll("tissueSiteDetailId", args.TissueSiteDetailIds).
		Add("datasetId", tools.OrDefault(args.DatasetId, gtex.DefaultDatasetID)).
		AddInt("page", page).
		AddInt("itemsPerPage", itemsPerPage)

	result, err := deps.GTEx.Get(ctx, gtex.PathMedianTranscriptExpression, query)
	if err != nil {
		deps.Log.Error("median transcript expression lookup failed", "gencodeId", args.GencodeId, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No transcript expression data found for %s%s.",
			args.GencodeId,
			report.FilterClause("tissues", args.TissueSiteDetailIds))), nil
	}

	pipeline := report.Pipeline[gtex.Record]{
		GroupKey: func(rec gtex.Record) string {
			return report.TissueDisplayName(rec.String("tissueSiteDetailId"))
		},
		Less: func(a, b gtex.Record) bool { return a.Float("median") > b.Float("median") },
		TopN: 5,
		Header: func(key string, items []gtex.Record) string {
			return fmt.Sprintf("%s - %d transcript(s):", key, len(items))
		},
		Item: func(rank int, rec gtex.Record) string {
			return fmt.Sprintf("  %d. %s: %.2f %s",
				rank, rec.String("transcriptId"), rec.Float("median"),
				tools.OrDefault(rec.String("unit"), "TPM"))
		},
		Summary: func(key string, items []gtex.Record) string {
			total := 0.0
			for _, rec := range items {
				total += rec.Float("median")
			}
			dominant := 0.0
			if total > 0 {
				// items are sorted descending by the pipeline before summary
				dominant = items[0].Float("median") / total * 100
			}
			return fmt.Sprintf("  Dominant transcript accounts for %.1f%% of transcript expression", dominant)
		},
	}

	gene := report.GeneLabel(result.Records[0].String("geneSymbol"), args.GencodeId)
	body := fmt.Sprintf("Median transcript expression for %s:\n\n%s", gene, pipeline.Render(result.Records))
	body = report.AppendPagingNote(body, len(result.Records), result.Paging)
	return mcp.NewToolResultText(body), nil
}
