package gene

import (
	"context"
	"fmt"
	"strings"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/report"
	"github.com/gtex/mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

func GetTranscriptsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetTranscripts(ctx, request, deps)
	}
}

func handleGetTranscripts(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args GetTranscriptsInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "get_transcripts", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if res := tools.RequireString("gencodeId", args.GencodeId); res != nil {
		return res, nil
	}
	page, itemsPerPage := tools.PageDefaults(args.Page, args.ItemsPerPage, gtex.DefaultItemsPerPage)

	query := gtex.Query{}.
		Add("gencodeId", args.GencodeId).
		Add("gencodeVersion", tools.OrDefault(args.GencodeVersion, gtex.DefaultGencodeVersion)).
		Add("genomeBuild", tools.OrDefault(args.GenomeBuild, gtex.DefaultGenomeBuild)).
		AddInt("page", page).
		AddInt("itemsPerPage", itemsPerPage)

	result, err := deps.GTEx.Get(ctx, gtex.PathTranscript, query)
	if err != nil {
		deps.Log.Error("transcript lookup failed", "gencodeId", args.GencodeId, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No transcripts found for gene %s.", args.GencodeId)), nil
	}

	var b strings.Builder
	geneLabel := report.GeneLabel(result.Records[0].String("geneSymbol"), args.GencodeId)
	fmt.Fprintf(&b, "Transcripts of %s (%d total):\n", geneLabel, len(result.Records))
	for _, rec := range result.Records {
		fmt.Fprintf(&b, "\n%s\n", rec.String("transcriptId"))
		fmt.Fprintf(&b, "  Location: %s:%d-%d (%s strand)\n",
			rec.String("chromosome"), rec.Int("start"), rec.Int("end"), rec.String("strand"))
	}

	body := report.AppendPagingNote(strings.TrimRight(b.String(), "\n"), len(result.Records), result.Paging)
	return mcp.NewToolResultText(body), nil
}
