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

func SearchGenesHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleSearchGenes(ctx, request, deps)
	}
}

func handleSearchGenes(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args SearchGenesInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "search_genes", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if res := tools.RequireString("query", args.Query); res != nil {
		return res, nil
	}
	page, itemsPerPage := tools.PageDefaults(args.Page, args.ItemsPerPage, gtex.DefaultItemsPerPage)

	query := gtex.Query{}.
		Add("geneId", args.Query).
		Add("gencodeVersion", tools.OrDefault(args.GencodeVersion, gtex.DefaultGencodeVersion)).
		Add("genomeBuild", tools.OrDefault(args.GenomeBuild, gtex.DefaultGenomeBuild)).
		AddInt("page", page).
		AddInt("itemsPerPage", itemsPerPage)

	result, err := deps.GTEx.Get(ctx, gtex.PathGeneSearch, query)
	if err != nil {
		deps.Log.Error("gene search failed", "query", args.Query, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No genes found matching %q.", args.Query)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d gene(s) matching %q:\n", len(result.Records), args.Query)
	for _, rec := range result.Records {
		fmt.Fprintf(&b, "\n%s\n", report.GeneLabel(rec.String("geneSymbol"), rec.String("gencodeId")))
		fmt.Fprintf(&b, "  Type: %s\n", rec.String("geneType"))
		fmt.Fprintf(&b, "  Location: %s:%d-%d (%s)\n",
			rec.String("chromosome"), rec.Int("start"), rec.Int("end"), rec.String("strand"))
		if desc := rec.String("description"); desc != "" {
			fmt.Fprintf(&b, "  Description: %s\n", desc)
		}
	}

	body := report.AppendPagingNote(strings.TrimRight(b.String(), "\n"), len(result.Records), result.Paging)
	return mcp.NewToolResultText(body), nil
}
