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

const defaultNeighborWindow = 1000000

func GetNeighborGenesHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetNeighborGenes(ctx, request, deps)
	}
}

func handleGetNeighborGenes(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args GetNeighborGenesInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "get_neighbor_genes", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if res := tools.RequireString("chromosome", args.Chromosome); res != nil {
		return res, nil
	}
	if args.Position <= 0 {
		return mcp.NewToolResultError("Parameter \"position\" is required and must be a positive integer"), nil
	}
	window := args.Window
	if window <= 0 {
		window = defaultNeighborWindow
	}
	page, itemsPerPage := tools.PageDefaults(args.Page, args.ItemsPerPage, gtex.DefaultItemsPerPage)

	query := gtex.Query{}.
		Add("chromosome", args.Chromosome).
		AddInt("pos", args.Position).
		AddInt("bp_window", window).
		AddInt("page", page).
		AddInt("itemsPerPage", itemsPerPage)

	result, err := deps.GTEx.Get(ctx, gtex.PathNeighborGene, query)
	if err != nil {
		deps.Log.Error("neighbor gene lookup failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No genes found within %d bp of %s:%d.", window, args.Chromosome, args.Position)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Genes within %d bp of %s:%d (%d found):\n",
		window, args.Chromosome, args.Position, len(result.Records))
	for _, rec := range result.Records {
		fmt.Fprintf(&b, "\n%s\n", report.GeneLabel(rec.String("geneSymbol"), rec.String("gencodeId")))
		fmt.Fprintf(&b, "  Type: %s\n", rec.String("geneType"))
		fmt.Fprintf(&b, "  Location: %s:%d-%d (%s strand)\n",
			rec.String("chromosome"), rec.Int("start"), rec.Int("end"), rec.String("strand"))
	}

	body := report.AppendPagingNote(strings.TrimRight(b.String(), "\n"), len(result.Records), result.Paging)
	return mcp.NewToolResultText(body), nil
}
