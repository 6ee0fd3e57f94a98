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

func GetGeneInfoHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetGeneInfo(ctx, request, deps)
	}
}

func handleGetGeneInfo(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args GetGeneInfoInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "get_gene_info", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if res := tools.RequireIDList("geneIds", args.GeneIds, "genes", tools.MaxGeneInfoIDs); res != nil {
		return res, nil
	}
	page, itemsPerPage := tools.PageDefaults(args.Page, args.ItemsPerPage, gtex.DefaultItemsPerPage)

	query := gtex.Query{}.
		AddAll("geneId", args.GeneIds).
		Add("gencodeVersion", tools.OrDefault(args.GencodeVersion, gtex.DefaultGencodeVersion)).
		Add("genomeBuild", tools.OrDefault(args.GenomeBuild, gtex.DefaultGenomeBuild)).
		AddInt("page", page).
		AddInt("itemsPerPage", itemsPerPage)

	result, err := deps.GTEx.Get(ctx, gtex.PathGene, query)
	if err != nil {
		deps.Log.Error("gene info lookup failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No gene information found for: %s", strings.Join(args.GeneIds, ", "))), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Gene information (%d gene(s)):\n", len(result.Records))
	for _, rec := range result.Records {
		fmt.Fprintf(&b, "\n%s\n", report.GeneLabel(rec.String("geneSymbol"), rec.String("gencodeId")))
		fmt.Fprintf(&b, "  Type: %s\n", rec.String("geneType"))
		fmt.Fprintf(&b, "  Location: %s:%d-%d (%s strand)\n",
			rec.String("chromosome"), rec.Int("start"), rec.Int("end"), rec.String("strand"))
		fmt.Fprintf(&b, "  TSS: %d\n", rec.Int("tss"))
		if desc := rec.String("description"); desc != "" {
			fmt.Fprintf(&b, "  Description: %s\n", desc)
		}
	}

	body := report.AppendPagingNote(strings.TrimRight(b.String(), "\n"), len(result.Records), result.Paging)
	return mcp.NewToolResultText(body), nil
}
