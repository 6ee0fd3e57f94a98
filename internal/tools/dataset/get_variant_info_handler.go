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

func GetVariantInfoHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetVariantInfo(ctx, request, deps)
	}
}

func handleGetVariantInfo(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args GetVariantInfoInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "get_variant_info", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if args.VariantId == "" && args.SnpId == "" && args.Chromosome == "" {
		return mcp.NewToolResultError("At least one of variantId, snpId or chromosome is required"), nil
	}
	page, itemsPerPage := tools.PageDefaults(args.Page, args.ItemsPerPage, gtex.DefaultItemsPerPage)

	query := gtex.Query{}.
		Add("variantId", args.VariantId).
		Add("snpId", args.SnpId).
		Add("chromosome", args.Chromosome)
	for _, pos := range args.Pos {
		query = query.AddInt("pos", pos)
	}
	query = query.
		Add("datasetId", tools.OrDefault(args.DatasetId, gtex.DefaultDatasetID)).
		AddInt("page", page).
		AddInt("itemsPerPage", itemsPerPage)

	result, err := deps.GTEx.Get(ctx, gtex.PathVariant, query)
	if err != nil {
		deps.Log.Error("variant lookup failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		queried := args.VariantId
		if queried == "" {
			queried = args.SnpId
		}
		if queried == "" {
			queried = args.Chromosome
		}
		return mcp.NewToolResultText(fmt.Sprintf("No variant found for %s.", queried)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "GTEx variants (%d result(s)):\n", len(result.Records))
	for _, rec := range result.Records {
		b.WriteByte('\n')
		b.WriteString(formatVariant(rec))
	}

	body := report.AppendPagingNote(b.String(), len(result.Records), result.Paging)
	return mcp.NewToolResultText(body), nil
}

func formatVariant(rec gtex.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", rec.String("variantId"))
	if snp := rec.String("snpId"); snp != "" {
		fmt.Fprintf(&b, "  rsID: %s\n", snp)
	}
	fmt.Fprintf(&b, "  Position: %s:%d (%s)\n", rec.String("chromosome"), rec.Int("pos"), gtex.DefaultGenomeBuild)
	if ref := rec.String("ref"); ref != "" {
		fmt.Fprintf(&b, "  Alleles: %s > %s\n", ref, rec.String("alt"))
	}
	if rec.Has("maf01") {
		fmt.Fprintf(&b, "  MAF >= 1%%: %v\n", rec.Bool("maf01"))
	}
	if rec.Has("b37VariantId") {
		fmt.Fprintf(&b, "  GRCh37 ID: %s\n", rec.String("b37VariantId"))
	}
	return strings.TrimRight(b.String(), "\n")
}
