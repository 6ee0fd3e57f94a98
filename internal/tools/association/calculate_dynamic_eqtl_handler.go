package association

import (
	"context"
	"fmt"
	"strings"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/report"
	"github.com/gtex/mcp/internal/stats"
	"github.com/gtex/mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

func CalculateDynamicEqtlHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleCalculateDynamicEqtl(ctx, request, deps)
	}
}

func handleCalculateDynamicEqtl(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args CalculateDynamicEqtlInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "calculate_dynamic_eqtl", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	for _, p := range []struct{ name, value string }{
		{"gencodeId", args.GencodeId},
		{"variantId", args.VariantId},
		{"tissueSiteDetailId", args.TissueSiteDetailId},
	} {
		if res := tools.RequireString(p.name, p.value); res != nil {
			return res, nil
		}
	}

	query := gtex.Query{}.
		Add("gencodeId", args.GencodeId).
		Add("variantId", args.VariantId).
		Add("tissueSiteDetailId", args.TissueSiteDetailId).
		Add("datasetId", tools.OrDefault(args.DatasetId, gtex.DefaultDatasetID))

	result, err := deps.GTEx.Get(ctx, gtex.PathDynamicEqtl, query)
	if err != nil {
		deps.Log.Error("dynamic eQTL calculation failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No dynamic eQTL result for %s / %s in tissue: %s.",
			args.GencodeId, args.VariantId, args.TissueSiteDetailId)), nil
	}

	rec := result.Records[0]
	if apiErr := rec.String("error"); apiErr != "" {
		return mcp.NewToolResultText(fmt.Sprintf(
			"The GTEx API could not compute this eQTL: %s", apiErr)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Dynamic eQTL for %s x %s in %s:\n",
		args.GencodeId, args.VariantId, report.TissueDisplayName(args.TissueSiteDetailId))
	fmt.Fprintf(&b, "  p-value: %.2e\n", rec.Float("pValue"))
	if rec.Has("pValueThreshold") {
		fmt.Fprintf(&b, "  p-value threshold: %.2e\n", rec.Float("pValueThreshold"))
	}
	fmt.Fprintf(&b, "  NES: %.3f\n", rec.Float("nes"))
	if rec.Has("maf") {
		fmt.Fprintf(&b, "  Minor allele frequency: %.3f\n", rec.Float("maf"))
	}
	if rec.Has("homoRefCount") || rec.Has("hetCount") || rec.Has("homoAltCount") {
		fmt.Fprintf(&b, "  Genotype counts: %d homozygous ref / %d heterozygous / %d homozygous alt\n",
			rec.Int("homoRefCount"), rec.Int("hetCount"), rec.Int("homoAltCount"))
	}
	if data := rec.Floats("data"); len(data) > 0 {
		s := stats.Expression(data)
		fmt.Fprintf(&b, "  Expression across %d samples: mean=%.2f median=%.2f range=%.2f-%.2f\n",
			s.Count, s.Mean, s.Median, s.Min, s.Max)
	}

	significance := "not significant at the per-gene threshold"
	if rec.Has("pValueThreshold") && rec.Float("pValue") <= rec.Float("pValueThreshold") {
		significance = "significant at the per-gene threshold"
	}
	fmt.Fprintf(&b, "  Assessment: %s", significance)

	return mcp.NewToolResultText(b.String()), nil
}
