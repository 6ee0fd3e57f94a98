package association

import (
	"context"
	"fmt"
	"sort"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/report"
	"github.com/gtex/mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// tissueEffect is one tissue's entry of a METASOFT row, flattened from the
// nested per-tissue map.
type tissueEffect struct {
	variantId string
	metaP     float64
	tissueID  string
	mValue    float64
	nes       float64
	pValue    float64
}

func GetMultiTissueEqtlsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetMultiTissueEqtls(ctx, request, deps)
	}
}

func handleGetMultiTissueEqtls(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args GetMultiTissueEqtlsInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "get_multi_tissue_eqtls", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if res := tools.RequireString("gencodeId", args.GencodeId); res != nil {
		return res, nil
	}
	page, itemsPerPage := tools.PageDefaults(args.Page, args.ItemsPerPage, gtex.DefaultItemsPerPage)

	query := gtex.Query{}.
		Add("gencodeId", args.GencodeId).
		Add("variantId", args.VariantId).
		Add("datasetId", tools.OrDefault(args.DatasetId, gtex.DefaultDatasetID)).
		AddInt("page", page).
		AddInt("itemsPerPage", itemsPerPage)

	result, err := deps.GTEx.Get(ctx, gtex.PathMultiTissueEqtl, query)
	if err != nil {
		deps.Log.Error("multi-tissue eQTL lookup failed", "gencodeId", args.GencodeId, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No multi-tissue eQTL data found for %s.", args.GencodeId)), nil
	}

	effects := flattenMetasoftRows(result.Records)
	if len(effects) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"Multi-tissue eQTL rows for %s contained no per-tissue effects.", args.GencodeId)), nil
	}

	pipeline := report.Pipeline[tissueEffect]{
		GroupKey: func(e tissueEffect) string { return e.variantId },
		Less:     func(a, b tissueEffect) bool { return a.mValue > b.mValue },
		TopN:     10,
		Header: func(key string, items []tissueEffect) string {
			return fmt.Sprintf("%s (meta-analysis p=%.2e) - %d tissue(s):", key, items[0].metaP, len(items))
		},
		Item: func(rank int, e tissueEffect) string {
			return fmt.Sprintf("  %d. %s: m-value=%.3f NES=%.3f p=%.2e",
				rank, report.TissueDisplayName(e.tissueID), e.mValue, e.nes, e.pValue)
		},
		Summary: func(key string, items []tissueEffect) string {
			present := 0
			for _, e := range items {
				if e.mValue >= 0.9 {
					present++
				}
			}
			return fmt.Sprintf("  Effect present (m>=0.9) in %d of %d tissues", present, len(items))
		},
	}

	body := fmt.Sprintf("Multi-tissue eQTL meta-analysis for %s:\n\n%s", args.GencodeId, pipeline.Render(effects))
	body = report.AppendPagingNote(body, len(result.Records), result.Paging)
	return mcp.NewToolResultText(body), nil
}

// flattenMetasoftRows turns the nested per-tissue maps of METASOFT rows into
// flat tissueEffect entries, preserving row order.
func flattenMetasoftRows(records []gtex.Record) []tissueEffect {
	var effects []tissueEffect
	for _, rec := range records {
		variantId := rec.String("variantId")
		metaP := rec.Float("metaP")
		tissues, ok := rec["tissues"].(map[string]any)
		if !ok {
			continue
		}
		// Map iteration order is random; walk sorted keys so tissues tied
		// on m-value render in a stable order.
		tissueIDs := make([]string, 0, len(tissues))
		for tissueID := range tissues {
			tissueIDs = append(tissueIDs, tissueID)
		}
		sort.Strings(tissueIDs)
		for _, tissueID := range tissueIDs {
			entry, ok := tissues[tissueID].(map[string]any)
			if !ok {
				continue
			}
			e := gtex.Record(entry)
			effects = append(effects, tissueEffect{
				variantId: variantId,
				metaP:     metaP,
				tissueID:  tissueID,
				mValue:    e.Float("mValue"),
				nes:       e.Float("nes"),
				pValue:    e.Float("pValue"),
			})
		}
	}
	return effects
}
