package association

import (
	"context"
	"fmt"
	"strings"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	defaultLdWindow = 100000

	// Cap on window pages fetched before the report notes truncation.
	maxLdWindowPages = 10
)

// The four fixed distance buckets of the LD proxy report.
var ldBuckets = []struct {
	label string
	max   int
}{
	{"<1kb", 1000},
	{"1-10kb", 10000},
	{"10-50kb", 50000},
	{"50kb+", 1 << 62},
}

func AnalyzeLdStructureHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleAnalyzeLdStructure(ctx, request, deps)
	}
}

func handleAnalyzeLdStructure(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args AnalyzeLdStructureInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "analyze_ld_structure", "error", err)
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
		window = defaultLdWindow
	}

	start := args.Position - window
	if start < 0 {
		start = 0
	}
	end := args.Position + window
	datasetID := tools.OrDefault(args.DatasetId, gtex.DefaultDatasetID)

	// The location endpoint returns only variants inside [start, end], so
	// page through the whole window rather than filtering one page.
	counts := make([]int, len(ldBuckets))
	inWindow := 0
	var nearest gtex.Record
	nearestDistance := -1
	truncated := false
	for page := 0; ; page++ {
		if page >= maxLdWindowPages {
			truncated = true
			break
		}
		query := gtex.Query{}.
			Add("chromosome", args.Chromosome).
			AddInt("start", start).
			AddInt("end", end).
			Add("datasetId", datasetID).
			AddInt("page", page).
			AddInt("itemsPerPage", gtex.DefaultItemsPerPage)

		result, err := deps.GTEx.Get(ctx, gtex.PathVariantByLocation, query)
		if err != nil {
			deps.Log.Error("variant window lookup failed", "chromosome", args.Chromosome, "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}

		for _, rec := range result.Records {
			pos := rec.Int("pos")
			distance := pos - args.Position
			if distance < 0 {
				distance = -distance
			}
			if distance > window {
				continue
			}
			inWindow++
			for i, bucket := range ldBuckets {
				if distance < bucket.max {
					counts[i]++
					break
				}
			}
			if nearestDistance < 0 || distance < nearestDistance {
				nearest = rec
				nearestDistance = distance
			}
		}

		if result.Paging == nil || page+1 >= result.Paging.NumberOfPages {
			break
		}
	}

	if inWindow == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No variants found within %d bp of %s:%d.", window, args.Chromosome, args.Position)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Variant density around %s:%d (window +/-%d bp, %d variant(s)):\n",
		args.Chromosome, args.Position, window, inWindow)
	for i, bucket := range ldBuckets {
		fmt.Fprintf(&b, "  %s: %d variant(s)\n", bucket.label, counts[i])
	}
	fmt.Fprintf(&b, "\nNearest variant: %s at %s:%d (%d bp away)",
		nearest.String("variantId"), args.Chromosome, nearest.Int("pos"), nearestDistance)
	if snpID := nearest.String("snpId"); snpID != "" {
		fmt.Fprintf(&b, " [%s]", snpID)
	}
	if truncated {
		fmt.Fprintf(&b, "\n\nNote: counts cover the first %d pages of the window only.",
			maxLdWindowPages)
	}
	b.WriteString("\n\nNote: this is a variant-density proxy, not a linkage-disequilibrium analysis; no r2 values are computed. Use PLINK or LDlink with a reference panel for real LD structure.")

	return mcp.NewToolResultText(b.String()), nil
}
