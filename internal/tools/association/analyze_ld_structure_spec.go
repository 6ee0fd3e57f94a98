package association

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type AnalyzeLdStructureInput struct {
	Chromosome string `json:"chromosome" jsonschema:"description=Chromosome (e.g. chr17)"`
	Position   int    `json:"position" jsonschema:"description=Genomic position (1-based) to analyze around"`
	Window     int    `json:"window,omitempty" jsonschema:"default=100000,description=Window size in base pairs on each side of the position"`
	DatasetId  string `json:"datasetId,omitempty" jsonschema:"default=gtex_v8,description=GTEx dataset ID"`
}

func AnalyzeLdStructureSpec() mcp.Tool {
	return mcp.NewTool("analyze_ld_structure",
		mcp.WithDescription("Survey variant density around a genomic position as a linkage-disequilibrium proxy: variants are binned by distance and the nearest variant is reported. This does NOT compute r2 LD values - use PLINK or LDlink for real LD."),
		mcp.WithInputSchema[AnalyzeLdStructureInput](),
		mcp.WithTitleAnnotation("Analyze LD Structure"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
