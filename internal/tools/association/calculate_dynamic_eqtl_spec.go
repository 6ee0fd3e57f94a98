package association

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type CalculateDynamicEqtlInput struct {
	GencodeId          string `json:"gencodeId" jsonschema:"description=GENCODE gene ID"`
	VariantId          string `json:"variantId" jsonschema:"description=GTEx variant ID (e.g. chr1_13550_G_A_b38)"`
	TissueSiteDetailId string `json:"tissueSiteDetailId" jsonschema:"description=Tissue site detail ID"`
	DatasetId          string `json:"datasetId,omitempty" jsonschema:"default=gtex_v8,description=GTEx dataset ID"`
}

func CalculateDynamicEqtlSpec() mcp.Tool {
	return mcp.NewTool("calculate_dynamic_eqtl",
		mcp.WithDescription("Compute an on-the-fly eQTL association for one gene / variant / tissue combination, with genotype counts and effect size."),
		mcp.WithInputSchema[CalculateDynamicEqtlInput](),
		mcp.WithTitleAnnotation("Calculate Dynamic eQTL"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
