package association

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetMultiTissueEqtlsInput struct {
	GencodeId    string `json:"gencodeId" jsonschema:"description=GENCODE gene ID"`
	VariantId    string `json:"variantId,omitempty" jsonschema:"description=GTEx variant ID to filter by"`
	DatasetId    string `json:"datasetId,omitempty" jsonschema:"default=gtex_v8,description=GTEx dataset ID"`
	Page         int    `json:"page,omitempty" jsonschema:"default=0,description=Zero-based results page"`
	ItemsPerPage int    `json:"itemsPerPage,omitempty" jsonschema:"default=250,description=Number of results per page"`
}

func GetMultiTissueEqtlsSpec() mcp.Tool {
	return mcp.NewTool("get_multi_tissue_eqtls",
		mcp.WithDescription("Retrieve multi-tissue eQTL meta-analysis (METASOFT) results: per-tissue m-values and effect sizes for a gene's variants. An m-value is the posterior probability that the effect is present in that tissue."),
		mcp.WithInputSchema[GetMultiTissueEqtlsInput](),
		mcp.WithTitleAnnotation("Get Multi-Tissue eQTLs"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
