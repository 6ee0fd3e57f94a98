package association

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetSingleTissueEqtlsInput struct {
	GencodeIds          []string `json:"gencodeIds,omitempty" jsonschema:"description=GENCODE gene IDs to filter by"`
	VariantId           string   `json:"variantId,omitempty" jsonschema:"description=GTEx variant ID to filter by"`
	TissueSiteDetailIds []string `json:"tissueSiteDetailIds,omitempty" jsonschema:"description=Tissue site detail IDs to filter by"`
	DatasetId           string   `json:"datasetId,omitempty" jsonschema:"default=gtex_v8,description=GTEx dataset ID"`
	Page                int      `json:"page,omitempty" jsonschema:"default=0,description=Zero-based results page"`
	ItemsPerPage        int      `json:"itemsPerPage,omitempty" jsonschema:"default=250,description=Number of results per page"`
}

func GetSingleTissueEqtlsSpec() mcp.Tool {
	return mcp.NewTool("get_single_tissue_eqtls",
		mcp.WithDescription("Retrieve significant single-tissue eQTL associations (variant / gene / tissue with p-value and NES), grouped by gene. Provide at least a gene or a variant filter."),
		mcp.WithInputSchema[GetSingleTissueEqtlsInput](),
		mcp.WithTitleAnnotation("Get Single-Tissue eQTLs"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
