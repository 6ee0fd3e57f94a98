package expression

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetTopExpressedGenesInput struct {
	TissueSiteDetailId string `json:"tissueSiteDetailId" jsonschema:"description=Tissue site detail ID (e.g. Liver)"`
	FilterMtGene       *bool  `json:"filterMtGene,omitempty" jsonschema:"default=true,description=Exclude mitochondrial genes"`
	DatasetId          string `json:"datasetId,omitempty" jsonschema:"default=gtex_v8,description=GTEx dataset ID"`
	Page               int    `json:"page,omitempty" jsonschema:"default=0,description=Zero-based results page"`
	ItemsPerPage       int    `json:"itemsPerPage,omitempty" jsonschema:"default=50,description=Number of results per page"`
}

func GetTopExpressedGenesSpec() mcp.Tool {
	return mcp.NewTool("get_top_expressed_genes",
		mcp.WithDescription("List the most highly expressed genes in one tissue, ranked by median TPM."),
		mcp.WithInputSchema[GetTopExpressedGenesInput](),
		mcp.WithTitleAnnotation("Get Top Expressed Genes"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
