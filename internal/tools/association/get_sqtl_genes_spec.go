package association

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetSqtlGenesInput struct {
	TissueSiteDetailIds []string `json:"tissueSiteDetailIds,omitempty" jsonschema:"description=Tissue site detail IDs to filter by"`
	DatasetId           string   `json:"datasetId,omitempty" jsonschema:"default=gtex_v8,description=GTEx dataset ID"`
	Page                int      `json:"page,omitempty" jsonschema:"default=0,description=Zero-based results page"`
	ItemsPerPage        int      `json:"itemsPerPage,omitempty" jsonschema:"default=250,description=Number of results per page"`
}

func GetSqtlGenesSpec() mcp.Tool {
	return mcp.NewTool("get_sqtl_genes",
		mcp.WithDescription("List sGenes (genes with at least one significant splicing QTL) per tissue, ranked by significance."),
		mcp.WithInputSchema[GetSqtlGenesInput](),
		mcp.WithTitleAnnotation("Get sQTL Genes"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
