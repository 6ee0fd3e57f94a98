package expression

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetMedianGeneExpressionInput struct {
	GencodeIds          []string `json:"gencodeIds" jsonschema:"description=GENCODE gene IDs (max 60)"`
	TissueSiteDetailIds []string `json:"tissueSiteDetailIds,omitempty" jsonschema:"description=Tissue site detail IDs to filter by"`
	DatasetId           string   `json:"datasetId,omitempty" jsonschema:"default=gtex_v8,description=GTEx dataset ID"`
	Page                int      `json:"page,omitempty" jsonschema:"default=0,description=Zero-based results page"`
	ItemsPerPage        int      `json:"itemsPerPage,omitempty" jsonschema:"default=250,description=Number of results per page"`
}

func GetMedianGeneExpressionSpec() mcp.Tool {
	return mcp.NewTool("get_median_gene_expression",
		mcp.WithDescription("Retrieve median gene expression (TPM) per tissue for up to 60 genes, ranked by expression level."),
		mcp.WithInputSchema[GetMedianGeneExpressionInput](),
		mcp.WithTitleAnnotation("Get Median Gene Expression"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
