package expression

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetExpressionPcaInput struct {
	TissueSiteDetailIds []string `json:"tissueSiteDetailIds,omitempty" jsonschema:"description=Tissue site detail IDs to filter by"`
	DatasetId           string   `json:"datasetId,omitempty" jsonschema:"default=gtex_v8,description=GTEx dataset ID"`
	Page                int      `json:"page,omitempty" jsonschema:"default=0,description=Zero-based results page"`
	ItemsPerPage        int      `json:"itemsPerPage,omitempty" jsonschema:"default=250,description=Number of results per page"`
}

func GetExpressionPcaSpec() mcp.Tool {
	return mcp.NewTool("get_expression_pca",
		mcp.WithDescription("Retrieve principal component coordinates of expression profiles per sample, summarized by tissue."),
		mcp.WithInputSchema[GetExpressionPcaInput](),
		mcp.WithTitleAnnotation("Get Expression PCA"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
