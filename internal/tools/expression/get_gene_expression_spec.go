package expression

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetGeneExpressionInput struct {
	GencodeIds          []string `json:"gencodeIds" jsonschema:"description=GENCODE gene IDs (max 60)"`
	TissueSiteDetailIds []string `json:"tissueSiteDetailIds,omitempty" jsonschema:"description=Tissue site detail IDs to filter by (e.g. Brain_Cortex)"`
	DatasetId           string   `json:"datasetId,omitempty" jsonschema:"default=gtex_v8,description=GTEx dataset ID"`
	Page                int      `json:"page,omitempty" jsonschema:"default=0,description=Zero-based results page"`
	ItemsPerPage        int      `json:"itemsPerPage,omitempty" jsonschema:"default=250,description=Number of results per page"`
}

func GetGeneExpressionSpec() mcp.Tool {
	return mcp.NewTool("get_gene_expression",
		mcp.WithDescription("Retrieve per-sample gene expression (TPM) for up to 60 genes, summarized per tissue with mean/median/range and detection rate."),
		mcp.WithInputSchema[GetGeneExpressionInput](),
		mcp.WithTitleAnnotation("Get Gene Expression"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
