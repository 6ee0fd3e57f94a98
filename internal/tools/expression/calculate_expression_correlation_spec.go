package expression

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type CalculateExpressionCorrelationInput struct {
	GencodeIds          []string `json:"gencodeIds" jsonschema:"description=GENCODE gene IDs to correlate (2 to 10)"`
	TissueSiteDetailIds []string `json:"tissueSiteDetailIds,omitempty" jsonschema:"description=Tissue site detail IDs to restrict the comparison to"`
	DatasetId           string   `json:"datasetId,omitempty" jsonschema:"default=gtex_v8,description=GTEx dataset ID"`
}

func CalculateExpressionCorrelationSpec() mcp.Tool {
	return mcp.NewTool("calculate_expression_correlation",
		mcp.WithDescription("Compute pairwise Pearson correlations between genes over their median expression across tissues. Requires 2-10 genes and at least 3 shared tissues per pair."),
		mcp.WithInputSchema[CalculateExpressionCorrelationInput](),
		mcp.WithTitleAnnotation("Calculate Expression Correlation"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
