package expression

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type CompareTissueExpressionInput struct {
	GencodeId    string `json:"gencodeId" jsonschema:"description=GENCODE gene ID to compare"`
	TissueGroup1 string `json:"tissueGroup1" jsonschema:"description=First tissue group name (e.g. brain)"`
	TissueGroup2 string `json:"tissueGroup2" jsonschema:"description=Second tissue group name (e.g. heart)"`
	DatasetId    string `json:"datasetId,omitempty" jsonschema:"default=gtex_v8,description=GTEx dataset ID"`
}

func CompareTissueExpressionSpec() mcp.Tool {
	return mcp.NewTool("compare_tissue_expression",
		mcp.WithDescription("Compare a gene's median expression between two tissue groups (matched by name) and report the fold change and direction."),
		mcp.WithInputSchema[CompareTissueExpressionInput](),
		mcp.WithTitleAnnotation("Compare Tissue Expression"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
