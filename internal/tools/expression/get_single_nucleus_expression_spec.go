package expression

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Single-nucleus tools default to the snRNA-seq pilot dataset rather than
// the bulk gtex_v8 dataset.
const snRNASeqDatasetID = "gtex_snrnaseq_pilot"

type GetSingleNucleusExpressionInput struct {
	GencodeIds          []string `json:"gencodeIds" jsonschema:"description=GENCODE gene IDs (max 60)"`
	TissueSiteDetailIds []string `json:"tissueSiteDetailIds,omitempty" jsonschema:"description=Tissue site detail IDs to filter by"`
	DatasetId           string   `json:"datasetId,omitempty" jsonschema:"default=gtex_snrnaseq_pilot,description=GTEx dataset ID"`
	Page                int      `json:"page,omitempty" jsonschema:"default=0,description=Zero-based results page"`
	ItemsPerPage        int      `json:"itemsPerPage,omitempty" jsonschema:"default=250,description=Number of results per page"`
}

func GetSingleNucleusExpressionSpec() mcp.Tool {
	return mcp.NewTool("get_single_nucleus_expression",
		mcp.WithDescription("Retrieve single-nucleus RNA-seq expression per cell type for up to 60 genes, grouped by gene and tissue."),
		mcp.WithInputSchema[GetSingleNucleusExpressionInput](),
		mcp.WithTitleAnnotation("Get Single-Nucleus Expression"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
