package expression

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetMedianTranscriptExpressionInput struct {
	GencodeId           string   `json:"gencodeId" jsonschema:"description=GENCODE gene ID whose transcripts to query"`
	TissueSiteDetailIds []string `json:"tissueSiteDetailIds,omitempty" jsonschema:"description=Tissue site detail IDs to filter by"`
	DatasetId           string   `json:"datasetId,omitempty" jsonschema:"default=gtex_v8,description=GTEx dataset ID"`
	Page                int      `json:"page,omitempty" jsonschema:"default=0,description=Zero-based results page"`
	ItemsPerPage        int      `json:"itemsPerPage,omitempty" jsonschema:"default=250,description=Number of results per page"`
}

func GetMedianTranscriptExpressionSpec() mcp.Tool {
	return mcp.NewTool("get_median_transcript_expression",
		mcp.WithDescription("Retrieve median transcript-level expression per tissue for one gene, showing the top transcripts in each tissue."),
		mcp.WithInputSchema[GetMedianTranscriptExpressionInput](),
		mcp.WithTitleAnnotation("Get Median Transcript Expression"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
