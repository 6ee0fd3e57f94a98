package gene

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetTranscriptsInput struct {
	GencodeId      string `json:"gencodeId" jsonschema:"description=GENCODE gene ID (e.g. ENSG00000141510.16)"`
	GencodeVersion string `json:"gencodeVersion,omitempty" jsonschema:"default=v26,description=GENCODE annotation release"`
	GenomeBuild    string `json:"genomeBuild,omitempty" jsonschema:"default=GRCh38/hg38,description=Genome build"`
	Page           int    `json:"page,omitempty" jsonschema:"default=0,description=Zero-based results page"`
	ItemsPerPage   int    `json:"itemsPerPage,omitempty" jsonschema:"default=250,description=Number of results per page"`
}

func GetTranscriptsSpec() mcp.Tool {
	return mcp.NewTool("get_transcripts",
		mcp.WithDescription("List all annotated transcripts of a gene with their genomic coordinates."),
		mcp.WithInputSchema[GetTranscriptsInput](),
		mcp.WithTitleAnnotation("Get Transcripts"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
