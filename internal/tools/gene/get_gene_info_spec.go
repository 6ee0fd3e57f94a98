package gene

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetGeneInfoInput struct {
	GeneIds        []string `json:"geneIds" jsonschema:"description=Gene symbols or GENCODE IDs to look up (max 50)"`
	GencodeVersion string   `json:"gencodeVersion,omitempty" jsonschema:"default=v26,description=GENCODE annotation release"`
	GenomeBuild    string   `json:"genomeBuild,omitempty" jsonschema:"default=GRCh38/hg38,description=Genome build"`
	Page           int      `json:"page,omitempty" jsonschema:"default=0,description=Zero-based results page"`
	ItemsPerPage   int      `json:"itemsPerPage,omitempty" jsonschema:"default=250,description=Number of results per page"`
}

func GetGeneInfoSpec() mcp.Tool {
	return mcp.NewTool("get_gene_info",
		mcp.WithDescription("Retrieve detailed reference information (location, type, strand, description) for up to 50 genes by symbol or GENCODE ID."),
		mcp.WithInputSchema[GetGeneInfoInput](),
		mcp.WithTitleAnnotation("Get Gene Info"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
