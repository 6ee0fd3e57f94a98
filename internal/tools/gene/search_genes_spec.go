package gene

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type SearchGenesInput struct {
	Query          string `json:"query" jsonschema:"description=Gene symbol / GENCODE ID / Ensembl ID to search for"`
	GencodeVersion string `json:"gencodeVersion,omitempty" jsonschema:"default=v26,description=GENCODE annotation release"`
	GenomeBuild    string `json:"genomeBuild,omitempty" jsonschema:"default=GRCh38/hg38,description=Genome build"`
	Page           int    `json:"page,omitempty" jsonschema:"default=0,description=Zero-based results page"`
	ItemsPerPage   int    `json:"itemsPerPage,omitempty" jsonschema:"default=250,description=Number of results per page"`
}

func SearchGenesSpec() mcp.Tool {
	return mcp.NewTool("search_genes",
		mcp.WithDescription("Search the GTEx gene reference by symbol or identifier and return matching genes with their GENCODE IDs and genomic locations."),
		mcp.WithInputSchema[SearchGenesInput](),
		mcp.WithTitleAnnotation("Search Genes"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
