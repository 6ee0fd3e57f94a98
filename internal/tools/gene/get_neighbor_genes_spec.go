package gene

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetNeighborGenesInput struct {
	Chromosome   string `json:"chromosome" jsonschema:"description=Chromosome (e.g. chr17)"`
	Position     int    `json:"position" jsonschema:"description=Genomic position (1-based)"`
	Window       int    `json:"window,omitempty" jsonschema:"default=1000000,description=Window size in base pairs around the position"`
	Page         int    `json:"page,omitempty" jsonschema:"default=0,description=Zero-based results page"`
	ItemsPerPage int    `json:"itemsPerPage,omitempty" jsonschema:"default=250,description=Number of results per page"`
}

func GetNeighborGenesSpec() mcp.Tool {
	return mcp.NewTool("get_neighbor_genes",
		mcp.WithDescription("Find genes located within a window around a genomic position."),
		mcp.WithInputSchema[GetNeighborGenesInput](),
		mcp.WithTitleAnnotation("Get Neighbor Genes"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
