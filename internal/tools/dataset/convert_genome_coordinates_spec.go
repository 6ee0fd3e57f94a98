package dataset

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type ConvertGenomeCoordinatesInput struct {
	Chromosome string `json:"chromosome" jsonschema:"required,description=Chromosome such as chr1 or chrX"`
	Position   int    `json:"position" jsonschema:"required,description=Position on the chromosome"`
	FromBuild  string `json:"fromBuild,omitempty" jsonschema:"default=hg19,description=Source genome build (hg19 or hg38)"`
	ToBuild    string `json:"toBuild,omitempty" jsonschema:"default=hg38,description=Target genome build (hg19 or hg38)"`
}

func ConvertGenomeCoordinatesSpec() mcp.Tool {
	return mcp.NewTool("convert_genome_coordinates",
		mcp.WithDescription("Approximate a genome coordinate between the hg19 and hg38 builds. Not a substitute for UCSC liftOver."),
		mcp.WithInputSchema[ConvertGenomeCoordinatesInput](),
		mcp.WithTitleAnnotation("Convert Genome Coordinates"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}
