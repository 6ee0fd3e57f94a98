package gene

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetGoAnnotationsInput struct {
	GeneIds        []string `json:"geneIds" jsonschema:"description=Gene symbols or GENCODE IDs to annotate (max 50)"`
	GencodeVersion string   `json:"gencodeVersion,omitempty" jsonschema:"default=v26,description=GENCODE annotation release"`
	GenomeBuild    string   `json:"genomeBuild,omitempty" jsonschema:"default=GRCh38/hg38,description=Genome build"`
}

func GetGoAnnotationsSpec() mcp.Tool {
	return mcp.NewTool("get_go_annotations",
		mcp.WithDescription("Infer likely Gene Ontology categories (biological process / cellular component / molecular function) for genes from their descriptions. This is a keyword heuristic over GTEx reference annotations - not a real GO database lookup."),
		mcp.WithInputSchema[GetGoAnnotationsInput](),
		mcp.WithTitleAnnotation("Get GO Annotations"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
