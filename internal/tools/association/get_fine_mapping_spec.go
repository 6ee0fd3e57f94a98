package association

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetFineMappingInput struct {
	GencodeIds   []string `json:"gencodeIds" jsonschema:"description=GENCODE gene IDs to retrieve fine mapping for"`
	VariantId    string   `json:"variantId,omitempty" jsonschema:"description=GTEx variant ID to filter by"`
	DatasetId    string   `json:"datasetId,omitempty" jsonschema:"default=gtex_v8,description=GTEx dataset ID"`
	Page         int      `json:"page,omitempty" jsonschema:"default=0,description=Zero-based results page"`
	ItemsPerPage int      `json:"itemsPerPage,omitempty" jsonschema:"default=250,description=Number of results per page"`
}

func GetFineMappingSpec() mcp.Tool {
	return mcp.NewTool("get_fine_mapping",
		mcp.WithDescription("Retrieve eQTL fine-mapping credible sets per gene / tissue / method with posterior inclusion probabilities (PIP)."),
		mcp.WithInputSchema[GetFineMappingInput](),
		mcp.WithTitleAnnotation("Get Fine Mapping"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
