package dataset

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetVariantInfoInput struct {
	VariantId    string `json:"variantId,omitempty" jsonschema:"description=GTEx variant ID such as chr1_13550_G_A_b38"`
	SnpId        string `json:"snpId,omitempty" jsonschema:"description=dbSNP rsID such as rs1410858"`
	Chromosome   string `json:"chromosome,omitempty" jsonschema:"description=Chromosome such as chr1 to list variants from"`
	Pos          []int  `json:"pos,omitempty" jsonschema:"description=Positions on the chromosome to look up"`
	DatasetId    string `json:"datasetId,omitempty" jsonschema:"default=gtex_v8,description=GTEx dataset ID"`
	Page         int    `json:"page,omitempty" jsonschema:"default=0,description=Zero-based results page"`
	ItemsPerPage int    `json:"itemsPerPage,omitempty" jsonschema:"default=250,description=Number of results per page"`
}

func GetVariantInfoSpec() mcp.Tool {
	return mcp.NewTool("get_variant_info",
		mcp.WithDescription("Look up GTEx variants by variant ID or rsID or chromosome position."),
		mcp.WithInputSchema[GetVariantInfoInput](),
		mcp.WithTitleAnnotation("Get Variant Info"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
