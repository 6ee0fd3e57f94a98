package dataset

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type ValidateVariantIdsInput struct {
	VariantIds []string `json:"variantIds" jsonschema:"required,description=GTEx variant IDs or dbSNP rsIDs to validate"`
	DatasetId  string   `json:"datasetId,omitempty" jsonschema:"default=gtex_v8,description=GTEx dataset ID"`
}

func ValidateVariantIdsSpec() mcp.Tool {
	return mcp.NewTool("validate_variant_ids",
		mcp.WithDescription("Check which of the given variant IDs or rsIDs exist in the GTEx dataset."),
		mcp.WithInputSchema[ValidateVariantIdsInput](),
		mcp.WithTitleAnnotation("Validate Variant IDs"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
