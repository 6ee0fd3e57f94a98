package dataset

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetBiobankSamplesInput struct {
	MaterialTypes       []string `json:"materialTypes,omitempty" jsonschema:"description=Material types to filter by such as RNA or DNA"`
	TissueSiteDetailIds []string `json:"tissueSiteDetailIds,omitempty" jsonschema:"description=Tissue site detail IDs to filter by"`
	Sex                 string   `json:"sex,omitempty" jsonschema:"description=Filter by donor sex (male or female)"`
	AgeBracket          string   `json:"ageBracket,omitempty" jsonschema:"description=Filter by donor age bracket such as 50-59"`
	HasExpressionData   *bool    `json:"hasExpressionData,omitempty" jsonschema:"description=Only samples with expression data"`
	HasGenotype         *bool    `json:"hasGenotype,omitempty" jsonschema:"description=Only samples with genotype data"`
	Page                int      `json:"page,omitempty" jsonschema:"default=0,description=Zero-based results page"`
	ItemsPerPage        int      `json:"itemsPerPage,omitempty" jsonschema:"default=100,description=Number of results per page"`
}

func GetBiobankSamplesSpec() mcp.Tool {
	return mcp.NewTool("get_biobank_samples",
		mcp.WithDescription("Search the GTEx biobank for orderable samples grouped by material type."),
		mcp.WithInputSchema[GetBiobankSamplesInput](),
		mcp.WithTitleAnnotation("Get Biobank Samples"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
