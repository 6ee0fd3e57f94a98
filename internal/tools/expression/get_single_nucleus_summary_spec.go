package expression

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetSingleNucleusSummaryInput struct {
	TissueSiteDetailIds []string `json:"tissueSiteDetailIds,omitempty" jsonschema:"description=Tissue site detail IDs to filter by"`
	DatasetId           string   `json:"datasetId,omitempty" jsonschema:"default=gtex_snrnaseq_pilot,description=GTEx dataset ID"`
	Page                int      `json:"page,omitempty" jsonschema:"default=0,description=Zero-based results page"`
	ItemsPerPage        int      `json:"itemsPerPage,omitempty" jsonschema:"default=250,description=Number of results per page"`
}

func GetSingleNucleusSummarySpec() mcp.Tool {
	return mcp.NewTool("get_single_nucleus_summary",
		mcp.WithDescription("Summarize the single-nucleus RNA-seq dataset: cell types and cell counts per tissue."),
		mcp.WithInputSchema[GetSingleNucleusSummaryInput](),
		mcp.WithTitleAnnotation("Get Single-Nucleus Summary"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
