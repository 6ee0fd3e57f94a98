package dataset

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetTissueInfoInput struct {
	TissueSiteDetailIds []string `json:"tissueSiteDetailIds,omitempty" jsonschema:"description=Tissue site detail IDs to filter by (all tissues when omitted)"`
	DatasetId           string   `json:"datasetId,omitempty" jsonschema:"default=gtex_v8,description=GTEx dataset ID"`
	Page                int      `json:"page,omitempty" jsonschema:"default=0,description=Zero-based results page"`
	ItemsPerPage        int      `json:"itemsPerPage,omitempty" jsonschema:"default=250,description=Number of results per page"`
}

func GetTissueInfoSpec() mcp.Tool {
	return mcp.NewTool("get_tissue_info",
		mcp.WithDescription("List GTEx tissue site details with sample counts and eQTL/sQTL availability."),
		mcp.WithInputSchema[GetTissueInfoInput](),
		mcp.WithTitleAnnotation("Get Tissue Info"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
