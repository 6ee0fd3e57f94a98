package dataset

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Sample listings default to a smaller page than other endpoints; sample
// rows are wide and callers rarely need more than one page.
const defaultSampleItemsPerPage = 100

type GetSampleInfoInput struct {
	TissueSiteDetailIds []string `json:"tissueSiteDetailIds,omitempty" jsonschema:"description=Tissue site detail IDs to filter by"`
	SubjectIds          []string `json:"subjectIds,omitempty" jsonschema:"description=Subject IDs to filter by"`
	DatasetId           string   `json:"datasetId,omitempty" jsonschema:"default=gtex_v8,description=GTEx dataset ID"`
	Page                int      `json:"page,omitempty" jsonschema:"default=0,description=Zero-based results page"`
	ItemsPerPage        int      `json:"itemsPerPage,omitempty" jsonschema:"default=100,description=Number of results per page"`
}

func GetSampleInfoSpec() mcp.Tool {
	return mcp.NewTool("get_sample_info",
		mcp.WithDescription("List GTEx RNA-seq samples grouped by tissue, with ischemic time and RIN summaries."),
		mcp.WithInputSchema[GetSampleInfoInput](),
		mcp.WithTitleAnnotation("Get Sample Info"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
