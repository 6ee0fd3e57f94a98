package dataset

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetSubjectInfoInput struct {
	SubjectIds   []string `json:"subjectIds,omitempty" jsonschema:"description=Subject IDs to filter by"`
	Sex          string   `json:"sex,omitempty" jsonschema:"description=Filter by sex (male or female)"`
	AgeBracket   string   `json:"ageBracket,omitempty" jsonschema:"description=Filter by age bracket such as 50-59"`
	HardyScale   string   `json:"hardyScale,omitempty" jsonschema:"description=Filter by Hardy scale death classification"`
	DatasetId    string   `json:"datasetId,omitempty" jsonschema:"default=gtex_v8,description=GTEx dataset ID"`
	Page         int      `json:"page,omitempty" jsonschema:"default=0,description=Zero-based results page"`
	ItemsPerPage int      `json:"itemsPerPage,omitempty" jsonschema:"default=250,description=Number of results per page"`
}

func GetSubjectInfoSpec() mcp.Tool {
	return mcp.NewTool("get_subject_info",
		mcp.WithDescription("Summarize GTEx donor demographics: sex, age bracket and Hardy scale distributions."),
		mcp.WithInputSchema[GetSubjectInfoInput](),
		mcp.WithTitleAnnotation("Get Subject Info"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
