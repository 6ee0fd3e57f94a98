package dataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/report"
	"github.com/gtex/mcp/internal/stats"
	"github.com/gtex/mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

func GetSubjectInfoHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetSubjectInfo(ctx, request, deps)
	}
}

func handleGetSubjectInfo(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args GetSubjectInfoInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "get_subject_info", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	page, itemsPerPage := tools.PageDefaults(args.Page, args.ItemsPerPage, gtex.DefaultItemsPerPage)

	query := gtex.Query{}.
		AddAll("subjectId", args.SubjectIds).
		Add("sex", args.Sex).
		Add("ageBracket", args.AgeBracket).
		Add("hardyScale", args.HardyScale).
		Add("datasetId", tools.OrDefault(args.DatasetId, gtex.DefaultDatasetID)).
		AddInt("page", page).
		AddInt("itemsPerPage", itemsPerPage)

	result, err := deps.GTEx.Get(ctx, gtex.PathSubject, query)
	if err != nil {
		deps.Log.Error("subject lookup failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No subject information found%s.",
			report.FilterClause("subjects", args.SubjectIds))), nil
	}

	sexCounts := report.OrderedGroups[gtex.Record]{}
	ageCounts := report.OrderedGroups[gtex.Record]{}
	hardyCounts := report.OrderedGroups[gtex.Record]{}
	var brackets []string
	for _, rec := range result.Records {
		sexCounts.Add(tools.OrDefault(rec.String("sex"), "unknown"), rec)
		bracket := tools.OrDefault(rec.String("ageBracket"), "unknown")
		ageCounts.Add(bracket, rec)
		brackets = append(brackets, bracket)
		hardyCounts.Add(tools.OrDefault(rec.String("hardyScale"), "unknown"), rec)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "GTEx subject demographics (%d subject(s)):\n", len(result.Records))

	writeDistribution(&b, "Sex", sexCounts, len(result.Records))
	writeDistribution(&b, "Age bracket", ageCounts, len(result.Records))
	writeDistribution(&b, "Hardy scale", hardyCounts, len(result.Records))

	if mean := stats.MeanBracketAge(brackets); mean > 0 {
		fmt.Fprintf(&b, "\nApproximate mean age (bracket midpoints): %.1f years", mean)
	}

	body := report.AppendPagingNote(b.String(), len(result.Records), result.Paging)
	return mcp.NewToolResultText(body), nil
}

func writeDistribution(b *strings.Builder, label string, groups report.OrderedGroups[gtex.Record], total int) {
	fmt.Fprintf(b, "\n%s distribution:\n", label)
	for _, key := range groups.Keys() {
		count := len(groups.Get(key))
		fmt.Fprintf(b, "  %s: %d (%.1f%%)\n", key, count, float64(count)/float64(total)*100)
	}
}
