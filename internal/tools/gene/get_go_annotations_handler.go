package gene

import (
	"context"
	"fmt"
	"strings"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/report"
	"github.com/gtex/mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// goKeyword maps a substring of the gene description or symbol to a GO-style
// category term. The inference is purely heuristic and the report says so.
type goKeyword struct {
	substring string
	term      string
}

var (
	biologicalProcessKeywords = []goKeyword{
		{"kinase", "protein phosphorylation"},
		{"transcription", "regulation of transcription"},
		{"receptor", "signal transduction"},
		{"transport", "transmembrane transport"},
		{"immune", "immune response"},
		{"interleukin", "immune response"},
		{"repair", "DNA repair"},
		{"cell cycle", "cell cycle"},
		{"metabol", "metabolic process"},
	}
	cellularComponentKeywords = []goKeyword{
		{"mitochondrial", "mitochondrion"},
		{"membrane", "membrane"},
		{"ribosom", "ribosome"},
		{"nuclear", "nucleus"},
		{"transcription", "nucleus"},
		{"secreted", "extracellular region"},
	}
	molecularFunctionKeywords = []goKeyword{
		{"kinase", "kinase activity"},
		{"receptor", "receptor activity"},
		{"transcription", "DNA-binding transcription factor activity"},
		{"channel", "ion channel activity"},
		{"binding", "protein binding"},
		{"enzyme", "catalytic activity"},
	}
)

func GetGoAnnotationsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetGoAnnotations(ctx, request, deps)
	}
}

func handleGetGoAnnotations(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args GetGoAnnotationsInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "get_go_annotations", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if res := tools.RequireIDList("geneIds", args.GeneIds, "genes", tools.MaxGeneInfoIDs); res != nil {
		return res, nil
	}

	query := gtex.Query{}.
		AddAll("geneId", args.GeneIds).
		Add("gencodeVersion", tools.OrDefault(args.GencodeVersion, gtex.DefaultGencodeVersion)).
		Add("genomeBuild", tools.OrDefault(args.GenomeBuild, gtex.DefaultGenomeBuild))

	result, err := deps.GTEx.Get(ctx, gtex.PathGene, query)
	if err != nil {
		deps.Log.Error("gene lookup for GO annotation failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No gene annotations found for: %s", strings.Join(args.GeneIds, ", "))), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Inferred Gene Ontology categories (%d gene(s)):\n", len(result.Records))
	for _, rec := range result.Records {
		text := strings.ToLower(rec.String("description") + " " + rec.String("geneSymbol"))
		fmt.Fprintf(&b, "\n%s\n", report.GeneLabel(rec.String("geneSymbol"), rec.String("gencodeId")))
		writeGoCategory(&b, "Biological process", text, biologicalProcessKeywords)
		writeGoCategory(&b, "Cellular component", text, cellularComponentKeywords)
		writeGoCategory(&b, "Molecular function", text, molecularFunctionKeywords)
	}
	b.WriteString("\nNote: these categories are inferred heuristically from gene descriptions, not retrieved from the Gene Ontology database. Use AmiGO or QuickGO for authoritative annotations.")

	return mcp.NewToolResultText(b.String()), nil
}

func writeGoCategory(b *strings.Builder, label, text string, keywords []goKeyword) {
	terms := matchGoTerms(text, keywords)
	if len(terms) == 0 {
		fmt.Fprintf(b, "  %s: no terms inferred\n", label)
		return
	}
	fmt.Fprintf(b, "  %s: %s\n", label, strings.Join(terms, "; "))
}

func matchGoTerms(text string, keywords []goKeyword) []string {
	var terms []string
	seen := make(map[string]bool)
	for _, kw := range keywords {
		if strings.Contains(text, kw.substring) && !seen[kw.term] {
			terms = append(terms, kw.term)
			seen[kw.term] = true
		}
	}
	return terms
}
