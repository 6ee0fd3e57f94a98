package expression

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/report"
	"github.com/gtex/mcp/internal/stats"
	"github.com/gtex/mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// minSharedTissues is the smallest paired-observation count for which a
// Pearson correlation is reported; below it the pair is marked as having
// insufficient data.
const minSharedTissues = 3

// geneProfile is one gene's median expression keyed by tissue, with tissue
// order preserved for deterministic vector construction.
type geneProfile struct {
	label   string
	tissues []string
	medians map[string]float64
}

type correlationPair struct {
	geneA, geneB string
	r            float64
	shared       int
	insufficient bool
}

func CalculateExpressionCorrelationHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleCalculateExpressionCorrelation(ctx, request, deps)
	}
}

func handleCalculateExpressionCorrelation(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args CalculateExpressionCorrelationInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "calculate_expression_correlation", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if res := tools.RequireIDList("gencodeIds", args.GencodeIds, "genes", tools.MaxCorrelationGenes); res != nil {
		return res, nil
	}
	if len(args.GencodeIds) < tools.MinComparisonGenes {
		return mcp.NewToolResultError(fmt.Sprintf(
			"At least %d genes are required to compute correlations, but %d were provided",
			tools.MinComparisonGenes, len(args.GencodeIds))), nil
	}

	query := gtex.Query{}.
		AddAll("gencodeId", args.GencodeIds).
		AddAll("tissueSiteDetailId", args.TissueSiteDetailIds).
		Add("datasetId", tools.OrDefault(args.DatasetId, gtex.DefaultDatasetID)).
		AddInt("page", gtex.DefaultPage).
		AddInt("itemsPerPage", gtex.DefaultItemsPerPage)

	result, err := deps.GTEx.Get(ctx, gtex.PathMedianGeneExpression, query)
	if err != nil {
		deps.Log.Error("median expression lookup for correlation failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No median expression data found for %s%s.",
			strings.Join(args.GencodeIds, ", "),
			report.FilterClause("tissues", args.TissueSiteDetailIds))), nil
	}

	profiles := buildProfiles(result.Records)
	if len(profiles) < tools.MinComparisonGenes {
		return mcp.NewToolResultText(fmt.Sprintf(
			"Expression data was returned for only %d of the %d requested genes; at least %d are needed for correlation.",
			len(profiles), len(args.GencodeIds), tools.MinComparisonGenes)), nil
	}

	pairs := correlateProfiles(profiles)
	sort.SliceStable(pairs, func(i, j int) bool {
		return math.Abs(pairs[i].r) > math.Abs(pairs[j].r)
	})

	var b strings.Builder
	fmt.Fprintf(&b, "Pairwise expression correlations (%d gene(s), %d pair(s)):\n", len(profiles), len(pairs))
	for _, p := range pairs {
		if p.insufficient {
			fmt.Fprintf(&b, "\n%s vs %s: insufficient data (%d shared tissue(s), need at least %d)",
				p.geneA, p.geneB, p.shared, minSharedTissues)
			continue
		}
		fmt.Fprintf(&b, "\n%s vs %s: r=%.3f (%s, %d shared tissues)",
			p.geneA, p.geneB, p.r, correlationStrength(p.r), p.shared)
	}

	return mcp.NewToolResultText(b.String()), nil
}

func buildProfiles(records []gtex.Record) []*geneProfile {
	var order []string
	byGene := map[string]*geneProfile{}
	for _, rec := range records {
		label := report.GeneLabel(rec.String("geneSymbol"), rec.String("gencodeId"))
		profile, ok := byGene[label]
		if !ok {
			profile = &geneProfile{label: label, medians: map[string]float64{}}
			byGene[label] = profile
			order = append(order, label)
		}
		tissue := rec.String("tissueSiteDetailId")
		if _, seen := profile.medians[tissue]; !seen {
			profile.tissues = append(profile.tissues, tissue)
		}
		profile.medians[tissue] = rec.Float("median")
	}

	profiles := make([]*geneProfile, 0, len(order))
	for _, label := range order {
		profiles = append(profiles, byGene[label])
	}
	return profiles
}

func correlateProfiles(profiles []*geneProfile) []correlationPair {
	var pairs []correlationPair
	for i := 0; i < len(profiles); i++ {
		for j := i + 1; j < len(profiles); j++ {
			a, b := profiles[i], profiles[j]
			var x, y []float64
			for _, tissue := range a.tissues {
				if m, ok := b.medians[tissue]; ok {
					x = append(x, a.medians[tissue])
					y = append(y, m)
				}
			}
			pair := correlationPair{geneA: a.label, geneB: b.label, shared: len(x)}
			if len(x) < minSharedTissues {
				pair.insufficient = true
			} else {
				pair.r = stats.PearsonCorrelation(x, y)
			}
			pairs = append(pairs, pair)
		}
	}
	return pairs
}

func correlationStrength(r float64) string {
	abs := math.Abs(r)
	direction := "positive"
	if r < 0 {
		direction = "negative"
	}
	switch {
	case abs >= 0.8:
		return "strong " + direction
	case abs >= 0.5:
		return "moderate " + direction
	case abs >= 0.3:
		return "weak " + direction
	default:
		return "negligible"
	}
}
