package expression

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

const defaultCorrelationThreshold = 0.7

type geneCluster struct {
	seed    *geneProfile
	members []*geneProfile
}

func ClusterGenesByExpressionHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleClusterGenesByExpression(ctx, request, deps)
	}
}

func handleClusterGenesByExpression(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GTEx == nil {
		errMessage := "GTEx API service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args ClusterGenesByExpressionInput
	if err := tools.BindInput(request, &args); err != nil {
		deps.Log.Error("failed to bind arguments", "tool", "cluster_genes_by_expression", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if res := tools.RequireIDList("gencodeIds", args.GencodeIds, "genes", tools.MaxClusteringGenes); res != nil {
		return res, nil
	}
	if len(args.GencodeIds) < tools.MinComparisonGenes {
		return mcp.NewToolResultError(fmt.Sprintf(
			"At least %d genes are required for clustering, but %d were provided",
			tools.MinComparisonGenes, len(args.GencodeIds))), nil
	}
	threshold := args.CorrelationThreshold
	if threshold <= 0 || threshold > 1 {
		threshold = defaultCorrelationThreshold
	}

	query := gtex.Query{}.
		AddAll("gencodeId", args.GencodeIds).
		AddAll("tissueSiteDetailId", args.TissueSiteDetailIds).
		Add("datasetId", tools.OrDefault(args.DatasetId, gtex.DefaultDatasetID)).
		AddInt("page", gtex.DefaultPage).
		AddInt("itemsPerPage", gtex.DefaultItemsPerPage)

	result, err := deps.GTEx.Get(ctx, gtex.PathMedianGeneExpression, query)
	if err != nil {
		deps.Log.Error("median expression lookup for clustering failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(result.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No median expression data found for %s%s.",
			strings.Join(args.GencodeIds, ", "),
			report.FilterClause("tissues", args.TissueSiteDetailIds))), nil
	}

	profiles := buildProfiles(result.Records)
	clusters := clusterProfiles(profiles, threshold)

	var b strings.Builder
	fmt.Fprintf(&b, "Co-expression clusters (%d gene(s), threshold r>=%.2f):\n", len(profiles), threshold)
	for i, cluster := range clusters {
		names := make([]string, 0, len(cluster.members))
		for _, p := range cluster.members {
			names = append(names, p.label)
		}
		fmt.Fprintf(&b, "\nCluster %d (%d gene(s)): %s", i+1, len(names), strings.Join(names, ", "))
		if len(cluster.members) > 1 {
			fmt.Fprintf(&b, "\n  Mean correlation with seed %s: %.3f",
				cluster.seed.label, meanSeedCorrelation(cluster))
		}
	}
	fmt.Fprintf(&b, "\n\nClustering is greedy over median expression across tissues; it is a screening aid, not a co-expression network analysis.")

	return mcp.NewToolResultText(b.String()), nil
}

// clusterProfiles assigns each gene to the first cluster whose seed it
// correlates with at or above threshold, seeding a new cluster otherwise.
func clusterProfiles(profiles []*geneProfile, threshold float64) []*geneCluster {
	var clusters []*geneCluster
	for _, profile := range profiles {
		assigned := false
		for _, cluster := range clusters {
			if r, ok := profileCorrelation(cluster.seed, profile); ok && r >= threshold {
				cluster.members = append(cluster.members, profile)
				assigned = true
				break
			}
		}
		if !assigned {
			clusters = append(clusters, &geneCluster{seed: profile, members: []*geneProfile{profile}})
		}
	}
	return clusters
}

func profileCorrelation(a, b *geneProfile) (float64, bool) {
	var x, y []float64
	for _, tissue := range a.tissues {
		if m, ok := b.medians[tissue]; ok {
			x = append(x, a.medians[tissue])
			y = append(y, m)
		}
	}
	if len(x) < minSharedTissues {
		return 0, false
	}
	return stats.PearsonCorrelation(x, y), true
}

func meanSeedCorrelation(cluster *geneCluster) float64 {
	var rs []float64
	for _, member := range cluster.members {
		if member == cluster.seed {
			continue
		}
		if r, ok := profileCorrelation(cluster.seed, member); ok {
			rs = append(rs, r)
		}
	}
	return stats.Basic(rs).Mean
}
