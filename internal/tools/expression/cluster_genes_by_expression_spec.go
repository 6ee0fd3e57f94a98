package expression

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type ClusterGenesByExpressionInput struct {
	GencodeIds           []string `json:"gencodeIds" jsonschema:"description=GENCODE gene IDs to cluster (2 to 20)"`
	CorrelationThreshold float64  `json:"correlationThreshold,omitempty" jsonschema:"default=0.7,description=Minimum Pearson correlation with a cluster seed for membership"`
	TissueSiteDetailIds  []string `json:"tissueSiteDetailIds,omitempty" jsonschema:"description=Tissue site detail IDs to restrict the comparison to"`
	DatasetId            string   `json:"datasetId,omitempty" jsonschema:"default=gtex_v8,description=GTEx dataset ID"`
}

func ClusterGenesByExpressionSpec() mcp.Tool {
	return mcp.NewTool("cluster_genes_by_expression",
		mcp.WithDescription("Group up to 20 genes into co-expression clusters by greedy assignment: a gene joins the first cluster whose seed it correlates with above the threshold."),
		mcp.WithInputSchema[ClusterGenesByExpressionInput](),
		mcp.WithTitleAnnotation("Cluster Genes By Expression"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
