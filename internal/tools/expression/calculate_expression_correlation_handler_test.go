package expression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/tools/expression"
)

func medianRec(gene, tissue string, median float64) gtex.Record {
	return gtex.Record{"geneSymbol": gene, "tissueSiteDetailId": tissue, "median": median}
}

func TestCalculateExpressionCorrelationHandler_PerfectCorrelation(t *testing.T) {
	deps, svc := newDeps(t)

	svc.EXPECT().
		Get(gomock.Any(), gtex.PathMedianGeneExpression, gomock.Any()).
		Return(&gtex.Result{Records: []gtex.Record{
			medianRec("GENE1", "Liver", 1),
			medianRec("GENE1", "Lung", 2),
			medianRec("GENE1", "Spleen", 3),
			medianRec("GENE2", "Liver", 2),
			medianRec("GENE2", "Lung", 4),
			medianRec("GENE2", "Spleen", 6),
		}}, nil)

	result := callTool(t, expression.CalculateExpressionCorrelationHandler(deps), map[string]any{
		"gencodeIds": []any{"ENSG1", "ENSG2"},
	})

	assert.False(t, result.IsError)
	body := textOf(t, result)
	assert.Contains(t, body, "GENE1 vs GENE2: r=1.000 (strong positive, 3 shared tissues)")
}

func TestCalculateExpressionCorrelationHandler_InsufficientSharedTissues(t *testing.T) {
	deps, svc := newDeps(t)

	svc.EXPECT().
		Get(gomock.Any(), gtex.PathMedianGeneExpression, gomock.Any()).
		Return(&gtex.Result{Records: []gtex.Record{
			medianRec("GENE1", "Liver", 1),
			medianRec("GENE1", "Lung", 2),
			medianRec("GENE2", "Liver", 2),
			medianRec("GENE2", "Spleen", 6),
		}}, nil)

	result := callTool(t, expression.CalculateExpressionCorrelationHandler(deps), map[string]any{
		"gencodeIds": []any{"ENSG1", "ENSG2"},
	})

	assert.False(t, result.IsError)
	assert.Contains(t, textOf(t, result), "insufficient data (1 shared tissue(s), need at least 3)")
}

func TestCalculateExpressionCorrelationHandler_TooFewGenes(t *testing.T) {
	deps, _ := newDeps(t)

	result := callTool(t, expression.CalculateExpressionCorrelationHandler(deps), map[string]any{
		"gencodeIds": []any{"ENSG1"},
	})

	assert.True(t, result.IsError)
	assert.Contains(t, textOf(t, result), "At least 2 genes are required")
}

func TestCalculateExpressionCorrelationHandler_QuotaAdvisory(t *testing.T) {
	deps, _ := newDeps(t)

	ids := make([]any, 11)
	for i := range ids {
		ids[i] = "ENSG"
	}

	result := callTool(t, expression.CalculateExpressionCorrelationHandler(deps), map[string]any{
		"gencodeIds": ids,
	})

	assert.False(t, result.IsError)
	assert.Contains(t, textOf(t, result), "Maximum 10 genes allowed per query, but 11 were provided")
}
