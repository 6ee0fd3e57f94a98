package expression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/tools/expression"
)

func TestGetSingleNucleusExpressionHandler(t *testing.T) {
	t.Run("flattens nested cell types and sorts by mean", func(t *testing.T) {
		deps, svc := newDeps(t)

		svc.EXPECT().
			Get(gomock.Any(), gtex.PathSingleNucleusExpression, gomock.Any()).
			Return(&gtex.Result{Records: []gtex.Record{
				{
					"geneSymbol":         "CFTR",
					"gencodeId":          "ENSG00000001626.14",
					"tissueSiteDetailId": "Lung",
					"cellTypes": []any{
						map[string]any{"cellType": "Immune cell", "meanWithZeros": 0.8, "count": float64(300)},
						map[string]any{"cellType": "Epithelial cell", "meanWithZeros": 2.5, "count": float64(1200)},
					},
				},
				{
					"geneSymbol":         "CFTR",
					"gencodeId":          "ENSG00000001626.14",
					"tissueSiteDetailId": "Breast_Mammary_Tissue",
					"cellTypes": []any{
						map[string]any{"cellType": "Epithelial cell", "meanWithZeros": 1.1, "count": float64(450)},
					},
				},
			}}, nil)

		result := callTool(t, expression.GetSingleNucleusExpressionHandler(deps), map[string]any{
			"gencodeIds": []any{"ENSG00000001626.14"},
		})

		require.False(t, result.IsError)
		text := textOf(t, result)
		assert.Contains(t, text, "CFTR (ENSG00000001626.14) - expression across 3 cell type entries:")
		assert.Contains(t, text, "1. Lung / Epithelial cell: mean=2.500 (1200 cells)")
		assert.Contains(t, text, "2. Breast Mammary Tissue / Epithelial cell: mean=1.100 (450 cells)")
		assert.Contains(t, text, "3. Lung / Immune cell: mean=0.800 (300 cells)")
		assert.Contains(t, text, "Total cells measured: 1950")
	})

	t.Run("reports records without cell type entries", func(t *testing.T) {
		deps, svc := newDeps(t)

		svc.EXPECT().
			Get(gomock.Any(), gtex.PathSingleNucleusExpression, gomock.Any()).
			Return(&gtex.Result{Records: []gtex.Record{
				{"geneSymbol": "CFTR", "gencodeId": "ENSG00000001626.14", "tissueSiteDetailId": "Lung"},
			}}, nil)

		result := callTool(t, expression.GetSingleNucleusExpressionHandler(deps), map[string]any{
			"gencodeIds": []any{"ENSG00000001626.14"},
		})

		require.False(t, result.IsError)
		assert.Contains(t, textOf(t, result),
			"No per-cell-type expression entries found for ENSG00000001626.14.")
	})

	t.Run("reports when no data is returned", func(t *testing.T) {
		deps, svc := newDeps(t)

		svc.EXPECT().
			Get(gomock.Any(), gtex.PathSingleNucleusExpression, gomock.Any()).
			Return(&gtex.Result{Records: []gtex.Record{}}, nil)

		result := callTool(t, expression.GetSingleNucleusExpressionHandler(deps), map[string]any{
			"gencodeIds":          []any{"ENSG00000001626.14"},
			"tissueSiteDetailIds": []any{"Lung"},
		})

		require.False(t, result.IsError)
		assert.Contains(t, textOf(t, result),
			"No single-nucleus expression data found for ENSG00000001626.14 in tissues: Lung.")
	})

	t.Run("requires gene ids", func(t *testing.T) {
		deps, _ := newDeps(t)

		result := callTool(t, expression.GetSingleNucleusExpressionHandler(deps), map[string]any{})

		require.True(t, result.IsError)
		assert.Contains(t, textOf(t, result), `Parameter "gencodeIds" is required`)
	})
}
