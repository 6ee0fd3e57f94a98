package association_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/tools/association"
)

func TestGetMultiTissueEqtlsHandler(t *testing.T) {
	t.Run("flattens per-tissue effects and sorts by m-value", func(t *testing.T) {
		deps, svc := newDeps(t)

		svc.EXPECT().
			Get(gomock.Any(), gtex.PathMultiTissueEqtl, gomock.Any()).
			Return(&gtex.Result{Records: []gtex.Record{
				{
					"variantId": "chr1_100_A_G_b38",
					"metaP":     1e-8,
					"tissues": map[string]any{
						"Whole_Blood": map[string]any{"mValue": 0.2, "nes": 0.1, "pValue": 0.3},
						"Liver":       map[string]any{"mValue": 1.0, "nes": 0.5, "pValue": 1e-5},
						"Lung":        map[string]any{"mValue": 0.95, "nes": 0.4, "pValue": 1e-4},
					},
				},
			}}, nil)

		result := callTool(t, association.GetMultiTissueEqtlsHandler(deps), map[string]any{
			"gencodeId": "ENSG00000130203.10",
		})

		require.False(t, result.IsError)
		text := textOf(t, result)
		assert.Contains(t, text, "Multi-tissue eQTL meta-analysis for ENSG00000130203.10:")
		assert.Contains(t, text, "chr1_100_A_G_b38 (meta-analysis p=1.00e-08) - 3 tissue(s):")
		assert.Contains(t, text, "1. Liver: m-value=1.000 NES=0.500 p=1.00e-05")
		assert.Contains(t, text, "2. Lung: m-value=0.950 NES=0.400 p=1.00e-04")
		assert.Contains(t, text, "3. Whole Blood: m-value=0.200")
		assert.Contains(t, text, "Effect present (m>=0.9) in 2 of 3 tissues")
	})

	t.Run("renders tied m-values in a stable tissue order", func(t *testing.T) {
		deps, svc := newDeps(t)

		svc.EXPECT().
			Get(gomock.Any(), gtex.PathMultiTissueEqtl, gomock.Any()).
			Return(&gtex.Result{Records: []gtex.Record{
				{
					"variantId": "chr2_200_C_T_b38",
					"metaP":     1e-6,
					"tissues": map[string]any{
						"Lung":                 map[string]any{"mValue": 0.5, "nes": 0.1, "pValue": 0.01},
						"Adipose_Subcutaneous": map[string]any{"mValue": 0.5, "nes": 0.2, "pValue": 0.02},
						"Brain_Cortex":         map[string]any{"mValue": 0.5, "nes": 0.3, "pValue": 0.03},
					},
				},
			}}, nil)

		result := callTool(t, association.GetMultiTissueEqtlsHandler(deps), map[string]any{
			"gencodeId": "ENSG00000130203.10",
		})

		require.False(t, result.IsError)
		text := textOf(t, result)
		adipose := strings.Index(text, "Adipose Subcutaneous")
		brain := strings.Index(text, "Brain Cortex")
		lung := strings.Index(text, "Lung")
		require.NotEqual(t, -1, adipose)
		require.NotEqual(t, -1, brain)
		require.NotEqual(t, -1, lung)
		assert.Less(t, adipose, brain)
		assert.Less(t, brain, lung)
	})

	t.Run("reports rows without per-tissue effects", func(t *testing.T) {
		deps, svc := newDeps(t)

		svc.EXPECT().
			Get(gomock.Any(), gtex.PathMultiTissueEqtl, gomock.Any()).
			Return(&gtex.Result{Records: []gtex.Record{
				{"variantId": "chr1_100_A_G_b38", "metaP": 1e-8},
			}}, nil)

		result := callTool(t, association.GetMultiTissueEqtlsHandler(deps), map[string]any{
			"gencodeId": "ENSG00000130203.10",
		})

		require.False(t, result.IsError)
		assert.Contains(t, textOf(t, result),
			"Multi-tissue eQTL rows for ENSG00000130203.10 contained no per-tissue effects.")
	})

	t.Run("requires a gencodeId", func(t *testing.T) {
		deps, _ := newDeps(t)

		result := callTool(t, association.GetMultiTissueEqtlsHandler(deps), map[string]any{})

		require.True(t, result.IsError)
		assert.Contains(t, textOf(t, result), `Parameter "gencodeId" is required`)
	})
}
