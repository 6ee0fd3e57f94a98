package association_test

import (
	"context"
	"io"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/gtex/mocks"
	"github.com/gtex/mcp/internal/logger"
	"github.com/gtex/mcp/internal/tools"
	"github.com/gtex/mcp/internal/tools/association"
)

func newDeps(t *testing.T) (*tools.ToolDependencies, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	return &tools.ToolDependencies{
		GTEx: svc,
		Log:  logger.New("error", "text", io.Discard),
	}, svc
}

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args

	result, err := handler(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	return text.Text
}

func TestGetEqtlGenesHandler(t *testing.T) {
	t.Run("groups by tissue and sorts by q-value", func(t *testing.T) {
		deps, svc := newDeps(t)

		svc.EXPECT().
			Get(gomock.Any(), gtex.PathEqtlGenes, gomock.Any()).
			Return(&gtex.Result{Records: []gtex.Record{
				{"geneSymbol": "GENE_A", "gencodeId": "ENSG1", "tissueSiteDetailId": "Liver", "qValue": 0.04, "pValue": 1e-6},
				{"geneSymbol": "GENE_B", "gencodeId": "ENSG2", "tissueSiteDetailId": "Liver", "qValue": 0.001, "pValue": 1e-9},
				{"geneSymbol": "GENE_C", "gencodeId": "ENSG3", "tissueSiteDetailId": "Liver", "qValue": 0.2, "pValue": 1e-3},
			}}, nil)

		result := callTool(t, association.GetEqtlGenesHandler(deps), map[string]any{
			"tissueSiteDetailIds": []any{"Liver"},
		})

		assert.False(t, result.IsError)
		body := textOf(t, result)

		assert.Contains(t, body, "Liver - 3 eGene(s):")
		assert.Contains(t, body, "1. GENE_B (ENSG2)")
		assert.Contains(t, body, "2. GENE_A (ENSG1)")
		assert.Contains(t, body, "3. GENE_C (ENSG3)")
		assert.Contains(t, body, "2 of 3 eGenes significant at q<0.05")
	})

	t.Run("no data names the filter", func(t *testing.T) {
		deps, svc := newDeps(t)

		svc.EXPECT().
			Get(gomock.Any(), gtex.PathEqtlGenes, gomock.Any()).
			Return(&gtex.Result{}, nil)

		result := callTool(t, association.GetEqtlGenesHandler(deps), map[string]any{
			"tissueSiteDetailIds": []any{"Liver"},
		})

		assert.Contains(t, textOf(t, result), "No eGene data found in tissues: Liver")
	})
}

func TestGetFineMappingHandler(t *testing.T) {
	deps, svc := newDeps(t)

	fmRec := func(variant string, pip float64) gtex.Record {
		return gtex.Record{
			"geneSymbol":         "APOE",
			"gencodeId":          "ENSG00000130203.10",
			"tissueSiteDetailId": "Brain_Cortex",
			"method":             "SUSIE",
			"credibleSetId":      "cs1",
			"credibleSetSize":    float64(12),
			"variantId":          variant,
			"pip":                pip,
		}
	}

	svc.EXPECT().
		Get(gomock.Any(), gtex.PathFineMapping, gomock.Any()).
		Return(&gtex.Result{Records: []gtex.Record{
			fmRec("chr19_1_A_G_b38", 0.10),
			fmRec("chr19_2_A_G_b38", 0.50),
			fmRec("chr19_3_A_G_b38", 0.20),
			fmRec("chr19_4_A_G_b38", 0.05),
			fmRec("chr19_5_A_G_b38", 0.04),
			fmRec("chr19_6_A_G_b38", 0.03),
			fmRec("chr19_7_A_G_b38", 0.02),
		}}, nil)

	result := callTool(t, association.GetFineMappingHandler(deps), map[string]any{
		"gencodeIds": []any{"ENSG00000130203.10"},
	})

	assert.False(t, result.IsError)
	body := textOf(t, result)

	assert.Contains(t, body, "APOE (ENSG00000130203.10) - fine mapping (7 variant record(s)):")
	assert.Contains(t, body, "Brain Cortex [SUSIE]:")
	// Declared size comes from the API field, not the member count
	assert.Contains(t, body, "Credible set cs1 (declared size 12, total PIP 0.940):")
	assert.Contains(t, body, "1. chr19_2_A_G_b38: PIP=0.500")
	assert.Contains(t, body, "... and 2 more")
}

func TestGetFineMappingHandler_APIError(t *testing.T) {
	deps, svc := newDeps(t)

	svc.EXPECT().
		Get(gomock.Any(), gtex.PathFineMapping, gomock.Any()).
		Return(nil, &gtex.APIError{Status: 500, Message: "Server error - the GTEx API is having issues, please retry later"})

	result := callTool(t, association.GetFineMappingHandler(deps), map[string]any{
		"gencodeIds": []any{"ENSG00000130203.10"},
	})

	assert.True(t, result.IsError)
	assert.Contains(t, textOf(t, result), "Server error")
}
