package gene_test

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
	"github.com/gtex/mcp/internal/tools/gene"
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

func TestSearchGenesHandler(t *testing.T) {
	t.Run("renders matches with defaults applied", func(t *testing.T) {
		deps, svc := newDeps(t)

		svc.EXPECT().
			Get(gomock.Any(), gtex.PathGeneSearch, gomock.Any()).
			DoAndReturn(func(_ any, _ string, query gtex.Query) (*gtex.Result, error) {
				qs := query.Encode()
				assert.Contains(t, qs, "geneId=BRCA1")
				assert.Contains(t, qs, "gencodeVersion=v26")
				return &gtex.Result{Records: []gtex.Record{
					{
						"geneSymbol":  "BRCA1",
						"gencodeId":   "ENSG00000012048.23",
						"geneType":    "protein coding",
						"chromosome":  "chr17",
						"start":       float64(43044295),
						"end":         float64(43170245),
						"strand":      "-",
						"description": "BRCA1 DNA repair associated",
					},
				}}, nil
			})

		result := callTool(t, gene.SearchGenesHandler(deps), map[string]any{
			"query": "BRCA1",
		})

		assert.False(t, result.IsError)
		body := textOf(t, result)
		assert.Contains(t, body, `Found 1 gene(s) matching "BRCA1"`)
		assert.Contains(t, body, "BRCA1 (ENSG00000012048.23)")
		assert.Contains(t, body, "Location: chr17:43044295-43170245 (-)")
	})

	t.Run("empty query is an error", func(t *testing.T) {
		deps, _ := newDeps(t)

		result := callTool(t, gene.SearchGenesHandler(deps), map[string]any{})

		assert.True(t, result.IsError)
		assert.Contains(t, textOf(t, result), `Parameter "query" is required`)
	})

	t.Run("no matches", func(t *testing.T) {
		deps, svc := newDeps(t)

		svc.EXPECT().
			Get(gomock.Any(), gtex.PathGeneSearch, gomock.Any()).
			Return(&gtex.Result{}, nil)

		result := callTool(t, gene.SearchGenesHandler(deps), map[string]any{
			"query": "NOPE123",
		})

		assert.False(t, result.IsError)
		assert.Contains(t, textOf(t, result), `No genes found matching "NOPE123"`)
	})

	t.Run("paging note when more results exist", func(t *testing.T) {
		deps, svc := newDeps(t)

		svc.EXPECT().
			Get(gomock.Any(), gtex.PathGeneSearch, gomock.Any()).
			Return(&gtex.Result{
				Records: []gtex.Record{{"geneSymbol": "KRAS", "gencodeId": "ENSG00000133703.13"}},
				Paging:  &gtex.PagingInfo{TotalNumberOfItems: 40},
			}, nil)

		result := callTool(t, gene.SearchGenesHandler(deps), map[string]any{
			"query": "KRAS",
		})

		assert.Contains(t, textOf(t, result), "showing 1 of 40 total results")
	})
}

func TestGetGoAnnotationsHandler(t *testing.T) {
	deps, svc := newDeps(t)

	svc.EXPECT().
		Get(gomock.Any(), gtex.PathGene, gomock.Any()).
		Return(&gtex.Result{Records: []gtex.Record{
			{
				"geneSymbol":  "EGFR",
				"gencodeId":   "ENSG00000146648.17",
				"description": "epidermal growth factor receptor tyrosine kinase",
			},
		}}, nil)

	result := callTool(t, gene.GetGoAnnotationsHandler(deps), map[string]any{
		"geneIds": []any{"EGFR"},
	})

	assert.False(t, result.IsError)
	body := textOf(t, result)

	assert.Contains(t, body, "Biological process: protein phosphorylation; signal transduction")
	assert.Contains(t, body, "Molecular function: kinase activity; receptor activity")
	assert.Contains(t, body, "Cellular component: no terms inferred")
	assert.Contains(t, body, "inferred heuristically")
	assert.Contains(t, body, "AmiGO or QuickGO")
}
