package expression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/tools/expression"
)

func TestCompareTissueExpressionHandler_ReportsFoldChangeAndDirection(t *testing.T) {
	deps, svc := newDeps(t)

	svc.EXPECT().
		Get(gomock.Any(), gtex.PathMedianGeneExpression, gomock.Any()).
		Return(&gtex.Result{Records: []gtex.Record{
			{"geneSymbol": "APOE", "tissueSiteDetailId": "Brain_Cortex", "median": 40.0},
			{"geneSymbol": "APOE", "tissueSiteDetailId": "Brain_Hippocampus", "median": 20.0},
			{"geneSymbol": "APOE", "tissueSiteDetailId": "Liver", "median": 15.0},
			{"geneSymbol": "APOE", "tissueSiteDetailId": "Whole_Blood", "median": 1.0},
		}}, nil)

	result := callTool(t, expression.CompareTissueExpressionHandler(deps), map[string]any{
		"gencodeId":    "ENSG00000130203.10",
		"tissueGroup1": "brain",
		"tissueGroup2": "liver",
	})

	assert.False(t, result.IsError)
	body := textOf(t, result)

	// brain group mean is (40+20)/2 = 30, liver is 15
	assert.Contains(t, body, `Group "brain" (2 tissue(s), mean median TPM 30.00)`)
	assert.Contains(t, body, `Group "liver" (1 tissue(s), mean median TPM 15.00)`)
	assert.Contains(t, body, "Fold change (brain / liver): 2.00")
	assert.Contains(t, body, "Log2 fold change: 1.00")
	assert.Contains(t, body, "Direction: Higher in brain")
	assert.NotContains(t, body, "Whole Blood", "tissues outside both groups are excluded")
}

func TestCompareTissueExpressionHandler_UnmatchedGroup(t *testing.T) {
	deps, svc := newDeps(t)

	svc.EXPECT().
		Get(gomock.Any(), gtex.PathMedianGeneExpression, gomock.Any()).
		Return(&gtex.Result{Records: []gtex.Record{
			{"geneSymbol": "APOE", "tissueSiteDetailId": "Liver", "median": 15.0},
		}}, nil)

	result := callTool(t, expression.CompareTissueExpressionHandler(deps), map[string]any{
		"gencodeId":    "ENSG00000130203.10",
		"tissueGroup1": "brain",
		"tissueGroup2": "liver",
	})

	assert.False(t, result.IsError)
	assert.Contains(t, textOf(t, result), `No tissues matched group "brain"`)
}

func TestCompareTissueExpressionHandler_RequiresAllParams(t *testing.T) {
	deps, _ := newDeps(t)

	result := callTool(t, expression.CompareTissueExpressionHandler(deps), map[string]any{
		"gencodeId":    "ENSG00000130203.10",
		"tissueGroup1": "brain",
	})

	assert.True(t, result.IsError)
	assert.Contains(t, textOf(t, result), `Parameter "tissueGroup2" is required`)
}

func TestCompareTissueExpressionHandler_MissingParamOrderIsFixed(t *testing.T) {
	deps, _ := newDeps(t)

	result := callTool(t, expression.CompareTissueExpressionHandler(deps), map[string]any{})

	assert.True(t, result.IsError)
	assert.Contains(t, textOf(t, result), `Parameter "gencodeId" is required`)
}
