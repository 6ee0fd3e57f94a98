package dataset

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/gtex/mocks"
	"github.com/gtex/mcp/internal/logger"
	"github.com/gtex/mcp/internal/tools"
)

func mockDeps(t *testing.T) (*tools.ToolDependencies, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	return &tools.ToolDependencies{
		GTEx: svc,
		Log:  logger.New("error", "text", io.Discard),
	}, svc
}

func TestValidateVariantIdsHandler_OneLookupPerID(t *testing.T) {
	deps, svc := mockDeps(t)

	lookups := 0
	svc.EXPECT().
		Get(gomock.Any(), gtex.PathVariant, gomock.Any()).
		DoAndReturn(func(_ any, _ string, query gtex.Query) (*gtex.Result, error) {
			lookups++
			qs := query.Encode()
			switch {
			case strings.Contains(qs, "variantId=chr1_13550_G_A_b38"):
				return &gtex.Result{Records: []gtex.Record{{"variantId": "chr1_13550_G_A_b38"}}}, nil
			case strings.Contains(qs, "snpId=rs1410858"):
				return &gtex.Result{Records: []gtex.Record{{"variantId": "chr10_92110_C_T_b38", "snpId": "rs1410858"}}}, nil
			default:
				return &gtex.Result{}, nil
			}
		}).
		Times(3)

	result := callHandler(t, ValidateVariantIdsHandler(deps), map[string]any{
		"variantIds": []any{"chr1_13550_G_A_b38", "rs1410858", "rs0000000"},
	})

	assert.False(t, result.IsError)
	assert.Equal(t, 3, lookups)

	body := resultText(t, result)
	assert.Contains(t, body, "Valid: 2")
	assert.Contains(t, body, "Not found: 1")
	assert.Contains(t, body, "rs0000000")
	assert.Contains(t, body, "rs1410858 ->", "rsIDs resolve to their canonical variant ID")
}

func TestValidateVariantIdsHandler_QuotaAdvisorySkipsNetwork(t *testing.T) {
	deps, _ := mockDeps(t)

	ids := make([]any, 51)
	for i := range ids {
		ids[i] = "rs1"
	}

	result := callHandler(t, ValidateVariantIdsHandler(deps), map[string]any{
		"variantIds": ids,
	})

	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result),
		"Maximum 50 variant IDs allowed per query, but 51 were provided")
}

func TestValidateVariantIdsHandler_StopsOnAPIError(t *testing.T) {
	deps, svc := mockDeps(t)

	svc.EXPECT().
		Get(gomock.Any(), gtex.PathVariant, gomock.Any()).
		Return(nil, &gtex.APIError{Status: 500, Message: "Server error - the GTEx API is having issues, please retry later"})

	result := callHandler(t, ValidateVariantIdsHandler(deps), map[string]any{
		"variantIds": []any{"rs1410858", "rs12345"},
	})

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "Server error")
}
