package association_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gtex/mcp/internal/gtex"
	"github.com/gtex/mcp/internal/tools/association"
)

func TestAnalyzeLdStructureHandler(t *testing.T) {
	t.Run("constrains the fetch to the window and bins by distance", func(t *testing.T) {
		deps, svc := newDeps(t)

		svc.EXPECT().
			Get(gomock.Any(), gtex.PathVariantByLocation, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, query gtex.Query) (*gtex.Result, error) {
				encoded := query.Encode()
				assert.Contains(t, encoded, "chromosome=chr7")
				assert.Contains(t, encoded, "start=54919017")
				assert.Contains(t, encoded, "end=55119017")
				assert.Contains(t, encoded, "page=0")
				return &gtex.Result{
					Records: []gtex.Record{
						{"variantId": "chr7_55019517_A_G_b38", "pos": float64(55019517), "snpId": "rs1050171"},
						{"variantId": "chr7_55024017_C_T_b38", "pos": float64(55024017)},
						{"variantId": "chr7_55039017_G_A_b38", "pos": float64(55039017)},
						{"variantId": "chr7_55099017_T_C_b38", "pos": float64(55099017)},
					},
					Paging: &gtex.PagingInfo{NumberOfPages: 1, TotalNumberOfItems: 4},
				}, nil
			})

		result := callTool(t, association.AnalyzeLdStructureHandler(deps), map[string]any{
			"chromosome": "chr7",
			"position":   float64(55019017),
		})

		require.False(t, result.IsError)
		text := textOf(t, result)
		assert.Contains(t, text, "Variant density around chr7:55019017 (window +/-100000 bp, 4 variant(s)):")
		assert.Contains(t, text, "<1kb: 1 variant(s)")
		assert.Contains(t, text, "1-10kb: 1 variant(s)")
		assert.Contains(t, text, "10-50kb: 1 variant(s)")
		assert.Contains(t, text, "50kb+: 1 variant(s)")
		assert.Contains(t, text, "Nearest variant: chr7_55019517_A_G_b38 at chr7:55019517 (500 bp away) [rs1050171]")
		assert.Contains(t, text, "not a linkage-disequilibrium analysis")
	})

	t.Run("pages through the whole window", func(t *testing.T) {
		deps, svc := newDeps(t)

		svc.EXPECT().
			Get(gomock.Any(), gtex.PathVariantByLocation, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, query gtex.Query) (*gtex.Result, error) {
				encoded := query.Encode()
				if strings.Contains(encoded, "page=0") {
					return &gtex.Result{
						Records: []gtex.Record{
							{"variantId": "chr1_1000500_A_G_b38", "pos": float64(1000500)},
						},
						Paging: &gtex.PagingInfo{NumberOfPages: 2, Page: 0},
					}, nil
				}
				assert.Contains(t, encoded, "page=1")
				return &gtex.Result{
					Records: []gtex.Record{
						{"variantId": "chr1_1060000_C_T_b38", "pos": float64(1060000)},
					},
					Paging: &gtex.PagingInfo{NumberOfPages: 2, Page: 1},
				}, nil
			}).
			Times(2)

		result := callTool(t, association.AnalyzeLdStructureHandler(deps), map[string]any{
			"chromosome": "chr1",
			"position":   float64(1000000),
		})

		require.False(t, result.IsError)
		text := textOf(t, result)
		assert.Contains(t, text, "window +/-100000 bp, 2 variant(s)")
		assert.Contains(t, text, "<1kb: 1 variant(s)")
		assert.Contains(t, text, "50kb+: 1 variant(s)")
		assert.Contains(t, text, "Nearest variant: chr1_1000500_A_G_b38")
	})

	t.Run("reports an empty window", func(t *testing.T) {
		deps, svc := newDeps(t)

		svc.EXPECT().
			Get(gomock.Any(), gtex.PathVariantByLocation, gomock.Any()).
			Return(&gtex.Result{Records: []gtex.Record{}}, nil)

		result := callTool(t, association.AnalyzeLdStructureHandler(deps), map[string]any{
			"chromosome": "chr7",
			"position":   float64(55019017),
		})

		require.False(t, result.IsError)
		assert.Contains(t, textOf(t, result), "No variants found within 100000 bp of chr7:55019017.")
	})

	t.Run("requires a positive position", func(t *testing.T) {
		deps, _ := newDeps(t)

		result := callTool(t, association.AnalyzeLdStructureHandler(deps), map[string]any{
			"chromosome": "chr7",
		})

		require.True(t, result.IsError)
		assert.Contains(t, textOf(t, result), `Parameter "position" is required`)
	})
}
