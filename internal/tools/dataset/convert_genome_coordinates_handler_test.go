package dataset

import (
	"context"
	"io"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtex/mcp/internal/logger"
	"github.com/gtex/mcp/internal/tools"
)

func callHandler(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args

	result, err := handler(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	return text.Text
}

func TestConversionOffset_ReverseIsExactNegation(t *testing.T) {
	cases := []struct {
		chromosome string
		position   int
	}{
		{"chr1", 43125364},
		{"chr2", 100000},
		{"chr7", 55019017},
		{"chrX", 2781479},
		{"chrY", 56887902},
		{"chr22", 1},
	}

	for _, tc := range cases {
		forward := conversionOffset("hg19", "hg38", tc.chromosome, tc.position)
		reverse := conversionOffset("hg38", "hg19", tc.chromosome, tc.position)
		assert.Equal(t, -forward, reverse, "%s:%d", tc.chromosome, tc.position)
	}
}

func TestConversionOffset_ChromosomeAdjustments(t *testing.T) {
	// Base magnitude at position 1000000 is 100
	assert.Equal(t, 200, conversionOffset("hg19", "hg38", "chr1", 1000000))
	assert.Equal(t, 50, conversionOffset("hg19", "hg38", "chr2", 1000000))
	assert.Equal(t, 125, conversionOffset("hg19", "hg38", "chrX", 1000000))
	assert.Equal(t, 75, conversionOffset("hg19", "hg38", "chrY", 1000000))
	assert.Equal(t, 100, conversionOffset("hg19", "hg38", "chr7", 1000000))
}

func TestConvertGenomeCoordinatesHandler(t *testing.T) {
	deps := &tools.ToolDependencies{Log: logger.New("error", "text", io.Discard)}
	handler := ConvertGenomeCoordinatesHandler(deps)

	t.Run("converts with disclaimer", func(t *testing.T) {
		result := callHandler(t, handler, map[string]any{
			"chromosome": "chr7",
			"position":   float64(55019017),
		})

		assert.False(t, result.IsError)
		body := resultText(t, result)
		assert.Contains(t, body, "hg19 -> hg38")
		assert.Contains(t, body, "chr7:55019017 (hg19) -> chr7:55024518 (hg38)")
		assert.Contains(t, body, "Applied offset: +5501 bp")
		assert.Contains(t, body, "UCSC liftOver")
	})

	t.Run("round trip returns to the origin", func(t *testing.T) {
		const original = 43125364
		offset := conversionOffset("hg19", "hg38", "chr1", original)
		converted := original + offset

		result := callHandler(t, handler, map[string]any{
			"chromosome": "chr1",
			"position":   float64(converted),
			"fromBuild":  "hg38",
			"toBuild":    "hg19",
		})

		back := converted + conversionOffset("hg38", "hg19", "chr1", converted)
		assert.Contains(t, resultText(t, result), "chr1:43125364")
		// The heuristic base can shift across the offset boundary; the
		// handler reports whatever negated offset applies at the converted
		// position.
		assert.InDelta(t, original, back, 1)
	})

	t.Run("same build is identity", func(t *testing.T) {
		result := callHandler(t, handler, map[string]any{
			"chromosome": "chr1",
			"position":   float64(100),
			"fromBuild":  "hg38",
			"toBuild":    "GRCh38",
		})

		assert.False(t, result.IsError)
		assert.Contains(t, resultText(t, result), "unchanged")
	})

	t.Run("rejects unknown build", func(t *testing.T) {
		result := callHandler(t, handler, map[string]any{
			"chromosome": "chr1",
			"position":   float64(100),
			"fromBuild":  "hg18",
		})

		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "Builds must be hg19 or hg38")
	})

	t.Run("rejects non-positive position", func(t *testing.T) {
		result := callHandler(t, handler, map[string]any{
			"chromosome": "chr1",
			"position":   float64(0),
		})

		assert.True(t, result.IsError)
	})
}
