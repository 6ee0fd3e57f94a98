package gtex

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_Encode(t *testing.T) {
	t.Run("insertion order preserved", func(t *testing.T) {
		q := Query{}.
			Add("b", "2").
			Add("a", "1").
			AddInt("c", 3)
		assert.Equal(t, "b=2&a=1&c=3", q.Encode())
	})

	t.Run("empty values are dropped", func(t *testing.T) {
		q := Query{}.
			Add("datasetId", "").
			Add("geneId", "BRCA1")
		assert.Equal(t, "geneId=BRCA1", q.Encode())
	})

	t.Run("repeated keys for array parameters", func(t *testing.T) {
		q := Query{}.AddAll("tissueSiteDetailId", []string{"Liver", "Whole_Blood"})
		assert.Equal(t, "tissueSiteDetailId=Liver&tissueSiteDetailId=Whole_Blood", q.Encode())
	})

	t.Run("values are escaped", func(t *testing.T) {
		q := Query{}.Add("variantId", "chr1_13550_G_A_b38").Add("q", "a b&c")
		assert.Equal(t, "variantId=chr1_13550_G_A_b38&q=a+b%26c", q.Encode())
	})

	t.Run("empty query encodes to empty string", func(t *testing.T) {
		assert.Equal(t, "", Query{}.Encode())
	})

	t.Run("AddInt keeps zero values", func(t *testing.T) {
		assert.Equal(t, "page=0", Query{}.AddInt("page", 0).Encode())
	})
}

func TestRecord_Accessors(t *testing.T) {
	var rec Record
	require.NoError(t, json.Unmarshal([]byte(`{
		"geneSymbol": "BRCA1",
		"tss": 43125364,
		"pValue": 1.5e-8,
		"hasEGenes": true,
		"missing": null,
		"data": [1.0, 2.5, 0],
		"cellTypes": [{"cellType": "Hepatocyte", "meanWithZeros": 4.2}]
	}`), &rec))

	assert.Equal(t, "BRCA1", rec.String("geneSymbol"))
	assert.Equal(t, "", rec.String("tss"), "non-string field reads as empty string")
	assert.Equal(t, 43125364, rec.Int("tss"))
	assert.Equal(t, 1.5e-8, rec.Float("pValue"))
	assert.True(t, rec.Bool("hasEGenes"))
	assert.False(t, rec.Bool("geneSymbol"))

	assert.True(t, rec.Has("geneSymbol"))
	assert.False(t, rec.Has("missing"), "null fields read as absent")
	assert.False(t, rec.Has("nope"))

	assert.Equal(t, []float64{1.0, 2.5, 0}, rec.Floats("data"))
	assert.Nil(t, rec.Floats("geneSymbol"))

	nested := rec.Records("cellTypes")
	require.Len(t, nested, 1)
	assert.Equal(t, "Hepatocyte", nested[0].String("cellType"))
	assert.Equal(t, 4.2, nested[0].Float("meanWithZeros"))
}
