package gtex

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtex/mcp/internal/logger"
)

func testService(t *testing.T, handler http.HandlerFunc) *HTTPService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewService(srv.URL, 5*time.Second, logger.New("error", "text", io.Discard))
}

func TestHTTPService_Get_EnvelopeDecoding(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reference/geneSearch", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{
			"data": [
				{"geneSymbol": "BRCA1", "tss": 43125364},
				{"geneSymbol": "BRCA2"}
			],
			"paging_info": {"numberOfPages": 3, "page": 0, "maxItemsPerPage": 2, "totalNumberOfItems": 5}
		}`))
	})

	result, err := svc.Get(context.Background(), PathGeneSearch, Query{}.Add("geneId", "BRCA"))
	require.NoError(t, err)

	require.Len(t, result.Records, 2)
	assert.Equal(t, "BRCA1", result.Records[0].String("geneSymbol"))
	assert.Equal(t, 43125364, result.Records[0].Int("tss"))

	require.NotNil(t, result.Paging)
	assert.Equal(t, 5, result.Paging.TotalNumberOfItems)
	assert.Equal(t, 3, result.Paging.NumberOfPages)
}

func TestHTTPService_Get_BareObjectBody(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"id": "org.gtexportal.rest.v2", "version": "2.0.0"}`))
	})

	result, err := svc.Get(context.Background(), PathServiceInfo, nil)
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.Equal(t, "2.0.0", result.Records[0].String("version"))
	assert.Nil(t, result.Paging)
}

func TestHTTPService_Get_EmptyDataArray(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data": [], "paging_info": {"totalNumberOfItems": 0}}`))
	})

	result, err := svc.Get(context.Background(), PathGene, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Records)
}

func TestHTTPService_Get_StatusClassification(t *testing.T) {
	tests := []struct {
		status      int
		wantMessage string
	}{
		{http.StatusBadRequest, "Bad request - please check your query parameters"},
		{http.StatusNotFound, "Not Found - the requested resource does not exist"},
		{http.StatusUnprocessableEntity, "Validation error - please check your parameter values"},
		{http.StatusInternalServerError, "Server error - the GTEx API is having issues, please retry later"},
		{http.StatusBadGateway, "HTTP 502: Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.wantMessage, func(t *testing.T) {
			svc := testService(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			result, err := svc.Get(context.Background(), PathGene, nil)
			require.Error(t, err)
			assert.Nil(t, result)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMessage, apiErr.Error())
		})
	}
}

func TestHTTPService_Get_NetworkError(t *testing.T) {
	// Point at a closed server to force a connection failure
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()
	svc := NewService(srv.URL, time.Second, logger.New("error", "text", io.Discard))

	_, err := svc.Get(context.Background(), PathGene, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 0, apiErr.Status)
	assert.Contains(t, apiErr.Error(), "Network error - unable to reach the GTEx API")
}

func TestHTTPService_Get_MalformedJSON(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data": [not json`))
	})

	_, err := svc.Get(context.Background(), PathGene, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Request error:")
}

func TestHTTPService_Get_QueryOnWire(t *testing.T) {
	var gotQuery string
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"data": []}`))
	})

	query := Query{}.
		AddAll("gencodeId", []string{"ENSG1", "ENSG2"}).
		Add("datasetId", DefaultDatasetID).
		AddInt("page", 0)

	_, err := svc.Get(context.Background(), PathMedianGeneExpression, query)
	require.NoError(t, err)

	assert.Equal(t, "gencodeId=ENSG1&gencodeId=ENSG2&datasetId=gtex_v8&page=0", gotQuery)
}

func TestHTTPService_Get_ContextCancellation(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"data": []}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.Get(ctx, PathGene, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Network error")
}
