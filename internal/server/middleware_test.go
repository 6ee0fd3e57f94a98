package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gtex/mcp/internal/logger"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestPathValidationMiddleware(t *testing.T) {
	handler := pathValidationMiddleware()(okHandler())

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "mcp path allowed", path: "/mcp", wantStatus: http.StatusOK},
		{name: "root path rejected", path: "/", wantStatus: http.StatusNotFound},
		{name: "other path rejected", path: "/api/v2/reference/gene", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	handler := requestIDMiddleware()(okHandler())

	t.Run("generates an ID when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Header().Get(requestIDHeader) == "" {
			t.Error("expected a generated request ID in response headers")
		}
	})

	t.Run("keeps a client-supplied ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
		req.Header.Set(requestIDHeader, "client-id-1")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get(requestIDHeader); got != "client-id-1" {
			t.Errorf("request ID = %q, want client-id-1", got)
		}
	})
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		allowedOrigins []string
		origin         string
		method         string
		wantStatus     int
		wantAllow      string
	}{
		{
			name:       "disabled when unconfigured",
			origin:     "https://example.com",
			method:     http.MethodPost,
			wantStatus: http.StatusOK,
			wantAllow:  "",
		},
		{
			name:           "wildcard allows any origin",
			allowedOrigins: []string{"*"},
			origin:         "https://example.com",
			method:         http.MethodPost,
			wantStatus:     http.StatusOK,
			wantAllow:      "*",
		},
		{
			name:           "listed origin echoed back",
			allowedOrigins: []string{"https://example.com"},
			origin:         "https://example.com",
			method:         http.MethodPost,
			wantStatus:     http.StatusOK,
			wantAllow:      "https://example.com",
		},
		{
			name:           "unlisted origin gets no allow header",
			allowedOrigins: []string{"https://example.com"},
			origin:         "https://evil.example",
			method:         http.MethodPost,
			wantStatus:     http.StatusOK,
			wantAllow:      "",
		},
		{
			name:           "preflight request short-circuits",
			allowedOrigins: []string{"*"},
			origin:         "https://example.com",
			method:         http.MethodOptions,
			wantStatus:     http.StatusNoContent,
			wantAllow:      "*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := corsMiddleware(tt.allowedOrigins)(okHandler())
			req := httptest.NewRequest(tt.method, "/mcp", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantAllow)
			}
		})
	}
}

func TestChainMiddleware(t *testing.T) {
	log := logger.New("debug", "text", io.Discard)
	handler := chainMiddleware(log, []string{"*"}, okHandler())

	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Header().Get(requestIDHeader) == "" {
		t.Error("expected request ID header to be set by the chain")
	}

	// Unknown path is rejected before reaching the handler
	req = httptest.NewRequest(http.MethodPost, "/other", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status for unknown path = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
