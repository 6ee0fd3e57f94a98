package gtex

// Package gtex implements the thin HTTP client for the GTEx Portal API.
// The client is deliberately minimal: one GET per call, a flat 30 second
// timeout, and one-shot error classification. There are no retries, no
// backoff and no caching; those are not part of the observed API contract.

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gtex/mcp/internal/logger"
)

const (
	// DefaultTimeout bounds every request; on expiry the call fails as a
	// network error with no automatic retry.
	DefaultTimeout = 30 * time.Second

	userAgent = "gtex-mcp (Model Context Protocol server for the GTEx Portal API)"
)

// HTTPService is the production Service implementation.
type HTTPService struct {
	baseURL string
	client  *http.Client
	log     *logger.Service
}

var _ Service = (*HTTPService)(nil)

// NewService creates a client for the given base URL. A zero timeout selects
// DefaultTimeout.
func NewService(baseURL string, timeout time.Duration, log *logger.Service) *HTTPService {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// envelope is the standard GTEx response wrapper. Endpoints that return a
// bare object (e.g. the service-info root) have no data field; the whole
// body then decodes as a single Record.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Paging *PagingInfo     `json:"paging_info"`
}

func (s *HTTPService) Get(ctx context.Context, path string, params Query) (*Result, error) {
	url := s.baseURL + "/" + path
	if path == "" {
		url = s.baseURL + "/"
	}
	if qs := params.Encode(); qs != "" {
		url += "?" + qs
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, newRequestError(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	s.log.Debug("GTEx API request", "url", url)

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warn("GTEx API request failed", "url", url, "error", err)
		return nil, newNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		s.log.Warn("GTEx API returned error status", "url", url, "status", resp.StatusCode)
		return nil, newStatusError(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newRequestError(fmt.Errorf("reading response body: %w", err))
	}

	result, err := decodeBody(body)
	if err != nil {
		return nil, newRequestError(err)
	}
	return result, nil
}

func decodeBody(body []byte) (*Result, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 {
		records, err := decodeRecords(env.Data)
		if err != nil {
			return nil, err
		}
		return &Result{Records: records, Paging: env.Paging}, nil
	}

	// No data envelope: the body itself is the payload.
	records, err := decodeRecords(body)
	if err != nil {
		return nil, err
	}
	return &Result{Records: records}, nil
}

// decodeRecords accepts either a JSON array of objects or a single object,
// which becomes a one-element record list.
func decodeRecords(raw json.RawMessage) ([]Record, error) {
	trimmed := strings.TrimLeft(string(raw), " \t\r\n")
	if strings.HasPrefix(trimmed, "[") {
		var records []Record
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("decoding response data: %w", err)
		}
		return records, nil
	}
	var record Record
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("decoding response data: %w", err)
	}
	if len(record) == 0 {
		return nil, nil
	}
	return []Record{record}, nil
}
