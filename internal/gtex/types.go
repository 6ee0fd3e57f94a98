package gtex

import (
	"net/url"
	"strconv"
	"strings"
)

// Record is one row as returned by the GTEx API: a flat mapping of named
// fields. Records are never mutated after decoding.
type Record map[string]any

// String returns the named field as a string, or "" when absent or not a string.
func (r Record) String(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// Float returns the named field as a float64, or 0 when absent.
// JSON numbers always decode to float64 in a Record.
func (r Record) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

// Int returns the named field truncated to an int, or 0 when absent.
func (r Record) Int(key string) int {
	return int(r.Float(key))
}

// Bool returns the named field as a bool, or false when absent.
func (r Record) Bool(key string) bool {
	if v, ok := r[key].(bool); ok {
		return v
	}
	return false
}

// Has reports whether the named field is present and non-nil.
func (r Record) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// Records returns a nested list-of-objects field (e.g. the per-cell-type
// breakdown inside single-nucleus expression rows) as a slice of Records.
func (r Record) Records(key string) []Record {
	list, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Record, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, Record(m))
		}
	}
	return out
}

// Floats returns a nested numeric-array field (e.g. the per-sample TPM values
// of a gene expression row) as a float64 slice.
func (r Record) Floats(key string) []float64 {
	list, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]float64, 0, len(list))
	for _, item := range list {
		if f, ok := item.(float64); ok {
			out = append(out, f)
		}
	}
	return out
}

// PagingInfo mirrors the paging_info block of GTEx API responses.
type PagingInfo struct {
	NumberOfPages      int `json:"numberOfPages"`
	Page               int `json:"page"`
	MaxItemsPerPage    int `json:"maxItemsPerPage"`
	TotalNumberOfItems int `json:"totalNumberOfItems"`
}

// Result is the uniform success value of a Service call.
type Result struct {
	Records []Record
	Paging  *PagingInfo
}

// Query is an ordered list of query-string parameters. Array-valued
// parameters are expressed as repeated keys, one key=value pair per element,
// which is how the GTEx API expects multi-valued filters on the wire.
type Query []param

type param struct {
	key   string
	value string
}

// Add appends one parameter. Empty values are dropped so optional
// parameters can be passed through unconditionally.
func (q Query) Add(key, value string) Query {
	if value == "" {
		return q
	}
	return append(q, param{key: key, value: value})
}

// AddAll appends one repeated-key parameter per element.
func (q Query) AddAll(key string, values []string) Query {
	for _, v := range values {
		q = q.Add(key, v)
	}
	return q
}

// AddInt appends one integer parameter.
func (q Query) AddInt(key string, value int) Query {
	return append(q, param{key: key, value: strconv.Itoa(value)})
}

// Encode renders the query string in insertion order.
func (q Query) Encode() string {
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}
