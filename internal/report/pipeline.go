// Package report turns flat API record lists into deterministic,
// human-readable text reports. Every report follows one pattern: group by a
// derived key in first-seen order, sort within the group by a significance
// or magnitude field, truncate to a top-N with an "... and N more" marker,
// then summarize the full group. Pipeline parameterizes that pattern so each
// tool only supplies its key, comparator, renderers and aggregator.
package report

import (
	"fmt"
	"sort"
	"strings"
)

// Pipeline renders one report type. Item receives the 1-based rank within
// the truncated list. Summary, when set, receives the full untruncated group
// and its result is appended after the ranked list; return "" to omit it.
type Pipeline[T any] struct {
	GroupKey func(T) string
	Less     func(a, b T) bool
	TopN     int
	Header   func(key string, items []T) string
	Item     func(rank int, item T) string
	Summary  func(key string, items []T) string
}

// Render produces the report body for the given records. The caller is
// responsible for the surrounding title, no-data message and paging note.
func (p Pipeline[T]) Render(records []T) string {
	groups := GroupBy(records, p.GroupKey)

	var sections []string
	for _, key := range groups.Keys() {
		items := groups.Get(key)
		if p.Less != nil {
			sort.SliceStable(items, func(i, j int) bool { return p.Less(items[i], items[j]) })
		}

		var b strings.Builder
		b.WriteString(p.Header(key, items))

		shown := items
		if p.TopN > 0 && len(items) > p.TopN {
			shown = items[:p.TopN]
		}
		for i, item := range shown {
			b.WriteByte('\n')
			b.WriteString(p.Item(i+1, item))
		}
		if remaining := len(items) - len(shown); remaining > 0 {
			fmt.Fprintf(&b, "\n  ... and %d more", remaining)
		}

		if p.Summary != nil {
			if summary := p.Summary(key, items); summary != "" {
				b.WriteByte('\n')
				b.WriteString(summary)
			}
		}
		sections = append(sections, b.String())
	}

	return strings.Join(sections, "\n\n")
}
