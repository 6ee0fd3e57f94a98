package report

import (
	"fmt"
	"strings"

	"github.com/gtex/mcp/internal/gtex"
)

// TissueDisplayName renders a tissue identifier for display: underscores
// become spaces and each word gets naive capitalization (first rune upper,
// rest lower), so "Brain_Frontal_Cortex_BA9" displays as
// "Brain Frontal Cortex Ba9". The underlying identifier is never altered;
// lookups always use the raw form.
func TissueDisplayName(tissueID string) string {
	words := strings.Split(strings.ReplaceAll(tissueID, "_", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

// PagingNote returns a one-line note when the paging metadata indicates more
// rows exist than were returned, or "" otherwise.
func PagingNote(shown int, paging *gtex.PagingInfo) string {
	if paging == nil || paging.TotalNumberOfItems <= shown {
		return ""
	}
	return fmt.Sprintf("Note: showing %d of %d total results. Use the page parameter to retrieve more.",
		shown, paging.TotalNumberOfItems)
}

// AppendPagingNote appends the paging note to body when one applies.
func AppendPagingNote(body string, shown int, paging *gtex.PagingInfo) string {
	if note := PagingNote(shown, paging); note != "" {
		return body + "\n\n" + note
	}
	return body
}

// GeneLabel is the standard display key for a gene: "SYMBOL (GENCODEID)",
// falling back to whichever identifier is present.
func GeneLabel(symbol, gencodeID string) string {
	switch {
	case symbol != "" && gencodeID != "":
		return fmt.Sprintf("%s (%s)", symbol, gencodeID)
	case symbol != "":
		return symbol
	default:
		return gencodeID
	}
}

// FilterClause renders one active query filter for no-data messages, e.g.
// `FilterClause("tissues", []string{"Liver", "Lung"})` -> " in tissues: Liver, Lung".
// Empty filter values produce "".
func FilterClause(label string, values []string) string {
	if len(values) == 0 {
		return ""
	}
	return fmt.Sprintf(" in %s: %s", label, strings.Join(values, ", "))
}
