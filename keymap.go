package goreport

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// KeyMap selects which record fields become table columns.
type KeyMap struct {
	Keys []string
	// Ordered keeps Keys in the given order; otherwise columns are sorted
	// ascending by field name.
	Ordered bool
}

// ColumnOrder returns the field names in column order. The result is a new
// slice; km is never modified.
func ColumnOrder(km *KeyMap) ([]string, error) {
	if km == nil {
		return nil, ErrMissingData
	}
	if len(km.Keys) == 0 {
		return nil, ErrEmptyKeyList
	}
	order := append([]string(nil), km.Keys...)
	if !km.Ordered {
		sort.Strings(order)
	}
	return order, nil
}

// ColumnHeaders returns the display header for every column, in the order
// given by ColumnOrder.
func ColumnHeaders(km *KeyMap) ([]string, error) {
	order, err := ColumnOrder(km)
	if err != nil {
		return nil, err
	}
	headers := make([]string, len(order))
	for i, key := range order {
		headers[i] = HeaderFromKey(key)
	}
	return headers, nil
}

// HeaderFromKey turns a field name into a display header: the name is
// split before every upper-case letter and on runs of non-word characters,
// each piece gets an upper-case first letter, and the pieces are joined
// with single spaces. "paymentAmount" becomes "Payment Amount".
func HeaderFromKey(key string) string {
	caser := cases.Title(language.Und, cases.NoLower)
	words := splitKey(key)
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}

func splitKey(key string) []string {
	var (
		words []string
		cur   strings.Builder
	)
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	for _, r := range key {
		switch {
		case !isWordRune(r):
			flush()
		case unicode.IsUpper(r):
			flush()
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return words
}

// isWordRune matches letters, digits and underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
