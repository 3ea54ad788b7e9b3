package goreport

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// summaryTitleRunes is how much of the table title prefixes the subtotal.
const summaryTitleRunes = 12

// ParseAmount converts a record value to a number on a best-effort basis.
// Numbers are used as is. Strings are trimmed and parsed; when that fails
// the longest leading decimal number is used ("12.5 USD" is 12.5), and a
// string without one counts as 0, as do "NaN" and "Inf". It never fails.
func ParseAmount(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case int32:
		return float64(x)
	case uint:
		return float64(x)
	case uint64:
		return float64(x)
	case uint32:
		return float64(x)
	case json.Number:
		return parseAmountString(string(x))
	case string:
		return parseAmountString(x)
	default:
		return 0
	}
}

func parseAmountString(s string) float64 {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil && isFinite(f) {
		return f
	}
	if f, err := strconv.ParseFloat(leadingNumber(s), 64); err == nil && isFinite(f) {
		return f
	}
	return 0
}

// isFinite rejects the NaN and infinity spellings ParseFloat accepts.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// leadingNumber returns the longest prefix of s shaped like
// [+-]digits[.digits][e[+-]digits].
func leadingNumber(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return ""
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}
	return s[:i]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// ComputeSum adds up ParseAmount of key over all records.
func ComputeSum(records []Record, key string) float64 {
	var sum float64
	for _, rec := range records {
		sum += ParseAmount(rec[key])
	}
	return sum
}

// SummaryLines returns the subtotal and grand total lines.
func SummaryLines(title string, count int, sum float64) (subtotal, grand string) {
	if r := []rune(title); len(r) > summaryTitleRunes {
		title = string(r[:summaryTitleRunes])
	}
	subtotal = fmt.Sprintf("%s Total - %d Payment    %.2f", title, count, sum)
	grand = fmt.Sprintf("Grand Total - %d Payment    %.2f", count, sum)
	return subtotal, grand
}

// SummaryOffset is the row-count formula for the summary block's top rule:
// SummaryBase + (count mod RowsPerPage) * RowHeight.
func SummaryOffset(count int, layout *Layout) float64 {
	if layout == nil {
		layout = DefaultLayout()
	}
	if layout.RowsPerPage <= 0 {
		return layout.SummaryBase
	}
	return layout.SummaryBase + float64(count%layout.RowsPerPage)*layout.RowHeight
}

// RenderSummary draws the total block on the current page with its top
// rule at offset. It fails with ErrMissingSumKey when key is empty.
func RenderSummary(s Surface, records []Record, title, key string, offset float64, layout *Layout) error {
	if key == "" {
		return ErrMissingSumKey
	}
	if layout == nil {
		layout = DefaultLayout()
	}
	subtotal, grand := SummaryLines(title, len(records), ComputeSum(records, key))

	w, _ := s.PageSize()
	right := layout.rightEdge(w)
	textX := right - layout.SummaryTextInset

	s.SetFont(StyleBold, layout.SummaryFontSize)
	s.SetDrawColor(layout.RuleColor)
	s.Line(layout.MarginLeft, offset, right, offset)
	s.Text(textX, offset+3, subtotal, AlignRight)
	s.Text(textX, offset+7, grand, AlignRight)
	s.Line(w/2, offset+4, right, offset+4)
	return nil
}
