package goreport

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Record is one input row: field name to scalar value (string or number).
type Record map[string]any

// Row is one formatted table row; cell j holds the value of column j, or
// nil when the record lacks the field.
type Row []any

// FormatRows projects records onto the column order. Row and cell order
// follow records and order; neither input is modified.
func FormatRows(records []Record, order []string) []Row {
	rows := make([]Row, len(records))
	for i, rec := range records {
		row := make(Row, len(order))
		for j, key := range order {
			row[j] = rec[key]
		}
		rows[i] = row
	}
	return rows
}

// CellText renders a cell value for display. Missing values render empty.
func CellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// rowTexts renders every cell of rows with CellText.
func rowTexts(rows []Row) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = CellText(v)
		}
		out[i] = cells
	}
	return out
}
