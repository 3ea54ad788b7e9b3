package goreport

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tableRows(n int) [][]string {
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = []string{"123456", "My vendor", "14693.61"}
	}
	return rows
}

var tableHeaders = []string{"Vendor Number", "Vendor Name", "Payment Amount"}

func TestPaginateTable_SinglePage(t *testing.T) {
	r := newPage()
	res, err := PaginateTable(r, &Table{Headers: tableHeaders, Rows: tableRows(10), StartY: 30}, nil)
	if err != nil {
		t.Fatalf("PaginateTable: %v", err)
	}
	want := TableResult{Pages: 1, Rows: 10, RowsOnLastPage: 10, LastRowBottom: 87}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
	texts := r.Texts(1)
	if diff := cmp.Diff(tableHeaders, texts[:3]); diff != "" {
		t.Errorf("head row mismatch (-want +got):\n%s", diff)
	}
	if len(texts) != 3+10*3 {
		t.Errorf("expected %d texts, got %d", 3+10*3, len(texts))
	}
}

func TestPaginateTable_MultiPage(t *testing.T) {
	r := newPage()
	var breaks []int
	res, err := PaginateTable(r, &Table{Headers: tableHeaders, Rows: tableRows(100), StartY: 30}, func(page int) error {
		breaks = append(breaks, page)
		return nil
	})
	if err != nil {
		t.Fatalf("PaginateTable: %v", err)
	}
	// 48 rows fit under the title on page 1, 50 on later pages.
	want := TableResult{Pages: 3, Rows: 100, RowsOnLastPage: 2, LastRowBottom: 37}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 3}, breaks); diff != "" {
		t.Errorf("page breaks mismatch (-want +got):\n%s", diff)
	}
	for page, rows := range map[int]int{1: 48, 2: 50, 3: 2} {
		if n := countText(r, page, "My vendor"); n != rows {
			t.Errorf("page %d: expected %d rows, got %d", page, rows, n)
		}
		if n := countText(r, page, "Vendor Name"); n != 1 {
			t.Errorf("page %d: expected the head row once, got %d", page, n)
		}
	}
}

func TestPaginateTable_RowsStayAboveBottomMargin(t *testing.T) {
	r := newPage()
	if _, err := PaginateTable(r, &Table{Headers: tableHeaders, Rows: tableRows(120), StartY: 30}, nil); err != nil {
		t.Fatalf("PaginateTable: %v", err)
	}
	for page := 1; page <= r.PageCount(); page++ {
		for _, op := range textOps(r, page) {
			if op.Y > 277 {
				t.Errorf("page %d: text %q drawn at y=%v below the bottom margin", page, op.Text, op.Y)
			}
		}
	}
}

func TestPaginateTable_NoRows(t *testing.T) {
	r := newPage()
	res, err := PaginateTable(r, &Table{Headers: tableHeaders, StartY: 30}, nil)
	if err != nil {
		t.Fatalf("PaginateTable: %v", err)
	}
	if res.Pages != 1 || res.Rows != 0 || res.LastRowBottom != 37 {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestPaginateTable_CallbackError(t *testing.T) {
	r := newPage()
	boom := errors.New("boom")
	_, err := PaginateTable(r, &Table{Headers: tableHeaders, Rows: tableRows(60), StartY: 30}, func(int) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected callback error, got %v", err)
	}
}

func TestPaginateTable_RowTooWide(t *testing.T) {
	r := newPage()
	_, err := PaginateTable(r, &Table{Headers: []string{"a"}, Rows: [][]string{{"1", "2"}}, StartY: 30}, nil)
	if err == nil {
		t.Error("expected an error for a row with more cells than headers")
	}
}

func TestPaginateTable_ColumnsFillWidth(t *testing.T) {
	r := newPage()
	if _, err := PaginateTable(r, &Table{Headers: tableHeaders, Rows: tableRows(1), StartY: 30}, nil); err != nil {
		t.Fatalf("PaginateTable: %v", err)
	}
	ops := textOps(r, 1)
	if ops[0].X != 11.5 {
		t.Errorf("first column should start at the left margin plus padding, got %v", ops[0].X)
	}
	for i := 1; i < 3; i++ {
		if ops[i].X <= ops[i-1].X {
			t.Errorf("columns not increasing: %v then %v", ops[i-1].X, ops[i].X)
		}
	}
	if ops[2].X >= 190 {
		t.Errorf("last column starts past the right edge: %v", ops[2].X)
	}
}

func TestTablePager_Fit(t *testing.T) {
	r := newPage()
	r.SetFont(StyleNormal, 6)
	p := &tablePager{s: r, layout: DefaultLayout()}
	if got := p.fit("short", 50); got != "short" {
		t.Errorf("fit changed text that fits: %q", got)
	}
	got := p.fit("a much longer cell value that cannot fit", 15)
	if got == "" || len(got) >= len("a much longer cell value that cannot fit") || got[len(got)-3:] != "..." {
		t.Errorf("expected a shortened value ending in ..., got %q", got)
	}
	if w := r.StringWidth(got); w > 15-2*1.5 {
		t.Errorf("shortened value still too wide: %v", w)
	}
}

func TestTableResult_Reserve(t *testing.T) {
	r := newPage()
	res := TableResult{Pages: 1, LastRowBottom: 100}
	top, err := res.Reserve(r, 10, nil, nil)
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if top != 100 || r.PageCount() != 1 {
		t.Errorf("space was available: got top %v with %d pages", top, r.PageCount())
	}

	res.LastRowBottom = 272
	var broke int
	top, err = res.Reserve(r, 10, nil, func(page int) error {
		broke = page
		return nil
	})
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if top != 20 || r.PageCount() != 2 || res.Pages != 2 || broke != 2 {
		t.Errorf("expected a new page with top 20, got top %v pages %d result %+v break %d", top, r.PageCount(), res, broke)
	}
}

func TestPaginateTable_LongCellKeepsMinimumWidths(t *testing.T) {
	r := newPage()
	headers := []string{"Long", "A", "B", "C", "D", "E"}
	row := []string{strings.Repeat("x", 400), "alpha", "beta", "gamma", "delta", "eps"}
	l := DefaultLayout()

	p := &tablePager{s: r, layout: l}
	widths := p.columnWidths(&Table{Headers: headers, Rows: [][]string{row}}, 210)
	var total float64
	for j, w := range widths {
		if w < l.MinColumnWidth {
			t.Errorf("column %s is %.2fmm, below the %.0fmm minimum", headers[j], w, l.MinColumnWidth)
		}
		total += w
	}
	if math.Abs(total-180) > 1e-9 {
		t.Errorf("columns span %.2fmm, want 180", total)
	}

	if _, err := PaginateTable(r, &Table{Headers: headers, Rows: [][]string{row}, StartY: 30, Layout: l}, nil); err != nil {
		t.Fatalf("PaginateTable: %v", err)
	}
	texts := r.Texts(1)
	if diff := cmp.Diff(headers, texts[:len(headers)]); diff != "" {
		t.Errorf("head row mismatch (-want +got):\n%s", diff)
	}
	for _, cell := range row[1:] {
		if countText(r, 1, cell) != 1 {
			t.Errorf("cell %q not drawn in full: %q", cell, texts)
		}
	}
	if long := texts[len(headers)]; !strings.HasSuffix(long, "...") {
		t.Errorf("long cell not truncated: %d runes", len([]rune(long)))
	}
}

func TestColumnWidths_TooManyColumns(t *testing.T) {
	r := newPage()
	headers := make([]string, 30)
	for i := range headers {
		headers[i] = strings.Repeat("h", 20)
	}
	p := &tablePager{s: r, layout: DefaultLayout()}
	for _, w := range p.columnWidths(&Table{Headers: headers}, 210) {
		if math.Abs(w-6) > 1e-9 {
			t.Fatalf("expected equal 6mm columns, got %v", w)
		}
	}
}

// countingSurface counts width measurements.
type countingSurface struct {
	*Recorder
	widthCalls int
}

func (c *countingSurface) StringWidth(s string) float64 {
	c.widthCalls++
	return c.Recorder.StringWidth(s)
}

func TestTablePager_FitLongTextIsLogarithmic(t *testing.T) {
	s := &countingSurface{Recorder: newPage()}
	s.SetFont(StyleNormal, 6)
	p := &tablePager{s: s, layout: DefaultLayout()}

	text := strings.Repeat("0123456789", 2000)
	got := p.fit(text, 30)
	if s.widthCalls > 20 {
		t.Errorf("fit measured %d times for a %d-rune cell", s.widthCalls, len(text))
	}
	if !strings.HasSuffix(got, "...") || s.Recorder.StringWidth(got) > 27 {
		t.Fatalf("bad truncation %q", got)
	}
	// One more rune would not fit.
	kept := []rune(strings.TrimSuffix(got, "..."))
	longer := string([]rune(text)[:len(kept)+1]) + "..."
	if s.Recorder.StringWidth(longer) <= 27 {
		t.Errorf("truncated too early: %q still fits", longer)
	}
}

func TestTablePager_FitNoRoom(t *testing.T) {
	r := newPage()
	r.SetFont(StyleNormal, 6)
	p := &tablePager{s: r, layout: DefaultLayout()}
	if got := p.fit("text", 2); got != "" {
		t.Errorf("column narrower than its padding drew %q", got)
	}
	if got := p.fit("text", 3.5); got != "" {
		t.Errorf("column without room for an ellipsis drew %q", got)
	}
}
