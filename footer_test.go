package goreport

import (
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	got := FormatTimestamp(time.Date(2023, time.March, 12, 14, 5, 9, 0, time.UTC))
	if got != "Generated on 03/12/2023 at 02:05:09 pm" {
		t.Errorf("FormatTimestamp = %q", got)
	}
	got = FormatTimestamp(time.Date(2023, time.November, 2, 9, 30, 0, 0, time.UTC))
	if got != "Generated on 11/02/2023 at 09:30:00 am" {
		t.Errorf("FormatTimestamp = %q", got)
	}
}

func TestRenderFooter(t *testing.T) {
	r := newPage()
	RenderFooter(r, 1, 4, "stamp", nil)
	ops := textOps(r, 1)
	if len(ops) != 2 {
		t.Fatalf("expected 2 texts, got %d", len(ops))
	}
	if ops[0].Text != "stamp" || ops[0].X != 10 || ops[0].Y != 290 || ops[0].Align != AlignLeft || ops[0].Size != 5 {
		t.Errorf("unexpected stamp: %+v", ops[0])
	}
	if ops[1].Text != "Page 1 of 4" || ops[1].X != 190 || ops[1].Y != 290 || ops[1].Align != AlignRight {
		t.Errorf("unexpected page label: %+v", ops[1])
	}
}

func TestRenderFooters_EveryPage(t *testing.T) {
	r := NewRecorder(PdfConfig{})
	const pages = 5
	for i := 0; i < pages; i++ {
		r.AddPage()
	}
	stamp := FormatTimestamp(fixedNow)
	RenderFooters(r, stamp, nil)

	for k := 1; k <= pages; k++ {
		got := r.Texts(k)
		want := []string{stamp, PageLabel(k, pages)}
		if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
			t.Errorf("page %d: got %v, want %v", k, got, want)
		}
	}
	if r.PageNo() != pages {
		t.Errorf("expected surface left on page %d, got %d", pages, r.PageNo())
	}
}

func TestRenderFooter_Landscape(t *testing.T) {
	r := NewRecorder(PdfConfig{Orientation: "l"})
	r.AddPage()
	RenderFooter(r, 2, 2, "s", nil)
	ops := textOps(r, 1)
	if ops[0].Y != 203 || ops[1].X != 277 {
		t.Errorf("footer not placed relative to landscape page: %+v", ops)
	}
}
