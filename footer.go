package goreport

import (
	"fmt"
	"time"
)

// timestampLayout renders as "Generated on 03/12/2023 at 02:05:09 pm".
const timestampLayout = "01/02/2006 at 03:04:05 pm"

// FormatTimestamp returns the footer generation stamp for t.
func FormatTimestamp(t time.Time) string {
	return "Generated on " + t.Format(timestampLayout)
}

// PageLabel returns "Page {page} of {total}".
func PageLabel(page, total int) string {
	return fmt.Sprintf("Page %d of %d", page, total)
}

// RenderFooter draws the generation stamp and the page label on the
// current page.
func RenderFooter(s Surface, page, total int, stamp string, layout *Layout) {
	if layout == nil {
		layout = DefaultLayout()
	}
	w, h := s.PageSize()
	y := h - layout.FooterInset
	s.SetFont(StyleNormal, layout.FooterFontSize)
	s.Text(layout.MarginLeft, y, stamp, AlignLeft)
	s.Text(layout.rightEdge(w), y, PageLabel(page, total), AlignRight)
}

// RenderFooters visits every page of s and draws its footer. All pages
// share stamp, which the caller computes once per document. The surface is
// left on the last page.
func RenderFooters(s Surface, stamp string, layout *Layout) {
	total := s.PageCount()
	for page := 1; page <= total; page++ {
		s.SetPage(page)
		RenderFooter(s, page, total, stamp, layout)
	}
}
