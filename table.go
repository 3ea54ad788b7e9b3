package goreport

import "fmt"

// fitTolerance absorbs rounding in page sizes converted from points and
// in column widths.
const fitTolerance = 0.01

// Table is the input of PaginateTable.
type Table struct {
	Headers []string
	Rows    [][]string
	// StartY is where the head row starts on the current page.
	StartY float64
	Layout *Layout
}

// PageBreakFunc is called right after a new page is added, with its
// 1-based number. A non-nil error stops pagination.
type PageBreakFunc func(page int) error

// TableResult describes where pagination ended.
type TableResult struct {
	Pages          int
	Rows           int
	RowsOnLastPage int
	// LastRowBottom is the y coordinate just below the last drawn row (or
	// below the head row when there are no body rows).
	LastRowBottom float64
}

// PaginateTable draws t on s starting on the current page, adding pages as
// rows run past the bottom margin. The head row repeats at the top of every
// page; onPageBreak fires for each added page before anything is drawn on
// it, so page headers can be drawn there.
func PaginateTable(s Surface, t *Table, onPageBreak PageBreakFunc) (TableResult, error) {
	l := t.Layout
	if l == nil {
		l = DefaultLayout()
	}
	pw, ph := s.PageSize()
	if err := l.validateFit(ph); err != nil {
		return TableResult{}, err
	}
	for i, row := range t.Rows {
		if len(row) > len(t.Headers) {
			return TableResult{}, fmt.Errorf("table row %d has %d cells, want at most %d", i+1, len(row), len(t.Headers))
		}
	}

	p := &tablePager{
		s:      s,
		layout: l,
		bottom: ph - l.MarginBottom,
	}
	p.widths = p.columnWidths(t, pw)

	y := t.StartY
	p.drawHead(t.Headers, y)
	y += l.HeadHeight

	res := TableResult{}
	for _, row := range t.Rows {
		if y+l.RowHeight > p.bottom+fitTolerance {
			if err := p.breakPage(onPageBreak); err != nil {
				return res, err
			}
			y = l.MarginTop
			p.drawHead(t.Headers, y)
			y += l.HeadHeight
			res.RowsOnLastPage = 0
		}
		p.drawRow(row, y)
		y += l.RowHeight
		res.Rows++
		res.RowsOnLastPage++
	}
	res.Pages = s.PageCount()
	res.LastRowBottom = y
	return res, nil
}

// Reserve makes sure height millimetres are free below the last row. If
// they are not, a new page is added (firing onPageBreak) and the result is
// moved to its top margin. It returns the y coordinate where the reserved
// space starts.
func (r *TableResult) Reserve(s Surface, height float64, l *Layout, onPageBreak PageBreakFunc) (float64, error) {
	if l == nil {
		l = DefaultLayout()
	}
	_, ph := s.PageSize()
	if r.LastRowBottom+height <= ph-l.MarginBottom+fitTolerance {
		return r.LastRowBottom, nil
	}
	s.AddPage()
	if onPageBreak != nil {
		if err := onPageBreak(s.PageNo()); err != nil {
			return 0, err
		}
	}
	r.Pages = s.PageCount()
	r.RowsOnLastPage = 0
	r.LastRowBottom = l.MarginTop
	return r.LastRowBottom, nil
}

type tablePager struct {
	s      Surface
	layout *Layout
	bottom float64
	widths []float64
}

func (p *tablePager) breakPage(onPageBreak PageBreakFunc) error {
	p.s.AddPage()
	if onPageBreak == nil {
		return nil
	}
	return onPageBreak(p.s.PageNo())
}

// columnWidths sizes columns from their widest text, floored at
// MinColumnWidth. A table narrower than the printable width is scaled up
// to fill it. A wider one keeps every column that fits its fair share at
// its natural width and splits the rest evenly among the wide columns, so
// no column drops below MinColumnWidth unless the page cannot hold n of
// them, in which case all columns get an equal share.
func (p *tablePager) columnWidths(t *Table, pageWidth float64) []float64 {
	l := p.layout
	n := len(t.Headers)
	widths := make([]float64, n)
	if n == 0 {
		return widths
	}

	p.s.SetFont(StyleBold, l.TableFontSize)
	for j, h := range t.Headers {
		widths[j] = p.s.StringWidth(h)
	}
	p.s.SetFont(StyleNormal, l.TableFontSize)
	for _, row := range t.Rows {
		for j, cell := range row {
			if w := p.s.StringWidth(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}

	var total float64
	for j := range widths {
		widths[j] += 2 * l.CellPadding
		if widths[j] < l.MinColumnWidth {
			widths[j] = l.MinColumnWidth
		}
		total += widths[j]
	}
	available := l.rightEdge(pageWidth) - l.MarginLeft
	switch {
	case available <= 0 || total == 0:
	case total <= available:
		scale := available / total
		for j := range widths {
			widths[j] *= scale
		}
	case available < float64(n)*l.MinColumnWidth:
		for j := range widths {
			widths[j] = available / float64(n)
		}
	default:
		shrinkColumns(widths, available)
	}
	return widths
}

// shrinkColumns fits widths into available. Columns at or below the fair
// share of the remaining space keep their width; the share only grows as
// such columns are settled, so the wide columns end up with at least
// available/len(widths).
func shrinkColumns(widths []float64, available float64) {
	settled := make([]bool, len(widths))
	remaining, open := available, len(widths)
	for {
		share := remaining / float64(open)
		changed := false
		for j, w := range widths {
			if !settled[j] && w <= share {
				settled[j] = true
				remaining -= w
				open--
				changed = true
			}
		}
		if !changed || open == 0 {
			break
		}
	}
	if open == 0 {
		return
	}
	share := remaining / float64(open)
	for j := range widths {
		if !settled[j] {
			widths[j] = share
		}
	}
}

func (p *tablePager) drawHead(headers []string, y float64) {
	l := p.layout
	p.s.SetFont(StyleBold, l.TableFontSize)
	baseline := y + l.HeadHeight - l.HeadPadding
	x := l.MarginLeft
	for j, h := range headers {
		p.s.Text(x+l.CellPadding, baseline, p.fit(h, p.widths[j]), AlignLeft)
		x += p.widths[j]
	}
}

func (p *tablePager) drawRow(row []string, y float64) {
	l := p.layout
	p.s.SetFont(StyleNormal, l.TableFontSize)
	baseline := y + l.RowHeight - l.CellPadding
	x := l.MarginLeft
	for j, cell := range row {
		if cell != "" {
			p.s.Text(x+l.CellPadding, baseline, p.fit(cell, p.widths[j]), AlignLeft)
		}
		x += p.widths[j]
	}
}

// fit shortens text with a trailing "..." until it fits the column. The
// kept prefix is found by binary search; widths grow with prefix length.
func (p *tablePager) fit(text string, colWidth float64) string {
	limit := colWidth - 2*p.layout.CellPadding
	if limit <= 0 {
		return ""
	}
	if p.s.StringWidth(text) <= limit+fitTolerance {
		return text
	}
	r := []rune(text)
	// Largest k with r[:k]+"..." fitting; -1 when even "..." does not.
	lo, hi := -1, len(r)-1
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if p.s.StringWidth(string(r[:mid])+"...") <= limit+fitTolerance {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	if lo < 0 {
		return ""
	}
	return string(r[:lo]) + "..."
}
