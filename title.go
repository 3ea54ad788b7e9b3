package goreport

// RenderTitle draws the title block under the header: a bold title line
// between two horizontal rules. An empty title still draws the rules.
func RenderTitle(s Surface, title string, layout *Layout) {
	if layout == nil {
		layout = DefaultLayout()
	}
	w, _ := s.PageSize()
	right := layout.rightEdge(w)

	s.SetDrawColor(layout.RuleColor)
	s.Line(layout.MarginLeft, layout.TitleRuleTop, right, layout.TitleRuleTop)
	s.Line(layout.MarginLeft, layout.TitleRuleBottom, right, layout.TitleRuleBottom)
	s.SetFont(StyleBold, layout.TitleFontSize)
	s.Text(layout.MarginLeft, layout.TitleBaseline, title, AlignLeft)
}
