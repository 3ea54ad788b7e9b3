package goreport

import (
	"fmt"
	"strings"
)

// Validate checks the layout for geometry that cannot produce a readable
// page and returns an error describing all problems found, or nil if the
// layout is usable.
func (l *Layout) Validate() error {
	var errs []string

	positive := []struct {
		name string
		v    float64
	}{
		{"row height", l.RowHeight},
		{"head height", l.HeadHeight},
		{"table font size", l.TableFontSize},
		{"header font size", l.HeaderFontSize},
		{"title font size", l.TitleFontSize},
		{"footer font size", l.FooterFontSize},
		{"summary font size", l.SummaryFontSize},
		{"header image height", l.HeaderImageHeight},
	}
	for _, p := range positive {
		if p.v <= 0 {
			errs = append(errs, p.name+" must be positive")
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"left margin", l.MarginLeft},
		{"top margin", l.MarginTop},
		{"bottom margin", l.MarginBottom},
		{"right inset", l.RightInset},
		{"cell padding", l.CellPadding},
		{"head padding", l.HeadPadding},
		{"minimum column width", l.MinColumnWidth},
		{"summary gap", l.SummaryGap},
		{"summary height", l.SummaryHeight},
	}
	for _, p := range nonNegative {
		if p.v < 0 {
			errs = append(errs, p.name+" must not be negative")
		}
	}

	if l.HeadPadding > l.HeadHeight {
		errs = append(errs, "head padding exceeds head height")
	}
	if l.CellPadding > l.RowHeight {
		errs = append(errs, "cell padding exceeds row height")
	}
	if l.SummaryAnchor == AnchorRowFormula && l.RowsPerPage <= 0 {
		errs = append(errs, "rows per page must be positive for the row formula anchor")
	}
	if !isValidRGB(l.RuleColor.RGB) {
		errs = append(errs, "rule color is invalid RGB")
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("layout validation failed:\n  %s", strings.Join(errs, "\n  "))
}

// validateFit checks that at least one table row fits on a page of the
// given height.
func (l *Layout) validateFit(pageHeight float64) error {
	usable := pageHeight - l.MarginBottom - l.MarginTop - l.HeadHeight
	if usable < l.RowHeight {
		return fmt.Errorf("layout validation failed: page height %.1fmm leaves no room for a table row", pageHeight)
	}
	if l.TableStartY+l.HeadHeight+l.RowHeight > pageHeight-l.MarginBottom {
		return fmt.Errorf("layout validation failed: table start %.1fmm leaves no room for a table row", l.TableStartY)
	}
	return nil
}
