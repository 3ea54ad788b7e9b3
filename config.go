package goreport

import (
	"strings"
	"time"

	"github.com/go-logr/logr"
)

// PdfConfig holds page-level document settings.
type PdfConfig struct {
	// Orientation is "p"/"portrait" or "l"/"landscape". Default: "p".
	Orientation string
	// Unit is the document measurement unit: "mm", "cm", "in" or "pt".
	// Default: "mm".
	Unit string
}

// DefaultPdfConfig returns the page settings used when none are supplied.
func DefaultPdfConfig() PdfConfig {
	return PdfConfig{Orientation: "p", Unit: "mm"}
}

// normalized fills empty fields with defaults.
func (c *PdfConfig) normalized() PdfConfig {
	if c == nil {
		return DefaultPdfConfig()
	}
	return c.normalizedValue()
}

func (c PdfConfig) normalizedValue() PdfConfig {
	def := DefaultPdfConfig()
	out := c
	if out.Orientation == "" {
		out.Orientation = def.Orientation
	}
	if out.Unit == "" {
		out.Unit = def.Unit
	}
	out.Orientation = strings.ToLower(out.Orientation)
	out.Unit = strings.ToLower(out.Unit)
	return out
}

func isLandscape(orientation string) bool {
	switch strings.ToLower(orientation) {
	case "l", "landscape":
		return true
	}
	return false
}

// TableConfig configures the table title and the optional total.
type TableConfig struct {
	Title   string
	FindSum bool
	// SumKey names the record field summed when FindSum is set.
	SumKey string
}

// SummaryAnchor selects how the summary block is positioned vertically.
type SummaryAnchor int

const (
	// AnchorLastRow places the block just below the last drawn table row.
	AnchorLastRow SummaryAnchor = iota
	// AnchorRowFormula places the block at SummaryBase + (rows mod
	// RowsPerPage) * RowHeight. It assumes every page holds exactly
	// RowsPerPage rows and misplaces the block when that does not hold.
	AnchorRowFormula
)

// Layout holds the fixed geometry of the report. All lengths are in
// millimetres, font sizes in points.
type Layout struct {
	MarginLeft   float64
	MarginTop    float64
	MarginBottom float64
	// RightInset is the distance from the right page edge to the right
	// edge of rules and right-aligned text.
	RightInset float64
	RuleColor  Color

	HeaderFontSize    float64
	HeaderTextSize    float64
	HeaderTextY       float64
	HeaderImageY      float64
	HeaderImageHeight float64

	TitleFontSize   float64
	TitleRuleTop    float64
	TitleRuleBottom float64
	TitleBaseline   float64

	TableStartY    float64
	TableFontSize  float64
	HeadHeight     float64
	HeadPadding    float64
	RowHeight      float64
	CellPadding    float64
	MinColumnWidth float64

	FooterFontSize float64
	FooterInset    float64

	SummaryFontSize  float64
	SummaryAnchor    SummaryAnchor
	SummaryGap       float64
	SummaryHeight    float64
	SummaryTextInset float64
	SummaryBase      float64
	RowsPerPage      int
}

// DefaultLayout returns the reference A4 layout.
func DefaultLayout() *Layout {
	return &Layout{
		MarginLeft:   10,
		MarginTop:    20,
		MarginBottom: 20,
		RightInset:   20,
		RuleColor:    ColorBlack,

		HeaderFontSize:    6,
		HeaderTextSize:    10,
		HeaderTextY:       10,
		HeaderImageY:      5,
		HeaderImageHeight: 10,

		TitleFontSize:   7,
		TitleRuleTop:    24,
		TitleRuleBottom: 28,
		TitleBaseline:   27,

		TableStartY:    30,
		TableFontSize:  6,
		HeadHeight:     7,
		HeadPadding:    5,
		RowHeight:      5,
		CellPadding:    1.5,
		MinColumnWidth: 8,

		FooterFontSize: 5,
		FooterInset:    7,

		SummaryFontSize:  7,
		SummaryAnchor:    AnchorLastRow,
		SummaryGap:       2,
		SummaryHeight:    8,
		SummaryTextInset: 25,
		SummaryBase:      47,
		RowsPerPage:      41,
	}
}

// rightEdge returns the x coordinate of the right edge of the content area.
func (l *Layout) rightEdge(pageWidth float64) float64 {
	return pageWidth - l.RightInset
}

// Options configures a MakeDocument call.
type Options struct {
	// Layout overrides the page geometry. Nil means DefaultLayout().
	Layout *Layout
	// Now supplies the generation time. Default: time.Now.
	Now func() time.Time
	// Logger receives V(1) diagnostics. Default: logr.Discard().
	Logger logr.Logger
	// NewSurface creates the drawing surface. Default: an fpdf surface
	// using Fonts.
	NewSurface func(cfg PdfConfig) (Surface, error)
	// Fonts selects a TrueType family for the fpdf surface. Nil means the
	// built-in Helvetica.
	Fonts *FontOptions
	// Exporter, when set, receives the finalized document.
	Exporter Exporter
}

// DefaultOptions returns default options.
func DefaultOptions() *Options {
	return &Options{
		Layout: DefaultLayout(),
		Now:    time.Now,
		Logger: logr.Discard(),
	}
}

// normalized returns a copy of o with every unset field defaulted.
func (o *Options) normalized() *Options {
	out := DefaultOptions()
	if o == nil {
		out.NewSurface = defaultSurfaceFactory(nil)
		return out
	}
	*out = *o
	if out.Layout == nil {
		out.Layout = DefaultLayout()
	}
	if out.Now == nil {
		out.Now = time.Now
	}
	if out.Logger.GetSink() == nil {
		out.Logger = logr.Discard()
	}
	if out.NewSurface == nil {
		out.NewSurface = defaultSurfaceFactory(out.Fonts)
	}
	return out
}

func defaultSurfaceFactory(fonts *FontOptions) func(PdfConfig) (Surface, error) {
	return func(cfg PdfConfig) (Surface, error) {
		s, err := NewFPDFSurface(cfg, fonts)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}
