package goreport

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	coreFontFamily = "Helvetica"
	utf8FontFamily = "ReportSans"
)

// FPDFSurface is a Surface backed by github.com/go-pdf/fpdf.
type FPDFSurface struct {
	pdf    *fpdf.Fpdf
	k      float64 // document units per millimetre
	family string
	tr     func(string) string
	images map[string]bool
}

// NewFPDFSurface creates an empty A4 document with the given orientation
// and unit. When fonts names a family, its TrueType files are embedded and
// text is written as UTF-8; otherwise the core Helvetica font is used and
// text is translated to cp1252.
func NewFPDFSurface(cfg PdfConfig, fonts *FontOptions) (*FPDFSurface, error) {
	cfg = cfg.normalizedValue()
	k, err := UnitsPerMillimeter(cfg.Unit)
	if err != nil {
		return nil, err
	}
	orientation := "P"
	if isLandscape(cfg.Orientation) {
		orientation = "L"
	}

	pdf := fpdf.New(orientation, cfg.Unit, "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)

	s := &FPDFSurface{
		pdf:    pdf,
		k:      k,
		family: coreFontFamily,
		images: make(map[string]bool),
	}

	if fonts != nil && fonts.Family != "" {
		if err := s.embedFamily(fonts); err != nil {
			return nil, err
		}
		s.tr = func(str string) string { return str }
	} else {
		s.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("init pdf: %w", err)
	}
	return s, nil
}

func (s *FPDFSurface) embedFamily(fonts *FontOptions) error {
	locator := fonts.Locator
	if locator == nil {
		locator = NewFontLocator(fonts.Dirs...)
	}
	regular, err := locator.Find(fonts.Family, false)
	if err != nil {
		return err
	}
	bold, err := locator.Find(fonts.Family, true)
	if err != nil {
		bold = regular
	}
	s.pdf.AddUTF8FontFromBytes(utf8FontFamily, "", regular)
	s.pdf.AddUTF8FontFromBytes(utf8FontFamily, "B", bold)
	if err := s.pdf.Error(); err != nil {
		return fmt.Errorf("embed font %q: %w", fonts.Family, err)
	}
	s.family = utf8FontFamily
	return nil
}

// SetFont selects the report family in the given style and point size.
func (s *FPDFSurface) SetFont(style FontStyle, size float64) {
	s.pdf.SetFont(s.family, string(style), size)
}

// SetDrawColor sets the color of subsequent lines.
func (s *FPDFSurface) SetDrawColor(c Color) {
	s.pdf.SetDrawColor(int(c.Red()), int(c.Green()), int(c.Blue()))
}

// Line draws a straight line between two points given in millimetres.
func (s *FPDFSurface) Line(x1, y1, x2, y2 float64) {
	s.pdf.Line(x1*s.k, y1*s.k, x2*s.k, y2*s.k)
}

// Text draws str with its baseline at y, aligned relative to x.
func (s *FPDFSurface) Text(x, y float64, str string, align Align) {
	str = s.tr(str)
	w := s.pdf.GetStringWidth(str) / s.k
	s.pdf.Text(textAnchor(x, w, align)*s.k, y*s.k, str)
}

// Image draws encoded image data into the box, registering it once per name.
func (s *FPDFSurface) Image(name string, data []byte, imageType string, x, y, w, h float64) error {
	opts := fpdf.ImageOptions{ImageType: imageType}
	if !s.images[name] {
		s.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
		if err := s.pdf.Error(); err != nil {
			return fmt.Errorf("register image %q: %w", name, err)
		}
		s.images[name] = true
	}
	s.pdf.ImageOptions(name, x*s.k, y*s.k, w*s.k, h*s.k, false, opts, 0, "")
	return s.pdf.Error()
}

// StringWidth returns the width of str in millimetres in the current font.
func (s *FPDFSurface) StringWidth(str string) float64 {
	return s.pdf.GetStringWidth(s.tr(str)) / s.k
}

// AddPage starts a new page and makes it current.
func (s *FPDFSurface) AddPage() { s.pdf.AddPage() }

// SetPage makes page n (1-based) current.
func (s *FPDFSurface) SetPage(n int) { s.pdf.SetPage(n) }

// PageNo returns the current page number.
func (s *FPDFSurface) PageNo() int { return s.pdf.PageNo() }

// PageCount returns the number of pages.
func (s *FPDFSurface) PageCount() int { return s.pdf.PageCount() }

// PageSize returns the page size in millimetres.
func (s *FPDFSurface) PageSize() (w, h float64) {
	w, h = s.pdf.GetPageSize()
	return w / s.k, h / s.k
}

// SetMetadata records the document title and creation time.
func (s *FPDFSurface) SetMetadata(title string, created time.Time) {
	s.pdf.SetTitle(title, true)
	s.pdf.SetCreator("GoReport "+Version, true)
	s.pdf.SetCreationDate(created)
}

// Output writes the finished PDF. The surface cannot be drawn on afterwards.
func (s *FPDFSurface) Output(w io.Writer) error {
	if err := s.pdf.Output(w); err != nil {
		return fmt.Errorf("pdf output: %w", err)
	}
	return nil
}
