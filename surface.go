package goreport

import "io"

// Surface is the drawing target of a report: a paginated vector document
// with page navigation. All coordinates and lengths are in millimetres
// from the top-left page corner; y of a text run is its baseline.
type Surface interface {
	SetFont(style FontStyle, size float64)
	SetDrawColor(c Color)
	Line(x1, y1, x2, y2 float64)
	// Text draws s with the given alignment relative to x: AlignLeft
	// starts at x, AlignRight ends at x, AlignCenter is centered on x.
	Text(x, y float64, s string, align Align)
	// Image draws encoded image data (PNG, JPEG or GIF) into the box.
	// name identifies the image so repeated draws reuse one resource.
	Image(name string, data []byte, imageType string, x, y, w, h float64) error
	// StringWidth returns the width of s in the current font.
	StringWidth(s string) float64

	AddPage()
	SetPage(n int)
	PageNo() int
	PageCount() int
	PageSize() (w, h float64)

	Output(w io.Writer) error
}

// textAnchor returns the x coordinate at which a left-aligned run of the
// given width must start to honour align relative to x.
func textAnchor(x, width float64, align Align) float64 {
	switch align {
	case AlignRight:
		return x - width
	case AlignCenter:
		return x - width/2
	default:
		return x
	}
}
