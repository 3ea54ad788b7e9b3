package goreport

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// OpKind identifies a recorded drawing operation.
type OpKind string

const (
	OpLine  OpKind = "line"
	OpText  OpKind = "text"
	OpImage OpKind = "image"
)

// Op is one drawing operation captured by a Recorder. Lines use X, Y, X2,
// Y2; text uses X, Y, Text, Align and the font state; images use X, Y, W,
// H and Name.
type Op struct {
	Kind   OpKind
	X, Y   float64
	X2, Y2 float64
	W, H   float64
	Text   string
	Align  Align
	Style  FontStyle
	Size   float64
	Color  Color
	Name   string
}

// Recorder is an in-memory Surface that keeps every operation per page.
// It is useful for dry runs and for inspecting a layout without producing
// PDF bytes. Text widths are measured with a fixed-pitch 7x13 face scaled
// to the font size.
type Recorder struct {
	width, height float64
	pages         [][]Op
	current       int // 1-based, 0 before the first page
	style         FontStyle
	size          float64
	color         Color
	images        map[string][]byte
}

// NewRecorder creates a Recorder for an A4 page in the given orientation.
func NewRecorder(cfg PdfConfig) *Recorder {
	w, h := pageSizeMM(cfg.normalizedValue().Orientation)
	return &Recorder{width: w, height: h, size: 10, color: ColorBlack, images: make(map[string][]byte)}
}

func (r *Recorder) record(op Op) {
	if r.current == 0 {
		return
	}
	r.pages[r.current-1] = append(r.pages[r.current-1], op)
}

// SetFont sets the style and size recorded with subsequent text.
func (r *Recorder) SetFont(style FontStyle, size float64) {
	r.style = style
	r.size = size
}

// SetDrawColor sets the color recorded with subsequent lines.
func (r *Recorder) SetDrawColor(c Color) { r.color = c }

// Line records a line on the current page.
func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.record(Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Color: r.color})
}

// Text records a text run on the current page.
func (r *Recorder) Text(x, y float64, s string, align Align) {
	r.record(Op{Kind: OpText, X: x, Y: y, Text: s, Align: align, Style: r.style, Size: r.size})
}

// Image records an image and keeps its data for previews.
func (r *Recorder) Image(name string, data []byte, imageType string, x, y, w, h float64) error {
	if len(data) == 0 {
		return fmt.Errorf("image %q has no data", name)
	}
	if _, ok := r.images[name]; !ok {
		r.images[name] = data
	}
	r.record(Op{Kind: OpImage, X: x, Y: y, W: w, H: h, Name: name, Text: imageType})
	return nil
}

// StringWidth returns the width of s in millimetres at the current size.
func (r *Recorder) StringWidth(s string) float64 {
	face := basicfont.Face7x13
	px := float64(font.MeasureString(face, s)) / 64
	pt := px * r.size / float64(face.Height)
	return pt * mmPerInch / pointsPerInch
}

// AddPage appends an empty page and makes it current.
func (r *Recorder) AddPage() {
	r.pages = append(r.pages, nil)
	r.current = len(r.pages)
}

// SetPage makes page n current; out-of-range values are ignored.
func (r *Recorder) SetPage(n int) {
	if n < 1 || n > len(r.pages) {
		return
	}
	r.current = n
}

// PageNo returns the current page, 0 before the first AddPage.
func (r *Recorder) PageNo() int { return r.current }

// PageCount returns the number of recorded pages.
func (r *Recorder) PageCount() int { return len(r.pages) }

// PageSize returns the A4 page size in millimetres.
func (r *Recorder) PageSize() (w, h float64) { return r.width, r.height }

// Ops returns the operations recorded on page n (1-based).
func (r *Recorder) Ops(n int) []Op {
	if n < 1 || n > len(r.pages) {
		return nil
	}
	return r.pages[n-1]
}

// Texts returns the strings drawn on page n in drawing order.
func (r *Recorder) Texts(n int) []string {
	var out []string
	for _, op := range r.Ops(n) {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Output writes a plain-text listing of every operation, one per line.
func (r *Recorder) Output(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, ops := range r.pages {
		fmt.Fprintf(bw, "page %d\n", i+1)
		for _, op := range ops {
			switch op.Kind {
			case OpLine:
				fmt.Fprintf(bw, "  line (%.2f,%.2f)-(%.2f,%.2f) #%s\n", op.X, op.Y, op.X2, op.Y2, op.Color.RGB)
			case OpText:
				fmt.Fprintf(bw, "  text %s (%.2f,%.2f) %q %.1fpt %q\n", op.Align, op.X, op.Y, op.Style, op.Size, op.Text)
			case OpImage:
				fmt.Fprintf(bw, "  image %s (%.2f,%.2f) %.2fx%.2f\n", op.Name, op.X, op.Y, op.W, op.H)
			}
		}
	}
	return bw.Flush()
}
