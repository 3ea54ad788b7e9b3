package goreport

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ImageFormat represents the output image format of a page preview.
type ImageFormat int

const (
	ImageFormatPNG ImageFormat = iota
	ImageFormatJPEG
)

// PreviewOptions configures page-to-image rendering of a Recorder.
type PreviewOptions struct {
	// Width is the output image width in pixels. Height follows the page
	// aspect ratio. Default: 840
	Width int
	// Format is the output image format (PNG or JPEG).
	Format ImageFormat
	// JPEGQuality is the JPEG quality (1-100). Default: 90.
	JPEGQuality int
	// Background overrides the white page background.
	Background *color.RGBA
}

// DefaultPreviewOptions returns default preview options.
func DefaultPreviewOptions() *PreviewOptions {
	return &PreviewOptions{
		Width:       840,
		Format:      ImageFormatPNG,
		JPEGQuality: 90,
	}
}

// PageImage rasterizes recorded page n (1-based). Text is drawn with a
// fixed 7x13 bitmap face whatever the recorded size, so the preview shows
// placement rather than typography.
func (r *Recorder) PageImage(n int, opts *PreviewOptions) (image.Image, error) {
	if n < 1 || n > len(r.pages) {
		return nil, fmt.Errorf("page %d out of range (1-%d)", n, len(r.pages))
	}
	if opts == nil {
		opts = DefaultPreviewOptions()
	}
	width := opts.Width
	if width <= 0 {
		width = 840
	}
	height := int(math.Round(float64(width) * r.height / r.width))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if opts.Background != nil {
		bg = *opts.Background
	}
	draw.Draw(img, img.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)

	p := &rasterizer{
		img:    img,
		scale:  float64(width) / r.width,
		images: make(map[string]image.Image),
	}
	for _, op := range r.pages[n-1] {
		switch op.Kind {
		case OpLine:
			p.drawLine(p.px(op.X), p.px(op.Y), p.px(op.X2), p.px(op.Y2), colorRGBA(op.Color))
		case OpText:
			p.drawText(op)
		case OpImage:
			if err := p.drawImage(op, r.images[op.Name]); err != nil {
				return nil, fmt.Errorf("page %d: %w", n, err)
			}
		}
	}
	return img, nil
}

// SavePageImage renders page n and saves it to path.
func (r *Recorder) SavePageImage(n int, path string, opts *PreviewOptions) error {
	img, err := r.PageImage(n, opts)
	if err != nil {
		return err
	}
	return saveImage(img, path, opts)
}

// SavePageImages renders every page. The pattern should contain %d for the
// page number, e.g. "page_%d.png".
func (r *Recorder) SavePageImages(pattern string, opts *PreviewOptions) error {
	for n := 1; n <= len(r.pages); n++ {
		if err := r.SavePageImage(n, fmt.Sprintf(pattern, n), opts); err != nil {
			return fmt.Errorf("page %d: %w", n, err)
		}
	}
	return nil
}

func saveImage(img image.Image, path string, opts *PreviewOptions) error {
	if opts == nil {
		opts = DefaultPreviewOptions()
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	encodeErr := encodeImage(f, img, opts)
	closeErr := f.Close()

	if encodeErr != nil {
		os.Remove(path)
		return fmt.Errorf("encode image: %w", encodeErr)
	}
	return closeErr
}

func encodeImage(w io.Writer, img image.Image, opts *PreviewOptions) error {
	switch opts.Format {
	case ImageFormatJPEG:
		quality := opts.JPEGQuality
		if quality <= 0 || quality > 100 {
			quality = 90
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	default:
		return png.Encode(w, img)
	}
}

type rasterizer struct {
	img    *image.RGBA
	scale  float64 // pixels per millimetre
	images map[string]image.Image
}

func (p *rasterizer) px(mm float64) int {
	return int(math.Round(mm * p.scale))
}

func colorRGBA(c Color) color.RGBA {
	return color.RGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: 255}
}

func (p *rasterizer) drawLine(x1, y1, x2, y2 int, c color.RGBA) {
	// Bresenham's line algorithm
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		p.setPixel(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func (p *rasterizer) setPixel(x, y int, c color.RGBA) {
	if (image.Point{x, y}).In(p.img.Bounds()) {
		p.img.SetRGBA(x, y, c)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func (p *rasterizer) drawText(op Op) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, op.Text).Ceil()
	x := int(math.Round(textAnchor(float64(p.px(op.X)), float64(w), op.Align)))
	d := &font.Drawer{
		Dst:  p.img,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.P(x, p.px(op.Y)),
	}
	d.DrawString(op.Text)
	if op.Style == StyleBold {
		// Overstrike one pixel right.
		d.Dot = fixed.P(x+1, p.px(op.Y))
		d.DrawString(op.Text)
	}
}

func (p *rasterizer) drawImage(op Op, data []byte) error {
	src, ok := p.images[op.Name]
	if !ok {
		if len(data) == 0 {
			return fmt.Errorf("image %q not recorded", op.Name)
		}
		decoded, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("decode image %q: %w", op.Name, err)
		}
		src = decoded
		p.images[op.Name] = src
	}
	dst := image.Rect(p.px(op.X), p.px(op.Y), p.px(op.X+op.W), p.px(op.Y+op.H))
	scaled := scaleImage(src, dst.Dx(), dst.Dy())
	draw.Draw(p.img, dst, scaled, scaled.Bounds().Min, draw.Over)
	return nil
}

// scaleImage scales an image to the target width and height using nearest-neighbor.
func scaleImage(src image.Image, dstW, dstH int) image.Image {
	if dstW <= 0 || dstH <= 0 {
		return src
	}
	srcBounds := src.Bounds()
	srcW := srcBounds.Dx()
	srcH := srcBounds.Dy()
	if srcW == 0 || srcH == 0 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			srcX := srcBounds.Min.X + x*srcW/dstW
			srcY := srcBounds.Min.Y + y*srcH/dstH
			dst.Set(x, y, src.At(srcX, srcY))
		}
	}
	return dst
}
