package goreport

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"
)

// testPNG returns an encoded w x h PNG.
func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// fixedNow is the generation time used by tests.
var fixedNow = time.Date(2023, time.March, 12, 14, 5, 9, 0, time.UTC)

// recordingOptions returns options that draw on a Recorder, which is
// stored in *rec once MakeDocument creates it.
func recordingOptions(rec **Recorder) *Options {
	opts := DefaultOptions()
	opts.Now = func() time.Time { return fixedNow }
	opts.NewSurface = func(cfg PdfConfig) (Surface, error) {
		*rec = NewRecorder(cfg)
		return *rec, nil
	}
	return opts
}

// textOps returns the text operations of a page.
func textOps(r *Recorder, page int) []Op {
	var out []Op
	for _, op := range r.Ops(page) {
		if op.Kind == OpText {
			out = append(out, op)
		}
	}
	return out
}

// countText counts how often s is drawn on a page.
func countText(r *Recorder, page int, s string) int {
	n := 0
	for _, txt := range r.Texts(page) {
		if txt == s {
			n++
		}
	}
	return n
}
