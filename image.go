package goreport

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// preparedImage is header image data in a format the PDF surface embeds
// directly.
type preparedImage struct {
	name   string
	data   []byte
	typ    string // "PNG", "JPG" or "GIF"
	width  int
	height int
}

// aspect returns width/height, or 1 for degenerate images.
func (p *preparedImage) aspect() float64 {
	if p.width <= 0 || p.height <= 0 {
		return 1
	}
	return float64(p.width) / float64(p.height)
}

// decodeHeaderImage sniffs the image format. PNG, JPEG and GIF pass through
// unchanged; BMP, TIFF and WebP are decoded and re-encoded as PNG.
func decodeHeaderImage(data []byte) (*preparedImage, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode header image: %w", err)
	}
	sum := sha1.Sum(data)
	p := &preparedImage{
		name:   "header-" + hex.EncodeToString(sum[:8]),
		data:   data,
		width:  cfg.Width,
		height: cfg.Height,
	}
	switch format {
	case "png":
		p.typ = "PNG"
	case "jpeg":
		p.typ = "JPG"
	case "gif":
		p.typ = "GIF"
	default:
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode header image: %w", err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("re-encode %s header image: %w", format, err)
		}
		p.data = buf.Bytes()
		p.typ = "PNG"
	}
	return p, nil
}
