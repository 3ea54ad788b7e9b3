package goreport

import (
	"strings"
)

// Color represents an RGB draw color.
type Color struct {
	RGB string // 6-character hex string, e.g., "000000" for black
}

// ColorBlack is the default rule color.
var ColorBlack = Color{RGB: "000000"}

// NewColor creates a new Color from a hex string.
// Accepts 6-char RGB (e.g. "FF0000") or 8-char ARGB (e.g. "FFFF0000"), in
// which case the alpha byte is dropped. A leading "#" is stripped automatically.
func NewColor(hex string) Color {
	hex = strings.ToUpper(strings.TrimPrefix(hex, "#"))
	if len(hex) == 8 {
		hex = hex[2:]
	}
	if !isValidRGB(hex) {
		return ColorBlack
	}
	return Color{RGB: hex}
}

// isValidRGB checks that s is exactly 6 hex characters.
func isValidRGB(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// Red returns the red component (0-255).
func (c Color) Red() uint8 {
	return parseHexByte(c.RGB, 0)
}

// Green returns the green component (0-255).
func (c Color) Green() uint8 {
	return parseHexByte(c.RGB, 2)
}

// Blue returns the blue component (0-255).
func (c Color) Blue() uint8 {
	return parseHexByte(c.RGB, 4)
}

// parseHexByte parses two hex characters at offset into a uint8.
// Returns 0 on any error (out of range, invalid chars).
func parseHexByte(s string, offset int) uint8 {
	if offset+2 > len(s) {
		return 0
	}
	h := hexVal(s[offset])
	l := hexVal(s[offset+1])
	if h < 0 || l < 0 {
		return 0
	}
	return uint8(h<<4 | l)
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return -1
	}
}

// Align is the horizontal alignment of a text run relative to its anchor x.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// FontStyle selects the weight of the report font.
type FontStyle string

const (
	StyleNormal FontStyle = ""
	StyleBold   FontStyle = "B"
)

// Position anchors a header element on the page: "l", "r" or "c".
// Any other value selects the fallback layout.
type Position string

const (
	PositionLeft   Position = "l"
	PositionRight  Position = "r"
	PositionCenter Position = "c"
)
