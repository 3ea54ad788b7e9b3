package goreport

import "fmt"

// Unit conversion helpers. Layout values are expressed in millimetres and
// converted to the document unit by the drawing surface.
// 1 inch = 25.4 mm, 1 point = 1/72 inch.

const (
	mmPerInch       = 25.4
	mmPerCentimeter = 10
	pointsPerInch   = 72
)

// A4 page dimensions in millimetres, portrait.
const (
	a4Width  = 210.0
	a4Height = 297.0
)

// UnitsPerMillimeter returns how many document units make up one millimetre.
func UnitsPerMillimeter(unit string) (float64, error) {
	switch unit {
	case "mm":
		return 1, nil
	case "cm":
		return 1.0 / mmPerCentimeter, nil
	case "in", "inch":
		return 1.0 / mmPerInch, nil
	case "pt", "point":
		return pointsPerInch / mmPerInch, nil
	default:
		return 0, fmt.Errorf("unsupported unit: %q", unit)
	}
}

// Millimeter converts n millimetres to the given document unit.
func Millimeter(n float64, unit string) float64 {
	k, err := UnitsPerMillimeter(unit)
	if err != nil {
		return n
	}
	return n * k
}

// ToMillimeter converts n document units back to millimetres.
func ToMillimeter(n float64, unit string) float64 {
	k, err := UnitsPerMillimeter(unit)
	if err != nil || k == 0 {
		return n
	}
	return n / k
}

// pageSizeMM returns the A4 page size in millimetres for the orientation.
func pageSizeMM(orientation string) (w, h float64) {
	if isLandscape(orientation) {
		return a4Height, a4Width
	}
	return a4Width, a4Height
}
