// Package colour provides colour value handling and the accent selection
// logic used to theme YASB from a pywal palette.
package colour

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/yasbtint/internal/palette"
)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Triple returns the bare channel values (e.g., "26, 43, 60") as used by
// CSS custom properties of the form "--accent-rgb: R, G, B;".
func (rgb RGB) Triple() string {
	return fmt.Sprintf("%d, %d, %d", rgb.R, rgb.G, rgb.B)
}

// ParseHex converts a 6-hex-digit colour string (with or without a leading
// hash) to an RGB value.
func ParseHex(hex string) (RGB, error) {
	cleaned := strings.TrimPrefix(hex, "#")
	if !palette.ValidHex(cleaned) {
		return RGB{}, palette.Errorf("unexpected colour format: %s", hex)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(cleaned, "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, palette.Errorf("unexpected colour format: %s", hex)
	}
	return RGB{R: r, G: g, B: b}, nil
}

// Luminance returns the perceived luminance of an RGB value in [0, 1].
// This is a linear weighted sum of the normalised channels, deliberately
// without gamma correction - it matches the heuristic the accent selection
// thresholds were tuned against, not the WCAG definition.
func Luminance(rgb RGB) float64 {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0
	return 0.2126*r + 0.7152*g + 0.0722*b
}
