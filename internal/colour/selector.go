package colour

import (
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/yasbtint/internal/palette"
)

// Selection thresholds for accent candidates.
const (
	// LuminanceTarget is the ideal mid-range luminance for an accent.
	LuminanceTarget = 0.45
	// LuminanceTolerance is the symmetric band around the target within
	// which a candidate is acceptable.
	LuminanceTolerance = 0.25
	// MinContrast is the minimum absolute luminance difference between an
	// accent and the background.
	MinContrast = 0.25
)

// accentPriority lists the palette slots considered for the accent, most
// visually prominent first. color7 is usually near-white, so it comes last.
var accentPriority = []string{
	"color4",
	"color5",
	"color2",
	"color6",
	"color3",
	"color1",
	"color7",
}

// SelectorOptions carries the external inputs of accent selection. The
// override slot comes from configuration rather than an ambient environment
// lookup so the selector stays testable.
type SelectorOptions struct {
	// OverrideSlot forces the named palette slot when present in the
	// palette. No luminance or contrast filtering is applied to it.
	OverrideSlot string

	Logger hclog.Logger
}

// candidate is an accent colour under consideration.
type candidate struct {
	hex      string
	lum      float64
	contrast float64
}

// ChooseAccent selects a single accent colour from the palette.
//
// Candidates are walked in fixed priority order (then the special foreground
// colour). The first candidate whose luminance lands within the tolerance
// band around the target and whose contrast against the background meets the
// minimum wins. If none qualifies, the candidate closest to the target
// luminance is used regardless of contrast, so any non-empty palette always
// yields a result.
func ChooseAccent(colors, special map[string]string, background RGB, opts SelectorOptions) (string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	if opts.OverrideSlot != "" {
		if hex, ok := colors[opts.OverrideSlot]; ok && hex != "" {
			logger.Debug("using accent slot override", "slot", opts.OverrideSlot, "accent", hex)
			return hex, nil
		}
		logger.Debug("accent slot override not present in palette, falling back", "slot", opts.OverrideSlot)
	}

	backgroundLum := Luminance(background)

	var ranked []candidate
	for _, hex := range enumerateCandidates(colors, special) {
		rgb, err := ParseHex(hex)
		if err != nil {
			return "", err
		}
		lum := Luminance(rgb)
		ranked = append(ranked, candidate{
			hex:      hex,
			lum:      lum,
			contrast: math.Abs(lum - backgroundLum),
		})
	}

	if len(ranked) == 0 {
		return "", palette.Errorf("palette did not contain any usable accent colours")
	}

	targetLow := math.Max(0.0, LuminanceTarget-LuminanceTolerance)
	targetHigh := math.Min(1.0, LuminanceTarget+LuminanceTolerance)

	for _, c := range ranked {
		if c.lum >= targetLow && c.lum <= targetHigh && c.contrast >= MinContrast {
			logger.Debug("selected accent within target band", "accent", c.hex, "luminance", c.lum, "contrast", c.contrast)
			return c.hex, nil
		}
	}

	// Fallback: stable minimum keeps the first occurrence on equal distance.
	best := ranked[0]
	for _, c := range ranked[1:] {
		if math.Abs(c.lum-LuminanceTarget) < math.Abs(best.lum-LuminanceTarget) {
			best = c
		}
	}
	logger.Debug("no candidate met the target band, using closest luminance", "accent", best.hex, "luminance", best.lum)
	return best.hex, nil
}

// enumerateCandidates walks the priority slots and appends the special
// foreground colour last. Order and multiplicity are preserved - duplicates
// are not collapsed.
func enumerateCandidates(colors, special map[string]string) []string {
	var out []string
	for _, slot := range accentPriority {
		if hex, ok := colors[slot]; ok && hex != "" {
			out = append(out, hex)
		}
	}
	if fg, ok := special["foreground"]; ok && fg != "" {
		out = append(out, fg)
	}
	return out
}
