// Package palette defines the palette document produced by pywal and the
// single error kind used for all domain failures.
package palette

import (
	"fmt"
	"regexp"
)

// Document is the shape of pywal's colors.json output: a mapping of numbered
// colour slots plus the special background/foreground roles.
type Document struct {
	Wallpaper string            `json:"wallpaper"`
	Alpha     string            `json:"alpha"`
	Special   map[string]string `json:"special"`
	Colors    map[string]string `json:"colors"`
}

// hexPattern matches a 6-hex-digit colour with an optional leading hash.
var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// ValidHex reports whether s is a 6-hex-digit colour string.
func ValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// Background returns the special background colour, if present.
func (d *Document) Background() (string, bool) {
	if d.Special == nil {
		return "", false
	}
	hex, ok := d.Special["background"]
	return hex, ok && hex != ""
}

// Foreground returns the special foreground colour, if present.
func (d *Document) Foreground() (string, bool) {
	if d.Special == nil {
		return "", false
	}
	hex, ok := d.Special["foreground"]
	return hex, ok && hex != ""
}

// Validate checks that the document carries at least one colour slot and that
// every colour value is a 6-hex-digit string.
func (d *Document) Validate() error {
	if len(d.Colors) == 0 {
		return Errorf("palette colors collection empty")
	}
	for slot, hex := range d.Colors {
		if !ValidHex(hex) {
			return Errorf("palette slot %s has unexpected colour format: %s", slot, hex)
		}
	}
	for role, hex := range d.Special {
		if hex != "" && !ValidHex(hex) {
			return Errorf("palette special %s has unexpected colour format: %s", role, hex)
		}
	}
	return nil
}

// Error is the single error kind for palette-related failures: missing
// prerequisite files, exhausted pywal backends, malformed palette data and
// failed substitutions all surface as *Error.
type Error struct {
	msg   string
	cause error
}

// Error returns the failure message.
func (e *Error) Error() string {
	return e.msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Errorf creates a new Error with a formatted message. A %w verb records the
// wrapped error as the cause.
func Errorf(format string, args ...any) *Error {
	err := fmt.Errorf(format, args...)
	return &Error{msg: err.Error(), cause: unwrap(err)}
}

// Wrap creates a new Error with the given message and cause.
func Wrap(err error, msg string) *Error {
	if err == nil {
		return &Error{msg: msg}
	}
	return &Error{msg: fmt.Sprintf("%s: %v", msg, err), cause: err}
}

func unwrap(err error) error {
	type wrapper interface{ Unwrap() error }
	if w, ok := err.(wrapper); ok {
		return w.Unwrap()
	}
	return nil
}
