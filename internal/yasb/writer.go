// Package yasb applies a chosen accent colour to YASB's stylesheet and
// widget configuration in place.
package yasb

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/yasbtint/internal/colour"
	"github.com/jmylchreest/yasbtint/internal/palette"
)

const (
	// StylesheetName is YASB's CSS file inside the config directory.
	StylesheetName = "styles.css"
	// ConfigName is YASB's widget configuration file.
	ConfigName = "config.yaml"

	// backgroundAlpha is the fixed translucency applied to the bar
	// background.
	backgroundAlpha = "0.72"
)

// Substitution targets inside styles.css and config.yaml.
var (
	accentPattern       = regexp.MustCompile(`--accent:\s*#[0-9a-fA-F]{6};`)
	accentRGBPattern    = regexp.MustCompile(`--accent-rgb:\s*[0-9\s,]+;`)
	backgroundPattern   = regexp.MustCompile(`--yasb-background:\s*rgba\([^;]+;`)
	widgetColourPattern = regexp.MustCompile(`'color': '#[0-9a-fA-F]{6}'`)
)

// Writer mutates the two YASB configuration files under Dir.
type Writer struct {
	dir    string
	logger hclog.Logger
}

// NewWriter creates a Writer for the given YASB config directory. An empty
// dir selects the default ~/.config/yasb location.
func NewWriter(dir string, logger hclog.Logger) *Writer {
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".config", "yasb")
		} else {
			dir = filepath.Join(".config", "yasb")
		}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Writer{dir: dir, logger: logger}
}

// StylesheetPath returns the path of styles.css.
func (w *Writer) StylesheetPath() string {
	return filepath.Join(w.dir, StylesheetName)
}

// ConfigPath returns the path of config.yaml.
func (w *Writer) ConfigPath() string {
	return filepath.Join(w.dir, ConfigName)
}

// Ensure confirms that both target files exist before any work starts.
// Neither file is ever created by this tool.
func (w *Writer) Ensure() error {
	var missing []string
	for _, path := range []string{w.StylesheetPath(), w.ConfigPath()} {
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}
	if len(missing) > 0 {
		return palette.Errorf("missing expected YASB files: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Apply writes the accent and background into both files. The stylesheet is
// updated first; if any of its substitution sites are missing the widget
// config is left untouched. Returns the number of widget colour entries
// updated.
func (w *Writer) Apply(accentHex string, background colour.RGB) (int, error) {
	accent, err := colour.ParseHex(accentHex)
	if err != nil {
		return 0, err
	}

	if err := w.updateStylesheet(accent, background); err != nil {
		return 0, err
	}
	return w.updateConfig(accent)
}

// updateStylesheet rewrites the accent and background custom properties.
func (w *Writer) updateStylesheet(accent, background colour.RGB) error {
	path := w.StylesheetPath()
	raw, err := os.ReadFile(path)
	if err != nil {
		return palette.Errorf("reading %s: %w", StylesheetName, err)
	}

	updated, err := applyStylesheet(string(raw), accent, background)
	if err != nil {
		return err
	}

	if err := renameio.WriteFile(path, []byte(updated), 0644); err != nil {
		return palette.Errorf("writing %s: %w", StylesheetName, err)
	}
	w.logger.Debug("updated stylesheet", "path", path, "accent", accent.Hex())
	return nil
}

// updateConfig rewrites every quoted widget colour entry.
func (w *Writer) updateConfig(accent colour.RGB) (int, error) {
	path := w.ConfigPath()
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, palette.Errorf("reading %s: %w", ConfigName, err)
	}

	updated, count, err := applyWidgetConfig(string(raw), accent)
	if err != nil {
		return 0, err
	}

	if err := renameio.WriteFile(path, []byte(updated), 0644); err != nil {
		return 0, palette.Errorf("writing %s: %w", ConfigName, err)
	}
	w.logger.Debug("updated widget config", "path", path, "entries", count)
	return count, nil
}

// applyStylesheet performs the three stylesheet substitutions. Each pattern
// must match at least once; only the first occurrence is replaced.
func applyStylesheet(css string, accent, background colour.RGB) (string, error) {
	replacements := []struct {
		pattern     *regexp.Regexp
		replacement string
	}{
		{accentPattern, fmt.Sprintf("--accent: %s;", accent.Hex())},
		{accentRGBPattern, fmt.Sprintf("--accent-rgb: %s;", accent.Triple())},
		{backgroundPattern, fmt.Sprintf("--yasb-background: rgba(%s, %s);", background.Triple(), backgroundAlpha)},
	}

	for _, r := range replacements {
		loc := r.pattern.FindStringIndex(css)
		if loc == nil {
			return "", palette.Errorf("failed to apply CSS replacement for pattern: %s", r.pattern)
		}
		css = css[:loc[0]] + r.replacement + css[loc[1]:]
	}
	return css, nil
}

// applyWidgetConfig replaces every quoted colour entry with the accent and
// returns the rewritten content together with the replacement count. Zero
// matches is a hard error.
func applyWidgetConfig(text string, accent colour.RGB) (string, int, error) {
	count := 0
	updated := widgetColourPattern.ReplaceAllStringFunc(text, func(string) string {
		count++
		return fmt.Sprintf("'color': '%s'", accent.Hex())
	})
	if count == 0 {
		return "", 0, palette.Errorf("no colour entries updated in %s; expected at least one", ConfigName)
	}
	return updated, count, nil
}
