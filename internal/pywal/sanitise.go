package pywal

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/yasbtint/internal/palette"
)

// pywal on Windows occasionally emits colors.json with a trailing comma or
// with unescaped backslashes in the wallpaper path. Both break strict JSON
// parsing, so we patch them textually before retrying.
var (
	trailingCommaPattern  = regexp.MustCompile(`,\s*([}\]])`)
	wallpaperValuePattern = regexp.MustCompile(`("wallpaper"\s*:\s*")([^"]+)(")`)
)

// Sanitise applies the two known repairs to raw colors.json content: strip
// trailing commas before a closing bracket or brace, and double-escape
// backslashes inside the wallpaper path value.
func Sanitise(raw string) string {
	out := trailingCommaPattern.ReplaceAllString(raw, "$1")
	out = wallpaperValuePattern.ReplaceAllStringFunc(out, func(match string) string {
		parts := wallpaperValuePattern.FindStringSubmatch(match)
		return parts[1] + strings.ReplaceAll(parts[2], `\`, `\\`) + parts[3]
	})
	return out
}

// ParseDocument decodes colors.json content into a palette document. If
// direct parsing fails it sanitises the content and retries once; a second
// failure logs the raw content for diagnostics and fails.
func ParseDocument(raw []byte, logger hclog.Logger) (*palette.Document, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var doc palette.Document
	if err := json.Unmarshal(raw, &doc); err == nil {
		return &doc, nil
	}

	repaired := Sanitise(string(raw))
	if err := json.Unmarshal([]byte(repaired), &doc); err != nil {
		logger.Debug("failed to parse colors.json", "contents", string(raw))
		return nil, palette.Errorf("pywal produced an invalid colors.json file: %w", err)
	}
	return &doc, nil
}
