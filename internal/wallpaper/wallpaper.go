// Package wallpaper locates the current desktop wallpaper through the
// platform's native facilities.
package wallpaper

import (
	"net/url"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/yasbtint/internal/palette"
)

// Current returns the filesystem path of the active desktop wallpaper.
// The platform-specific lookup lives behind build tags; the returned path is
// verified to exist on disk.
func Current(logger hclog.Logger) (string, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	path, err := current(logger)
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", palette.Errorf("platform reported an empty wallpaper path")
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", palette.Errorf("wallpaper path does not exist: %s", path)
		}
		return "", palette.Errorf("unable to access wallpaper path %s: %w", path, err)
	}

	logger.Debug("detected wallpaper", "path", path)
	return path, nil
}

// stripFileScheme converts a file:// URI into a plain filesystem path,
// undoing percent-encoding where possible.
func stripFileScheme(raw string) string {
	if !strings.HasPrefix(raw, "file://") {
		return raw
	}
	trimmed := strings.TrimPrefix(raw, "file://")
	if unescaped, err := url.PathUnescape(trimmed); err == nil {
		return unescaped
	}
	return trimmed
}

// trimSettingValue strips the quoting gsettings wraps string values in.
func trimSettingValue(raw string) string {
	return strings.Trim(strings.TrimSpace(raw), `'"`)
}
