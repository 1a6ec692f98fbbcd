//go:build darwin

package wallpaper

import (
	"os/exec"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/yasbtint/internal/palette"
)

const desktopPictureScript = `tell application "Finder" to get POSIX path of (get desktop picture as alias)`

// current asks Finder for the desktop picture of the main display.
func current(_ hclog.Logger) (string, error) {
	out, err := exec.Command("osascript", "-e", desktopPictureScript).Output()
	if err != nil {
		return "", palette.Errorf("unable to read current wallpaper path from Finder: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
