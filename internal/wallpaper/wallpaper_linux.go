//go:build linux

package wallpaper

import (
	"os/exec"
	"strings"

	godbus "github.com/godbus/dbus/v5"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/yasbtint/internal/palette"
)

// plasmaWallpaperScript asks plasmashell for the wallpaper image of the
// first desktop containment.
const plasmaWallpaperScript = `var d = desktops()[0];
d.currentConfigGroup = ["Wallpaper", "org.kde.image", "General"];
print(d.readConfig("Image"));`

// current tries GNOME's gsettings first, then KDE Plasma over the session
// bus.
func current(logger hclog.Logger) (string, error) {
	path, err := gnomeWallpaper()
	if err == nil {
		return path, nil
	}
	logger.Debug("gnome wallpaper lookup failed", "error", err)

	path, err = plasmaWallpaper()
	if err == nil {
		return path, nil
	}
	logger.Debug("plasma wallpaper lookup failed", "error", err)

	return "", palette.Errorf("unable to determine the current wallpaper from GNOME or KDE; pass --wallpaper explicitly")
}

// gnomeWallpaper reads the background keys from gsettings, preferring the
// dark-mode variant.
func gnomeWallpaper() (string, error) {
	for _, key := range []string{"picture-uri-dark", "picture-uri"} {
		out, err := exec.Command("gsettings", "get", "org.gnome.desktop.background", key).Output()
		if err != nil {
			continue
		}
		if path := stripFileScheme(trimSettingValue(string(out))); path != "" {
			return path, nil
		}
	}
	return "", palette.Errorf("gsettings reported no wallpaper image")
}

// plasmaWallpaper queries plasmashell's scripting interface over DBus.
func plasmaWallpaper() (string, error) {
	conn, err := godbus.SessionBus()
	if err != nil {
		return "", palette.Errorf("connect session bus: %w", err)
	}

	obj := conn.Object("org.kde.plasmashell", "/PlasmaShell")
	var out string
	if err := obj.Call("org.kde.PlasmaShell.evaluateScript", 0, plasmaWallpaperScript).Store(&out); err != nil {
		return "", palette.Errorf("plasmashell query failed: %w", err)
	}

	path := stripFileScheme(strings.TrimSpace(out))
	if path == "" {
		return "", palette.Errorf("plasma reported no wallpaper image")
	}
	return path, nil
}
