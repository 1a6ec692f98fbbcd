package wallpaper

import (
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/jmylchreest/yasbtint/internal/palette"
)

// Probe verifies that the wallpaper is a decodable image and returns the
// detected format. Catching a corrupt or unsupported file here gives a clear
// error instead of an opaque pywal failure later.
func Probe(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", palette.Errorf("wallpaper image not found: %s", path)
		}
		return "", palette.Errorf("unable to access wallpaper image %s: %w", path, err)
	}
	if info.IsDir() {
		return "", palette.Errorf("wallpaper path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - platform-reported wallpaper path, intended to be read
	if err != nil {
		return "", palette.Errorf("unable to open wallpaper image: %w", err)
	}
	defer file.Close()

	_, format, err := image.DecodeConfig(file)
	if err != nil {
		return "", palette.Errorf("unsupported or invalid wallpaper image %s: %w", path, err)
	}
	return format, nil
}
