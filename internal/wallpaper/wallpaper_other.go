//go:build !windows && !linux && !darwin

package wallpaper

import (
	"runtime"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/yasbtint/internal/palette"
)

func current(_ hclog.Logger) (string, error) {
	return "", palette.Errorf("wallpaper detection is not supported on %s; pass --wallpaper explicitly", runtime.GOOS)
}
