//go:build windows

package wallpaper

import (
	"unsafe"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sys/windows"

	"github.com/jmylchreest/yasbtint/internal/palette"
)

const (
	spiGetDeskWallpaper = 0x0073
	maxPath             = 260
)

var (
	user32                    = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersInfoW = user32.NewProc("SystemParametersInfoW")
)

// current fetches the active wallpaper path via SystemParametersInfoW.
func current(logger hclog.Logger) (string, error) {
	buf := make([]uint16, maxPath)
	ret, _, _ := procSystemParametersInfoW.Call(
		uintptr(spiGetDeskWallpaper),
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(&buf[0])),
		0,
	)
	if ret == 0 {
		return "", palette.Errorf("unable to read current wallpaper path from Windows")
	}
	return windows.UTF16ToString(buf), nil
}
