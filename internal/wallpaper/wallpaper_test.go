package wallpaper

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestStripFileScheme(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain path untouched", "/home/user/wall.jpg", "/home/user/wall.jpg"},
		{"file uri", "file:///home/user/wall.jpg", "/home/user/wall.jpg"},
		{"percent-encoded uri", "file:///home/user/my%20wall.jpg", "/home/user/my wall.jpg"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFileScheme(tt.input); got != tt.want {
				t.Errorf("stripFileScheme(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTrimSettingValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single quoted with newline", "'file:///home/user/wall.jpg'\n", "file:///home/user/wall.jpg"},
		{"double quoted", `"/tmp/a.png"`, "/tmp/a.png"},
		{"unquoted", "  /tmp/a.png  ", "/tmp/a.png"},
		{"empty quotes", "''", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trimSettingValue(tt.input); got != tt.want {
				t.Errorf("trimSettingValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestProbe(t *testing.T) {
	dir := t.TempDir()

	// A real (tiny) PNG should probe cleanly.
	pngPath := filepath.Join(dir, "wall.png")
	file, err := os.Create(pngPath)
	if err != nil {
		t.Fatalf("creating test image: %v", err)
	}
	if err := png.Encode(file, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	file.Close()

	format, err := Probe(pngPath)
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
	if format != "png" {
		t.Errorf("Probe() format = %s, want png", format)
	}
}

func TestProbeFailures(t *testing.T) {
	dir := t.TempDir()

	if _, err := Probe(filepath.Join(dir, "missing.jpg")); err == nil {
		t.Error("Probe() on missing file should fail")
	}

	if _, err := Probe(dir); err == nil {
		t.Error("Probe() on a directory should fail")
	}

	garbage := filepath.Join(dir, "not-an-image.jpg")
	if err := os.WriteFile(garbage, []byte("definitely not pixels"), 0644); err != nil {
		t.Fatalf("writing garbage file: %v", err)
	}
	if _, err := Probe(garbage); err == nil {
		t.Error("Probe() on a non-image should fail")
	}
}
