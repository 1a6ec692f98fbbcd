package pywal

import (
	"strings"
	"testing"
)

func TestSanitiseTrailingCommas(t *testing.T) {
	raw := `{"colors": {"color1": "#202020",}, "special": {"background": "#121212",},}`

	doc, err := ParseDocument([]byte(raw), nil)
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if doc.Colors["color1"] != "#202020" {
		t.Errorf("color1 = %s, want #202020", doc.Colors["color1"])
	}
	if doc.Special["background"] != "#121212" {
		t.Errorf("background = %s, want #121212", doc.Special["background"])
	}
}

func TestSanitiseWallpaperBackslashes(t *testing.T) {
	raw := `{"wallpaper": "C:\Users\john\Pictures\wall.jpg", "colors": {"color4": "#3a6ea5"}}`

	doc, err := ParseDocument([]byte(raw), nil)
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if doc.Wallpaper != `C:\Users\john\Pictures\wall.jpg` {
		t.Errorf("wallpaper = %q", doc.Wallpaper)
	}
}

func TestSanitiseCombinedRepairs(t *testing.T) {
	raw := `{
	"wallpaper": "C:\wallpapers\blue.png",
	"special": {"background": "#121212", "foreground": "#eeeeee",},
	"colors": {"color1": "#202020", "color4": "#3a6ea5",},
}`

	doc, err := ParseDocument([]byte(raw), nil)
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if doc.Wallpaper != `C:\wallpapers\blue.png` {
		t.Errorf("wallpaper = %q", doc.Wallpaper)
	}
	if len(doc.Colors) != 2 {
		t.Errorf("len(Colors) = %d, want 2", len(doc.Colors))
	}
}

func TestSanitiseLeavesValidJSONAlone(t *testing.T) {
	raw := `{"colors": {"color1": "#202020"}, "special": {"background": "#121212"}}`
	if got := Sanitise(raw); got != raw {
		t.Errorf("Sanitise() changed already-valid content:\n%s", got)
	}
}

func TestParseDocumentUnrepairable(t *testing.T) {
	_, err := ParseDocument([]byte(`this is not json`), nil)
	if err == nil {
		t.Fatal("ParseDocument() should fail on unrepairable content")
	}
	if !strings.Contains(err.Error(), "invalid colors.json") {
		t.Errorf("error = %v, want mention of invalid colors.json", err)
	}
}

func TestParseDocumentWrongShape(t *testing.T) {
	if _, err := ParseDocument([]byte(`["#112233", "#445566"]`), nil); err == nil {
		t.Fatal("ParseDocument() should reject a non-object palette")
	}
}
