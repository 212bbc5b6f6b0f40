package theme

import (
	"image/color"
	"testing"
)

func TestPaletteSize(t *testing.T) {
	if PaletteSize() != 33 {
		t.Fatalf("expected 33 class colours, got %d", PaletteSize())
	}
}

func TestParseHex(t *testing.T) {
	c, ok := ParseHex("#ff8c00")
	if !ok || c != (color.RGBA{R: 0xff, G: 0x8c, B: 0x00, A: 0xff}) {
		t.Fatalf("unexpected colour %v ok=%v", c, ok)
	}
	for _, bad := range []string{"", "ff8c00", "#ff8c0", "#gg0000"} {
		if _, ok := ParseHex(bad); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestClassColor_Wraps(t *testing.T) {
	if ClassColor(0) != ClassColor(PaletteSize()) {
		t.Fatalf("expected wrap-around at palette size")
	}
	if ClassColor(-1) != ClassColors[len(ClassColors)-1] {
		t.Fatalf("expected negative ids to wrap from the end")
	}
	for i := range ClassColors {
		if _, ok := ParseHex(ClassColors[i]); !ok {
			t.Fatalf("palette entry %d malformed: %q", i, ClassColors[i])
		}
	}
}
