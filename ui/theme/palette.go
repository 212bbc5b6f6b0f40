// Package theme defines the class colour palette shared by the image overlay
// and the Tk widgets. The palette length bounds the class catalog.
package theme

import (
	"image/color"
	"strconv"
)

// ClassColors lists one colour per class id, in id order.
var ClassColors = []string{
	"#8fbc8f", // darkseagreen
	"#ff8c00", // darkorange
	"#00ced1", // darkturquoise
	"#006400", // darkgreen
	"#9400d3", // darkviolet
	"#a9a9a9", // darkgray
	"#8b008b", // darkmagenta
	"#00008b", // darkblue
	"#bdb76b", // darkkhaki
	"#008b8b", // darkcyan
	"#8b0000", // darkred
	"#e9967a", // darksalmon
	"#b8860b", // darkgoldenrod
	"#a9a9a9", // darkgrey
	"#483d8b", // darkslateblue
	"#9932cc", // darkorchid
	"#87ceeb", // skyblue
	"#ffff00", // yellow
	"#ffa500", // orange
	"#ff0000", // red
	"#ffc0cb", // pink
	"#ee82ee", // violet
	"#008000", // green
	"#a52a2a", // brown
	"#ffd700", // gold
	"#808000", // olive
	"#800000", // maroon
	"#0000ff", // blue
	"#00ffff", // cyan
	"#000000", // black
	"#6b8e23", // olivedrab
	"#e0ffff", // lightcyan
	"#c0c0c0", // silver
}

// PaletteSize is the largest catalog the UI can colour.
func PaletteSize() int { return len(ClassColors) }

// ClassColor returns the hex colour of class id. Ids outside the palette wrap.
func ClassColor(id int) string {
	n := len(ClassColors)
	return ClassColors[((id%n)+n)%n]
}

// ClassRGBA returns ClassColor(id) as an opaque colour.
func ClassRGBA(id int) color.RGBA {
	c, _ := ParseHex(ClassColor(id))
	return c
}

// ParseHex parses "#rrggbb". Malformed input yields opaque black and false.
func ParseHex(s string) (color.RGBA, bool) {
	black := color.RGBA{A: 0xff}
	if len(s) != 7 || s[0] != '#' {
		return black, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return black, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}
