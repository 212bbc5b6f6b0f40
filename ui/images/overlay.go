package images

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Overlay is a rectangle outline drawn over an image.
type Overlay struct {
	Rect  image.Rectangle
	Color color.Color
}

// OutlineWidth is the stroke width of box outlines, in pixels.
const OutlineWidth = 2

// Render returns a copy of base with every overlay outlined on top, in order.
// Rectangles are clipped to the image bounds.
func Render(base image.Image, overlays []Overlay) *image.NRGBA {
	if base == nil {
		return nil
	}
	dst := imaging.Clone(base)
	for _, o := range overlays {
		Outline(dst, o.Rect, o.Color, OutlineWidth)
	}
	return dst
}

// Outline strokes r onto dst with the given width.
func Outline(dst draw.Image, r image.Rectangle, c color.Color, width int) {
	r = r.Canon()
	if width < 1 {
		width = 1
	}
	src := image.NewUniform(c)
	bounds := dst.Bounds()
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width),
		image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y),
		image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		e = e.Intersect(r).Intersect(bounds)
		if e.Empty() {
			continue
		}
		draw.Draw(dst, e, src, image.Point{}, draw.Src)
	}
}
