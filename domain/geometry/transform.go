// Package geometry converts between the coordinate representations used by the
// annotator: normalized corner boxes, YOLO center/extent records and pixel rectangles.
package geometry

import (
	"image"
	"math"
)

// Point is a coordinate pair. Normalized points lie in [0,1] relative to the image size.
type Point struct {
	X float64
	Y float64
}

// Box is a top-left / bottom-right box in normalized coordinates.
type Box struct {
	Min Point
	Max Point
}

// YOLO is a center/extent box, each value relative to the image dimensions.
type YOLO struct {
	CenterX float64
	CenterY float64
	Width   float64
	Height  float64
}

// Rect is a corner box in pixel space. Values stay fractional until Image is called.
type Rect struct {
	X1, Y1 float64
	X2, Y2 float64
}

// BoxFromCorners builds a box from two arbitrary drag endpoints.
func BoxFromCorners(a, b Point) Box {
	return Box{
		Min: Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

// ToYOLO converts a corner box to center/extent form. Values are not clamped.
func ToYOLO(b Box) YOLO {
	w := b.Max.X - b.Min.X
	h := b.Max.Y - b.Min.Y
	return YOLO{
		CenterX: b.Min.X + w/2,
		CenterY: b.Min.Y + h/2,
		Width:   w,
		Height:  h,
	}
}

// FromYOLO converts a center/extent record back to a corner box.
func FromYOLO(y YOLO) Box {
	minX := y.CenterX - y.Width/2
	minY := y.CenterY - y.Height/2
	return Box{
		Min: Point{X: minX, Y: minY},
		Max: Point{X: minX + y.Width, Y: minY + y.Height},
	}
}

// NormalizedToPixel scales a normalized box to an image of width x height pixels.
func NormalizedToPixel(b Box, width, height int) Rect {
	w, h := float64(width), float64(height)
	return Rect{
		X1: b.Min.X * w,
		Y1: b.Min.Y * h,
		X2: b.Max.X * w,
		Y2: b.Max.Y * h,
	}
}

// PixelToNormalized maps a pixel position on a width x height image to normalized space.
// A zero dimension yields zero on that axis.
func PixelToNormalized(x, y, width, height int) Point {
	var p Point
	if width > 0 {
		p.X = float64(x) / float64(width)
	}
	if height > 0 {
		p.Y = float64(y) / float64(height)
	}
	return p
}

// Image rounds the rectangle to integer pixel bounds.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Round(r.X1)), int(math.Round(r.Y1)),
		int(math.Round(r.X2)), int(math.Round(r.Y2)),
	)
}
