package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// ScaleToFit returns src scaled down so that it fits within maxW x maxH, preserving
// aspect ratio. If the source already fits, the original is returned.
func ScaleToFit(src image.Image, maxW, maxH int) image.Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return src
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	return imaging.Fit(src, maxW, maxH, imaging.Lanczos)
}

// PadTo returns src placed at the top-left of a minW x minH backdrop when it is
// smaller than that in either dimension. Pixel coordinates of src are unchanged.
func PadTo(src image.Image, minW, minH int, bg color.Color) image.Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w, h := max(b.Dx(), minW), max(b.Dy(), minH)
	if w == b.Dx() && h == b.Dy() {
		return src
	}
	return imaging.Paste(imaging.New(w, h, bg), src, image.Point{})
}
