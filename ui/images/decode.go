package images

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	// Decoders beyond the jpeg/png/gif/bmp/tiff set imaging registers.
	_ "golang.org/x/image/webp"
)

// Open decodes the image at path, applying any EXIF orientation so pixel
// coordinates match what the user sees.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}
