package view

import (
	"image"

	"github.com/soocke/yolo-annotator/ui/images"
	"github.com/soocke/yolo-annotator/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ImagePanel shows the active image with its box overlays and reports pointer
// input in image pixel coordinates. It never shrinks below its minimum size.
type ImagePanel interface {
	Show(img image.Image)
}

type imagePanel struct {
	label      *LabelWidget
	photo      *Img // current Tk photo, deleted when replaced
	minW, minH int
}

// NewImagePanel creates the panel label and grids it at row spanning all columns.
// onClick and onMove receive coordinates relative to the image's top-left corner.
func NewImagePanel(row, columns, minW, minH int, onClick, onMove func(x, y int)) ImagePanel {
	p := &imagePanel{minW: minW, minH: minH}
	p.photo = NewPhoto(Data(p.encode(nil)))
	p.label = Label(Image(p.photo), Anchor("nw"), Borderwidth(0), Background(ColorSurface))
	Grid(p.label, Row(row), Column(0), Columnspan(columns), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	if onClick != nil {
		Bind(p.label, "<Button-1>", Command(func(e *Event) { onClick(e.X, e.Y) }))
	}
	if onMove != nil {
		Bind(p.label, "<Motion>", Command(func(e *Event) { onMove(e.X, e.Y) }))
	}
	return p
}

// Show replaces the displayed image. A nil image clears the panel.
func (p *imagePanel) Show(img image.Image) {
	if p == nil || p.label == nil {
		return
	}
	if p.photo != nil {
		p.photo.Delete()
	}
	p.photo = NewPhoto(Data(p.encode(img)))
	p.label.Configure(Image(p.photo))
}

func (p *imagePanel) encode(img image.Image) []byte {
	bg, _ := theme.ParseHex(ColorSurface)
	if img == nil {
		img = image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	return images.EncodePNG(images.PadTo(img, p.minW, p.minH, bg))
}
