package presenter

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/soocke/yolo-annotator/domain/annotation"
	"github.com/soocke/yolo-annotator/domain/catalog"
	"github.com/soocke/yolo-annotator/domain/geometry"
	"github.com/soocke/yolo-annotator/domain/session"
	"github.com/soocke/yolo-annotator/ui/images"
	"github.com/soocke/yolo-annotator/ui/model"
	"github.com/soocke/yolo-annotator/ui/theme"
)

// Navigator narrows the session navigator to what the presenter drives.
type Navigator interface {
	OpenDataset(subpath string) error
	Next() error
	Previous() error
	Goto(index int) error
	Save() error
	AddBox(b annotation.BoundingBox) (int, error)
	DeleteBoxAt(index int) bool
	ClearBoxes()
	CurrentImage() string
	Position() (index, total int)
	Boxes() []annotation.BoundingBox
	Labels() []string
}

// AnnotatorView renders presenter output.
type AnnotatorView interface {
	ShowImage(img image.Image)
	// SetBoxes replaces the box list; colors[i] belongs to items[i].
	SetBoxes(items []string, colors []string)
	SetProgress(text string)
	SetStatus(text string, isError bool)
	SetCursor(text string)
}

// ImageLoader decodes an image file.
type ImageLoader func(path string) (image.Image, error)

// AnnotatorPresenter translates UI intents into navigator operations and pushes
// the resulting state to the view. Pixel coordinates it receives are relative
// to the displayed (fitted) image.
type AnnotatorPresenter struct {
	nav     Navigator
	classes *catalog.Catalog
	view    AnnotatorView
	load    ImageLoader
	logger  zerolog.Logger

	drag  *model.DragModel
	class *model.ClassModel

	maxW, maxH int
	base       image.Image // active image fitted for display
}

// NewAnnotatorPresenter returns a presenter. A nil loader uses images.Open.
// maxW/maxH bound the displayed image size.
func NewAnnotatorPresenter(nav Navigator, classes *catalog.Catalog, view AnnotatorView, load ImageLoader, logger zerolog.Logger, maxW, maxH int) *AnnotatorPresenter {
	if load == nil {
		load = images.Open
	}
	return &AnnotatorPresenter{
		nav:     nav,
		classes: classes,
		view:    view,
		load:    load,
		logger:  logger.With().Str("component", "presenter").Logger(),
		drag:    model.NewDragModel(),
		class:   &model.ClassModel{},
		maxW:    maxW,
		maxH:    maxH,
	}
}

// ImageSize returns the displayed image size, zero without an image.
func (p *AnnotatorPresenter) ImageSize() (w, h int) {
	if p == nil || p.base == nil {
		return 0, 0
	}
	b := p.base.Bounds()
	return b.Dx(), b.Dy()
}

// CurrentClass returns the class new boxes are drawn with.
func (p *AnnotatorPresenter) CurrentClass() int { return p.class.Current() }

// LoadDataset opens the dataset directory typed or picked by the user.
func (p *AnnotatorPresenter) LoadDataset(subpath string) {
	if p == nil || p.nav == nil || p.view == nil {
		return
	}
	subpath = strings.TrimSpace(subpath)
	if err := p.nav.OpenDataset(subpath); err != nil {
		p.report(err)
		return
	}
	p.drag.Cancel()
	p.refresh()
	_, total := p.nav.Position()
	p.view.SetStatus(fmt.Sprintf("%d images loaded from %s", total, subpath), false)
}

// Next saves and advances to the next image.
func (p *AnnotatorPresenter) Next() {
	if p == nil || p.nav == nil || p.view == nil {
		return
	}
	p.navigate(p.nav.Next())
}

// Previous saves and steps back one image.
func (p *AnnotatorPresenter) Previous() {
	if p == nil || p.nav == nil || p.view == nil {
		return
	}
	p.navigate(p.nav.Previous())
}

// Goto saves and jumps to the image number typed by the user.
func (p *AnnotatorPresenter) Goto(text string) {
	if p == nil || p.nav == nil || p.view == nil {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		p.view.SetStatus(fmt.Sprintf("%q is not an image number", strings.TrimSpace(text)), true)
		return
	}
	p.navigate(p.nav.Goto(n))
}

func (p *AnnotatorPresenter) navigate(err error) {
	if err != nil {
		p.report(err)
		return
	}
	p.drag.Cancel()
	p.refresh()
	p.view.SetStatus("", false)
}

// Click handles a left click on the image panel.
func (p *AnnotatorPresenter) Click(x, y int) {
	if p == nil || p.base == nil || p.nav == nil || p.view == nil {
		return
	}
	w, h := p.ImageSize()
	from, to, done := p.drag.Click(clampPoint(x, y, w, h))
	if !done {
		p.render()
		return
	}
	box := geometry.BoxFromCorners(
		geometry.PixelToNormalized(from.X, from.Y, w, h),
		geometry.PixelToNormalized(to.X, to.Y, w, h),
	)
	if _, err := p.nav.AddBox(annotation.BoundingBox{ClassID: p.class.Current(), Box: box}); err != nil {
		p.report(err)
		return
	}
	p.refreshBoxes()
}

// Move handles pointer motion over the image panel.
func (p *AnnotatorPresenter) Move(x, y int) {
	if p == nil || p.base == nil || p.view == nil {
		return
	}
	w, h := p.ImageSize()
	pt := clampPoint(x, y, w, h)
	p.drag.Move(pt)
	n := geometry.PixelToNormalized(x, y, w, h)
	p.view.SetCursor(fmt.Sprintf("x: %.2f, y: %.2f", n.X, n.Y))
	if _, pending := p.drag.Pending(); pending {
		p.render()
	}
}

// Cancel drops a half-drawn box.
func (p *AnnotatorPresenter) Cancel() {
	if p == nil || p.view == nil {
		return
	}
	if p.drag.Cancel() {
		p.render()
	}
}

// DeleteSelected removes the box at index. A negative index means nothing is selected.
func (p *AnnotatorPresenter) DeleteSelected(index int) {
	if p == nil || p.nav == nil || p.view == nil {
		return
	}
	if !p.nav.DeleteBoxAt(index) {
		return
	}
	p.refreshBoxes()
}

// ClearAll removes every box of the active image.
func (p *AnnotatorPresenter) ClearAll() {
	if p == nil || p.nav == nil || p.view == nil {
		return
	}
	p.nav.ClearBoxes()
	p.refreshBoxes()
}

// SelectClass switches the class used for new boxes.
func (p *AnnotatorPresenter) SelectClass(name string) {
	if p == nil || p.classes == nil || p.view == nil {
		return
	}
	id, err := p.classes.ID(name)
	if err != nil {
		p.report(err)
		return
	}
	p.class.Set(id)
	if _, pending := p.drag.Pending(); pending {
		p.render()
	}
}

// Close flushes the active image before the window goes away.
func (p *AnnotatorPresenter) Close() error {
	if p == nil || p.nav == nil {
		return nil
	}
	if err := p.nav.Save(); err != nil {
		p.logger.Error().Err(err).Msg("final save failed")
		return err
	}
	return nil
}

// refresh reloads the active image and everything drawn over it.
func (p *AnnotatorPresenter) refresh() {
	index, total := p.nav.Position()
	p.view.SetProgress(fmt.Sprintf("%04d/%04d", index, total))
	path := p.nav.CurrentImage()
	img, err := p.load(path)
	if err != nil {
		p.logger.Error().Err(err).Str("path", path).Msg("image load failed")
		p.base = nil
		p.view.SetStatus(err.Error(), true)
		p.view.ShowImage(nil)
		p.pushList()
		return
	}
	p.base = images.ScaleToFit(img, p.maxW, p.maxH)
	p.refreshBoxes()
}

// refreshBoxes pushes the list rows and redraws the overlays. Rows and shapes are
// derived from the same navigator snapshot so their indices match.
func (p *AnnotatorPresenter) refreshBoxes() {
	p.pushList()
	p.render()
}

func (p *AnnotatorPresenter) pushList() {
	labels := p.nav.Labels()
	boxes := p.nav.Boxes()
	colors := make([]string, len(boxes))
	for i, b := range boxes {
		colors[i] = theme.ClassColor(b.ClassID)
	}
	p.view.SetBoxes(labels, colors)
}

func (p *AnnotatorPresenter) render() {
	if p.base == nil {
		return
	}
	w, h := p.ImageSize()
	boxes := p.nav.Boxes()
	overlays := make([]images.Overlay, 0, len(boxes)+1)
	for _, b := range boxes {
		overlays = append(overlays, images.Overlay{
			Rect:  geometry.NormalizedToPixel(b.Box, w, h).Image(),
			Color: theme.ClassRGBA(b.ClassID),
		})
	}
	if r, pending := p.drag.Pending(); pending {
		overlays = append(overlays, images.Overlay{Rect: r, Color: theme.ClassRGBA(p.class.Current())})
	}
	p.view.ShowImage(images.Render(p.base, overlays))
}

// report shows err in the status line. Boundaries are informational.
func (p *AnnotatorPresenter) report(err error) {
	if session.IsBoundary(err) {
		msg := err.Error()
		switch {
		case errors.Is(err, session.ErrLastImage):
			msg = session.ErrLastImage.Error()
		case errors.Is(err, session.ErrFirstImage):
			msg = session.ErrFirstImage.Error()
		}
		p.logger.Info().Str("reason", msg).Msg("navigation boundary")
		p.view.SetStatus(msg, false)
		return
	}
	p.logger.Warn().Err(err).Msg("operation failed")
	p.view.SetStatus(err.Error(), true)
}

func clampPoint(x, y, w, h int) image.Point {
	return image.Pt(clamp(x, 0, w), clamp(y, 0, h))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
