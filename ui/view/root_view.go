package view

import (
	"image"

	"github.com/rs/zerolog"

	"github.com/soocke/yolo-annotator/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers are the user intents the root view forwards. Nil handlers are ignored.
type Handlers struct {
	OnLoad   func(subpath string)
	OnClass  func(name string)
	OnClick  func(x, y int)
	OnMove   func(x, y int)
	OnDelete func(index int)
	OnClear  func()
	OnPrev   func()
	OnNext   func()
	OnGoto   func(text string)
}

// RootView composes the top-level application layout and wires UI callbacks.
// It satisfies presenter.AnnotatorView.
type RootView struct {
	cfg    *config.Config
	logger zerolog.Logger

	// Subviews
	Toolbar *Toolbar
	Image   ImagePanel
	Boxes   *BoxPanel
	Nav     *NavBar

	StatusLabel *LabelWidget
}

func NewRootView(cfg *config.Config, logger zerolog.Logger) *RootView {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &RootView{cfg: cfg, logger: logger.With().Str("component", "view").Logger()}
}

// Build constructs the layout. classes fills the class selector in id order.
func (rv *RootView) Build(classes []string, h Handlers) {
	if rv == nil {
		return
	}
	noop := func() {}
	if h.OnPrev == nil {
		h.OnPrev = noop
	}
	if h.OnNext == nil {
		h.OnNext = noop
	}
	// Row 0: dataset + class, row 1: image, row 2: boxes, row 3: navigation, row 4: status
	rv.Toolbar = NewToolbar(0, classes, h.OnLoad, h.OnClass)
	rv.Image = NewImagePanel(1, 4, rv.cfg.CanvasMinWidth, rv.cfg.CanvasMinHeight, h.OnClick, h.OnMove)
	rv.Boxes = NewBoxPanel(2, h.OnDelete, h.OnClear)
	rv.Nav = NewNavBar(3, h.OnPrev, h.OnNext, h.OnGoto)
	rv.StatusLabel = Label(Txt(""), Anchor("w"), Foreground(statusColor(false)))
	Grid(rv.StatusLabel, Row(4), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
}

// ShowImage replaces the image panel content.
func (rv *RootView) ShowImage(img image.Image) {
	if rv != nil && rv.Image != nil {
		rv.Image.Show(img)
	}
}

// SetBoxes replaces the box list.
func (rv *RootView) SetBoxes(items, colors []string) {
	if rv != nil && rv.Boxes != nil {
		rv.Boxes.Set(items, colors)
	}
}

// SetProgress updates the progress readout.
func (rv *RootView) SetProgress(text string) {
	if rv != nil && rv.Nav != nil {
		rv.Nav.SetProgress(text)
	}
}

// SetCursor updates the pointer readout.
func (rv *RootView) SetCursor(text string) {
	if rv != nil && rv.Nav != nil {
		rv.Nav.SetCursor(text)
	}
}

// SetStatus shows a message in the status line, red for errors.
func (rv *RootView) SetStatus(text string, isError bool) {
	if rv == nil || rv.StatusLabel == nil {
		return
	}
	rv.StatusLabel.Configure(Txt(text), Foreground(statusColor(isError)))
	if text != "" {
		rv.logger.Debug().Bool("error", isError).Str("status", text).Msg("status")
	}
}
