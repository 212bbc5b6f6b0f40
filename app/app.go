package app

import (
	"fmt"

	"github.com/rs/zerolog"

	. "modernc.org/tk9.0"

	"github.com/soocke/yolo-annotator/config"
	"github.com/soocke/yolo-annotator/ui/view"
)

type app struct {
	title      string
	width      int
	height     int
	logger     zerolog.Logger
	container  *AppContainer
	saveFailed bool // a failed final save lets the next close request through
}

// NewApp builds the container. It fails when the class catalog is unusable,
// before any window is shown.
func NewApp(title string, cfg *config.Config, logger zerolog.Logger) (*app, error) {
	c, err := BuildContainer(cfg, logger)
	if err != nil {
		return nil, err
	}
	a := &app{title: title, logger: logger, container: c}
	a.width = c.Config.CanvasMaxWidth + 40
	a.height = c.Config.CanvasMaxHeight + 160
	return a, nil
}

// Start builds the window and runs the Tk event loop until the window closes.
func (a *app) Start() {
	App.WmTitle(a.title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", a.width, a.height))
	view.InitStyles()

	c := a.container
	c.RootView.Build(c.Classes.Names(), c.Handlers())
	c.RootView.SetStatus(fmt.Sprintf("Enter a directory under %s and press Load", c.Config.ImagesRoot), false)

	p := c.Presenter
	Bind(App, "<Left>", Command(p.Previous))
	Bind(App, "<Right>", Command(p.Next))
	Bind(App, "<Escape>", Command(p.Cancel))
	Bind(App, "<Key-s>", Command(p.Cancel))

	a.logger.Info().Str("images_root", c.Config.ImagesRoot).Str("output_root", c.Config.OutputRoot).Msg("annotator started")
	App.Wait()
}

// exitHandler flushes the active image before tearing the window down. When the
// save fails the window stays open once so the user sees the error.
func (a *app) exitHandler() {
	if err := a.container.Presenter.Close(); err != nil && !a.saveFailed {
		a.saveFailed = true
		a.container.RootView.SetStatus(fmt.Sprintf("save failed: %v (close again to discard)", err), true)
		a.logger.Error().Err(err).Msg("exit deferred, active image not saved")
		return
	}
	Destroy(App)
}
