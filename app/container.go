package app

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/soocke/yolo-annotator/config"
	"github.com/soocke/yolo-annotator/domain/catalog"
	"github.com/soocke/yolo-annotator/domain/session"
	"github.com/soocke/yolo-annotator/ui/images"
	"github.com/soocke/yolo-annotator/ui/presenter"
	"github.com/soocke/yolo-annotator/ui/theme"
	"github.com/soocke/yolo-annotator/ui/view"
)

// AppContainer assembles the catalog, the session navigator, the presenter and the root view.
type AppContainer struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Classes   *catalog.Catalog
	Navigator *session.Navigator
	RootView  *view.RootView
	Presenter *presenter.AnnotatorPresenter
}

// BuildContainer constructs all components. It creates the images root when
// missing and fails when the class catalog cannot be loaded. No Tk widgets are
// created here; see RootView.Build.
func BuildContainer(cfg *config.Config, logger zerolog.Logger) (*AppContainer, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := os.MkdirAll(cfg.ImagesRoot, 0o755); err != nil {
		return nil, fmt.Errorf("create images root: %w", err)
	}
	classes, err := catalog.Load(cfg.ClassesFile, theme.PaletteSize())
	if err != nil {
		return nil, err
	}
	logger.Info().Int("classes", classes.Len()).Str("path", cfg.ClassesFile).Msg("class catalog loaded")

	c := &AppContainer{Config: cfg, Logger: logger, Classes: classes}
	c.Navigator = session.NewNavigator(logger, cfg, classes)
	c.RootView = view.NewRootView(cfg, logger)
	c.Presenter = presenter.NewAnnotatorPresenter(c.Navigator, classes, c.RootView, images.Open, logger,
		cfg.CanvasMaxWidth, cfg.CanvasMaxHeight)
	return c, nil
}

// Handlers routes view intents to the presenter.
func (c *AppContainer) Handlers() view.Handlers {
	p := c.Presenter
	return view.Handlers{
		OnLoad:   p.LoadDataset,
		OnClass:  p.SelectClass,
		OnClick:  p.Click,
		OnMove:   p.Move,
		OnDelete: p.DeleteSelected,
		OnClear:  p.ClearAll,
		OnPrev:   p.Previous,
		OnNext:   p.Next,
		OnGoto:   p.Goto,
	}
}
