// Package session drives an annotation session over one dataset: it resolves
// datasets, tracks the active image and persists its boxes on every move.
package session

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/soocke/yolo-annotator/config"
	"github.com/soocke/yolo-annotator/domain/annotation"
	"github.com/soocke/yolo-annotator/domain/catalog"
	"github.com/soocke/yolo-annotator/domain/labelfile"
)

// Navigator owns the dataset, the active image position and the live store.
// It is not safe for concurrent use.
type Navigator struct {
	logger     zerolog.Logger
	imagesRoot string
	outputRoot string
	exts       []string
	classes    *catalog.Catalog
	codec      labelfile.Codec

	state   State
	dataset *Dataset
	current int // 1-based, valid in StateDatasetLoaded
	store   *annotation.Store
}

// NewNavigator returns a navigator in StateNoDataset.
func NewNavigator(logger zerolog.Logger, cfg *config.Config, classes *catalog.Catalog) *Navigator {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	n := &Navigator{
		logger:     logger.With().Str("component", "session").Logger(),
		imagesRoot: cfg.ImagesRoot,
		outputRoot: cfg.OutputRoot,
		exts:       cfg.SupportedExtensions,
		classes:    classes,
		codec:      labelfile.Codec{NumClasses: classes.Len()},
	}
	n.store = annotation.NewStore(n.describe)
	return n
}

// describe renders the list row for a box.
func (n *Navigator) describe(b annotation.BoundingBox) string {
	return fmt.Sprintf("(%.2f, %.2f) -> (%.2f, %.2f) -> (%s)",
		b.Box.Min.X, b.Box.Min.Y, b.Box.Max.X, b.Box.Max.Y, n.classes.Name(b.ClassID))
}

// OpenDataset switches to the dataset at subpath. An open dataset is flushed
// first; if that flush fails nothing is discarded. On any error the previous
// state stays active.
func (n *Navigator) OpenDataset(subpath string) error {
	if n.state == StateDatasetLoaded {
		if err := n.flush(); err != nil {
			return err
		}
	}
	ds, err := Resolve(n.imagesRoot, n.outputRoot, subpath, n.exts)
	if err != nil {
		n.logger.Warn().Err(err).Str("dataset", subpath).Msg("dataset rejected")
		return err
	}
	if err := os.MkdirAll(ds.LabelDir, 0o755); err != nil {
		return fmt.Errorf("create label directory: %w", err)
	}
	boxes, err := n.codec.Load(labelfile.PathFor(ds.LabelDir, ds.Images[0]))
	if err != nil {
		n.logger.Error().Err(err).Str("dataset", ds.Rel).Msg("first image labels unreadable")
		return err
	}
	prev := n.state
	n.dataset = ds
	n.current = 1
	n.store.Replace(boxes)
	n.state = StateDatasetLoaded
	n.logger.Info().
		Int("images", len(ds.Images)).
		Str("dataset", ds.Rel).
		Str("labels", ds.LabelDir).
		Str("from", prev.String()).
		Msg("images loaded")
	return nil
}

// Next saves the active image and advances. At the last image it returns ErrLastImage.
func (n *Navigator) Next() error { return n.move(n.current+1, ErrLastImage) }

// Previous saves the active image and steps back. At the first image it returns ErrFirstImage.
func (n *Navigator) Previous() error { return n.move(n.current-1, ErrFirstImage) }

// Goto saves the active image and jumps to the 1-based index. An index outside
// the dataset returns ErrOutOfRange.
func (n *Navigator) Goto(index int) error { return n.move(index, ErrOutOfRange) }

// move saves before validating target so a rejected move still persists edits.
func (n *Navigator) move(target int, boundary error) error {
	if n.state != StateDatasetLoaded {
		return ErrNoDataset
	}
	if err := n.flush(); err != nil {
		return err
	}
	total := len(n.dataset.Images)
	if target < 1 || target > total {
		return fmt.Errorf("%w: %d not in [1, %d]", boundary, target, total)
	}
	boxes, err := n.codec.Load(labelfile.PathFor(n.dataset.LabelDir, n.dataset.Images[target-1]))
	if err != nil {
		n.logger.Error().Err(err).Int("index", target).Msg("labels unreadable, staying on current image")
		return err
	}
	n.current = target
	n.store.Replace(boxes)
	n.logger.Debug().Int("index", target).Int("boxes", len(boxes)).Msg("image activated")
	return nil
}

// Save flushes the active image. It is a no-op without a dataset.
func (n *Navigator) Save() error {
	if n.state != StateDatasetLoaded {
		return nil
	}
	return n.flush()
}

func (n *Navigator) flush() error {
	path := n.LabelPath()
	if err := n.codec.Save(path, n.store.All()); err != nil {
		n.logger.Error().Err(err).Str("path", path).Msg("save failed")
		return fmt.Errorf("save image %d: %w", n.current, err)
	}
	n.logger.Info().Int("index", n.current).Int("boxes", n.store.Len()).Msg("image saved")
	return nil
}

// AddBox appends b to the active image and returns its index. A class id the
// catalog cannot name is a programming error and panics.
func (n *Navigator) AddBox(b annotation.BoundingBox) (int, error) {
	if !n.classes.Contains(b.ClassID) {
		panic(fmt.Sprintf("session: class id %d outside catalog of %d", b.ClassID, n.classes.Len()))
	}
	if n.state != StateDatasetLoaded {
		return -1, ErrNoDataset
	}
	return n.store.Add(b), nil
}

// DeleteBoxAt removes the box at index; absent indices are ignored.
func (n *Navigator) DeleteBoxAt(index int) bool {
	_, ok := n.store.DeleteAt(index)
	return ok
}

// ClearBoxes removes every box from the active image.
func (n *Navigator) ClearBoxes() { n.store.Clear() }

// State returns the navigator state.
func (n *Navigator) State() State { return n.state }

// CurrentImage returns the active image path, or "" without a dataset.
func (n *Navigator) CurrentImage() string {
	if n.state != StateDatasetLoaded {
		return ""
	}
	return n.dataset.Images[n.current-1]
}

// LabelPath returns the label file of the active image, or "" without a dataset.
func (n *Navigator) LabelPath() string {
	if n.state != StateDatasetLoaded {
		return ""
	}
	return labelfile.PathFor(n.dataset.LabelDir, n.CurrentImage())
}

// Position returns the 1-based active index and the dataset size.
func (n *Navigator) Position() (index, total int) {
	if n.state != StateDatasetLoaded {
		return 0, 0
	}
	return n.current, len(n.dataset.Images)
}

// Boxes returns a copy of the active image's boxes.
func (n *Navigator) Boxes() []annotation.BoundingBox { return n.store.All() }

// Labels returns the list rows for Boxes, index aligned.
func (n *Navigator) Labels() []string { return n.store.Labels() }

// Dataset returns a copy of the open dataset.
func (n *Navigator) Dataset() (Dataset, bool) {
	if n.state != StateDatasetLoaded {
		return Dataset{}, false
	}
	ds := *n.dataset
	ds.Images = append([]string(nil), n.dataset.Images...)
	return ds, true
}

// Classes returns the catalog the navigator validates against.
func (n *Navigator) Classes() *catalog.Catalog { return n.classes }
