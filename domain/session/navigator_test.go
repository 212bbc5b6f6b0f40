package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/soocke/yolo-annotator/config"
	"github.com/soocke/yolo-annotator/domain/annotation"
	"github.com/soocke/yolo-annotator/domain/catalog"
	"github.com/soocke/yolo-annotator/domain/geometry"
	"github.com/soocke/yolo-annotator/domain/labelfile"
)

// newTestNavigator builds a navigator over a fresh layout holding set/<names>.
func newTestNavigator(t *testing.T, names ...string) (*Navigator, string, string) {
	t.Helper()
	images, labels := newLayout(t)
	touch(t, filepath.Join(images, "set"), names...)
	cfg := config.DefaultConfig()
	cfg.ImagesRoot = images
	cfg.OutputRoot = labels
	classes, err := catalog.New([]string{"cat", "dog"}, 0)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return NewNavigator(zerolog.Nop(), cfg, classes), images, labels
}

func sampleBox(class int) annotation.BoundingBox {
	return annotation.BoundingBox{ClassID: class, Box: geometry.Box{
		Min: geometry.Point{X: 0.125, Y: 0.25},
		Max: geometry.Point{X: 0.5, Y: 0.375},
	}}
}

func TestNavigator_InitialState(t *testing.T) {
	n, _, _ := newTestNavigator(t, "a.jpg")
	if n.State() != StateNoDataset {
		t.Fatalf("expected no-dataset, got %v", n.State())
	}
	if n.CurrentImage() != "" || n.LabelPath() != "" {
		t.Fatalf("expected empty accessors without dataset")
	}
	if i, total := n.Position(); i != 0 || total != 0 {
		t.Fatalf("unexpected position %d/%d", i, total)
	}
	if err := n.Next(); !errors.Is(err, ErrNoDataset) {
		t.Fatalf("expected ErrNoDataset, got %v", err)
	}
	if _, err := n.AddBox(sampleBox(0)); !errors.Is(err, ErrNoDataset) {
		t.Fatalf("expected ErrNoDataset from AddBox, got %v", err)
	}
	if err := n.Save(); err != nil {
		t.Fatalf("Save without dataset should be a no-op: %v", err)
	}
}

func TestNavigator_OpenDatasetCreatesLabelDir(t *testing.T) {
	n, _, labels := newTestNavigator(t, "b.jpg", "a.jpg")
	if err := n.OpenDataset("set"); err != nil {
		t.Fatalf("open: %v", err)
	}
	if n.State() != StateDatasetLoaded {
		t.Fatalf("expected dataset-loaded, got %v", n.State())
	}
	if fi, err := os.Stat(filepath.Join(labels, "set")); err != nil || !fi.IsDir() {
		t.Fatalf("label dir not created: %v", err)
	}
	if i, total := n.Position(); i != 1 || total != 2 {
		t.Fatalf("unexpected position %d/%d", i, total)
	}
	if filepath.Base(n.CurrentImage()) != "a.jpg" {
		t.Fatalf("expected sorted first image a.jpg, got %s", n.CurrentImage())
	}
}

func TestNavigator_OpenDatasetHydratesFirstImage(t *testing.T) {
	n, _, labels := newTestNavigator(t, "a.jpg")
	touch(t, filepath.Join(labels, "set"))
	if err := labelfile.Save(filepath.Join(labels, "set", "a.txt"), []annotation.BoundingBox{sampleBox(1)}); err != nil {
		t.Fatalf("seed labels: %v", err)
	}
	if err := n.OpenDataset("set"); err != nil {
		t.Fatalf("open: %v", err)
	}
	boxes := n.Boxes()
	if len(boxes) != 1 || boxes[0].ClassID != 1 {
		t.Fatalf("expected hydrated box, got %+v", boxes)
	}
	if labels := n.Labels(); len(labels) != 1 || labels[0] != "(0.12, 0.25) -> (0.50, 0.38) -> (dog)" {
		t.Fatalf("unexpected labels %q", labels)
	}
}

func TestNavigator_InvalidOpenKeepsState(t *testing.T) {
	n, _, _ := newTestNavigator(t, "a.jpg", "b.jpg")
	if err := n.OpenDataset("../../etc"); err == nil {
		t.Fatalf("expected escape to be rejected")
	} else {
		expectInvalid(t, err)
	}
	if n.State() != StateNoDataset {
		t.Fatalf("state changed after rejected open")
	}

	if err := n.OpenDataset("set"); err != nil {
		t.Fatalf("open: %v", err)
	}
	_ = n.Goto(2)
	if err := n.OpenDataset("missing"); err == nil {
		t.Fatalf("expected missing dataset to be rejected")
	}
	if i, _ := n.Position(); i != 2 || n.State() != StateDatasetLoaded {
		t.Fatalf("rejected open disturbed the active dataset: index=%d state=%v", i, n.State())
	}
}

func TestNavigator_SingleImageBoundaries(t *testing.T) {
	n, _, _ := newTestNavigator(t, "only.png")
	if err := n.OpenDataset("set"); err != nil {
		t.Fatalf("open: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := n.Next(); !errors.Is(err, ErrLastImage) || !IsBoundary(err) {
			t.Fatalf("expected last-image boundary, got %v", err)
		}
		if err := n.Previous(); !errors.Is(err, ErrFirstImage) || !IsBoundary(err) {
			t.Fatalf("expected first-image boundary, got %v", err)
		}
		if idx, _ := n.Position(); idx != 1 {
			t.Fatalf("index moved to %d", idx)
		}
	}
}

func TestNavigator_BoundaryStillSaves(t *testing.T) {
	n, _, _ := newTestNavigator(t, "only.png")
	_ = n.OpenDataset("set")
	if _, err := n.AddBox(sampleBox(0)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := n.Next(); !IsBoundary(err) {
		t.Fatalf("expected boundary, got %v", err)
	}
	saved, err := labelfile.Load(n.LabelPath())
	if err != nil || len(saved) != 1 {
		t.Fatalf("expected box saved despite rejected move, got %+v err=%v", saved, err)
	}
}

func TestNavigator_AutosaveBeforeNavigate(t *testing.T) {
	n, _, _ := newTestNavigator(t, "a.jpg", "b.jpg")
	if err := n.OpenDataset("set"); err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := n.AddBox(sampleBox(1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := n.Goto(2); err != nil {
		t.Fatalf("goto 2: %v", err)
	}
	if len(n.Boxes()) != 0 {
		t.Fatalf("image 2 should start empty, got %+v", n.Boxes())
	}
	if err := n.Goto(1); err != nil {
		t.Fatalf("goto 1: %v", err)
	}
	boxes := n.Boxes()
	if len(boxes) != 1 || boxes[0].ClassID != 1 {
		t.Fatalf("box not restored after round trip: %+v", boxes)
	}
	want := sampleBox(1).Box
	got := boxes[0].Box
	if got.Min.X != want.Min.X || got.Max.Y != want.Max.Y {
		t.Fatalf("box geometry drifted: %+v want %+v", got, want)
	}
}

func TestNavigator_NextPreviousWalk(t *testing.T) {
	n, _, _ := newTestNavigator(t, "a.jpg", "b.jpg", "c.jpg")
	_ = n.OpenDataset("set")
	if err := n.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if err := n.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if filepath.Base(n.CurrentImage()) != "c.jpg" {
		t.Fatalf("expected c.jpg, got %s", n.CurrentImage())
	}
	if err := n.Next(); !errors.Is(err, ErrLastImage) {
		t.Fatalf("expected last image boundary, got %v", err)
	}
	if err := n.Previous(); err != nil {
		t.Fatalf("previous: %v", err)
	}
	if i, _ := n.Position(); i != 2 {
		t.Fatalf("expected index 2, got %d", i)
	}
}

func TestNavigator_GotoOutOfRangeSavesAndStays(t *testing.T) {
	n, _, _ := newTestNavigator(t, "a.jpg", "b.jpg")
	_ = n.OpenDataset("set")
	_, _ = n.AddBox(sampleBox(0))
	for _, target := range []int{0, -3, 3} {
		if err := n.Goto(target); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("goto %d: expected ErrOutOfRange, got %v", target, err)
		}
	}
	if i, _ := n.Position(); i != 1 {
		t.Fatalf("index moved to %d", i)
	}
	if _, err := os.Stat(n.LabelPath()); err != nil {
		t.Fatalf("expected label file written before range check: %v", err)
	}
	if len(n.Boxes()) != 1 {
		t.Fatalf("in-memory boxes lost")
	}
}

func TestNavigator_CorruptTargetKeepsCurrent(t *testing.T) {
	n, _, labels := newTestNavigator(t, "a.jpg", "b.jpg")
	_ = n.OpenDataset("set")
	_, _ = n.AddBox(sampleBox(0))
	if err := os.WriteFile(filepath.Join(labels, "set", "b.txt"), []byte("garbage\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	err := n.Next()
	var cerr *labelfile.CorruptLabelError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected CorruptLabelError, got %v", err)
	}
	if i, _ := n.Position(); i != 1 || len(n.Boxes()) != 1 {
		t.Fatalf("navigator left image 1 after failed hydrate: index=%d boxes=%d", i, len(n.Boxes()))
	}
}

func TestNavigator_ReopenFlushesPreviousDataset(t *testing.T) {
	n, images, labels := newTestNavigator(t, "a.jpg")
	touch(t, filepath.Join(images, "other"), "z.png")
	_ = n.OpenDataset("set")
	_, _ = n.AddBox(sampleBox(1))
	if err := n.OpenDataset("other"); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	saved, err := labelfile.Load(filepath.Join(labels, "set", "a.txt"))
	if err != nil || len(saved) != 1 {
		t.Fatalf("previous dataset not flushed: %+v err=%v", saved, err)
	}
	if len(n.Boxes()) != 0 || filepath.Base(n.CurrentImage()) != "z.png" {
		t.Fatalf("new dataset not active: %s %+v", n.CurrentImage(), n.Boxes())
	}
}

func TestNavigator_DeleteAndClear(t *testing.T) {
	n, _, _ := newTestNavigator(t, "a.jpg")
	_ = n.OpenDataset("set")
	_, _ = n.AddBox(sampleBox(0))
	_, _ = n.AddBox(sampleBox(1))
	if n.DeleteBoxAt(5) {
		t.Fatalf("out of range delete reported success")
	}
	if !n.DeleteBoxAt(0) {
		t.Fatalf("delete failed")
	}
	if b := n.Boxes(); len(b) != 1 || b[0].ClassID != 1 {
		t.Fatalf("unexpected boxes %+v", b)
	}
	if l := n.Labels(); len(l) != 1 {
		t.Fatalf("labels out of step with boxes: %v", l)
	}
	n.ClearBoxes()
	if len(n.Boxes()) != 0 || len(n.Labels()) != 0 {
		t.Fatalf("clear left boxes behind")
	}
}

func TestNavigator_AddBoxUnknownClassPanics(t *testing.T) {
	n, _, _ := newTestNavigator(t, "a.jpg")
	_ = n.OpenDataset("set")
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for class outside catalog")
		}
	}()
	_, _ = n.AddBox(sampleBox(7))
}

func TestNavigator_DatasetReturnsCopy(t *testing.T) {
	n, _, _ := newTestNavigator(t, "a.jpg")
	_ = n.OpenDataset("set")
	ds, ok := n.Dataset()
	if !ok {
		t.Fatalf("expected dataset")
	}
	ds.Images[0] = "mutated"
	if filepath.Base(n.CurrentImage()) != "a.jpg" {
		t.Fatalf("navigator images mutated through Dataset()")
	}
}
