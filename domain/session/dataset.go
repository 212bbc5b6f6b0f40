package session

import (
	"os"
	"path/filepath"
	"strings"
)

// Dataset is a validated image directory below the images root together with
// the label directory that mirrors it below the output root.
type Dataset struct {
	Rel      string   // path relative to the images root
	Dir      string   // resolved image directory
	LabelDir string   // <output root>/<Rel>
	Images   []string // absolute image paths, sorted by file name
}

// Resolve validates subpath against imagesRoot and lists its supported images.
// subpath may be relative to imagesRoot or absolute; either way it must resolve,
// after symlink evaluation, to a directory strictly inside imagesRoot.
// Resolve has no side effects on the file system.
func Resolve(imagesRoot, outputRoot, subpath string, exts []string) (*Dataset, error) {
	root, err := filepath.Abs(imagesRoot)
	if err == nil {
		root, err = filepath.EvalSymlinks(root)
	}
	if err != nil {
		return nil, &InvalidDatasetError{Path: subpath, Reason: "images root unavailable", Err: err}
	}

	target := strings.TrimSpace(subpath)
	if !filepath.IsAbs(target) {
		target = filepath.Join(root, target)
	}
	resolved, err := filepath.EvalSymlinks(target)
	if err != nil {
		return nil, &InvalidDatasetError{Path: subpath, Reason: "the specified dir doesn't exist", Err: err}
	}
	rel, err := filepath.Rel(root, resolved)
	if err != nil || !inside(rel) {
		return nil, &InvalidDatasetError{Path: subpath, Reason: "the directory should be within " + root}
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return nil, &InvalidDatasetError{Path: subpath, Reason: "cannot stat directory", Err: err}
	}
	if !info.IsDir() {
		return nil, &InvalidDatasetError{Path: subpath, Reason: "not a directory"}
	}

	images, err := listImages(resolved, exts)
	if err != nil {
		return nil, &InvalidDatasetError{Path: subpath, Reason: "cannot list directory", Err: err}
	}
	if len(images) == 0 {
		return nil, &InvalidDatasetError{Path: subpath, Reason: "no " + strings.Join(exts, ", ") + " images found"}
	}

	out, err := filepath.Abs(outputRoot)
	if err != nil {
		return nil, &InvalidDatasetError{Path: subpath, Reason: "output root unavailable", Err: err}
	}
	return &Dataset{
		Rel:      rel,
		Dir:      resolved,
		LabelDir: filepath.Join(out, rel),
		Images:   images,
	}, nil
}

// inside reports whether a root-relative path names a strict descendant.
func inside(rel string) bool {
	if rel == "." || rel == ".." || filepath.IsAbs(rel) {
		return false
	}
	return !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// listImages returns matching files in dir. os.ReadDir sorts by file name, which
// keeps navigation order stable across runs and platforms.
func listImages(dir string, exts []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var images []string
	for _, e := range entries {
		if e.IsDir() || !supported(e.Name(), exts) {
			continue
		}
		images = append(images, filepath.Join(dir, e.Name()))
	}
	return images, nil
}

func supported(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, x := range exts {
		if ext == strings.ToLower(x) {
			return true
		}
	}
	return false
}
