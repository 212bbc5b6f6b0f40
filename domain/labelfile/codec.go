// Package labelfile reads and writes per-image YOLO label files.
//
// Each non-blank line holds "class cx cy w h". A malformed line aborts the load of
// the whole file with a *CorruptLabelError; boxes are never silently dropped.
package labelfile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/soocke/yolo-annotator/domain/annotation"
	"github.com/soocke/yolo-annotator/domain/geometry"
)

// Ext is the label file extension.
const Ext = ".txt"

// CorruptLabelError identifies the first bad line of a label file.
type CorruptLabelError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *CorruptLabelError) Error() string {
	return fmt.Sprintf("corrupt label file %s line %d %q: %v", e.Path, e.Line, e.Text, e.Err)
}

func (e *CorruptLabelError) Unwrap() error { return e.Err }

var (
	errFieldCount = errors.New("expected 5 fields")
	errClassRange = errors.New("class id out of range")
)

// Codec loads and saves label files. NumClasses, when positive, rejects class ids
// that the current catalog cannot name.
type Codec struct {
	NumClasses int
}

// PathFor returns the label file for imagePath inside dir.
func PathFor(dir, imagePath string) string {
	base := filepath.Base(imagePath)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+Ext)
}

// Load reads the boxes stored at path. A missing file is an empty set.
func (c Codec) Load(path string) ([]annotation.BoundingBox, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []annotation.BoundingBox{}, nil
		}
		return nil, fmt.Errorf("open label file: %w", err)
	}
	defer f.Close()

	boxes := []annotation.BoundingBox{}
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		b, err := c.parse(text)
		if err != nil {
			return nil, &CorruptLabelError{Path: path, Line: line, Text: text, Err: err}
		}
		boxes = append(boxes, b)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read label file %s: %w", path, err)
	}
	return boxes, nil
}

func (c Codec) parse(text string) (annotation.BoundingBox, error) {
	fields := strings.Fields(text)
	if len(fields) != 5 {
		return annotation.BoundingBox{}, fmt.Errorf("%w, got %d", errFieldCount, len(fields))
	}
	class, err := strconv.Atoi(fields[0])
	if err != nil {
		return annotation.BoundingBox{}, err
	}
	if class < 0 || (c.NumClasses > 0 && class >= c.NumClasses) {
		return annotation.BoundingBox{}, fmt.Errorf("%w: %d", errClassRange, class)
	}
	var v [4]float64
	for i := range v {
		if v[i], err = strconv.ParseFloat(fields[i+1], 64); err != nil {
			return annotation.BoundingBox{}, err
		}
	}
	box := geometry.FromYOLO(geometry.YOLO{CenterX: v[0], CenterY: v[1], Width: v[2], Height: v[3]})
	return annotation.BoundingBox{ClassID: class, Box: box}, nil
}

// Save replaces the file at path with boxes. The content is written to a temporary
// file in the same directory and renamed over path, so readers see either the old
// or the new set.
func (c Codec) Save(path string, boxes []annotation.BoundingBox) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp label file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	for _, b := range boxes {
		if _, err = w.WriteString(FormatLine(b)); err != nil {
			return fmt.Errorf("write label file: %w", err)
		}
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("flush label file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync label file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close label file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod label file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace label file: %w", err)
	}
	return nil
}

// FormatLine renders one record, newline terminated.
func FormatLine(b annotation.BoundingBox) string {
	y := geometry.ToYOLO(b.Box)
	return fmt.Sprintf("%d %s %s %s %s\n", b.ClassID,
		formatFloat(y.CenterX), formatFloat(y.CenterY), formatFloat(y.Width), formatFloat(y.Height))
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// Load reads path with an unbounded class range.
func Load(path string) ([]annotation.BoundingBox, error) { return Codec{}.Load(path) }

// Save writes boxes to path.
func Save(path string, boxes []annotation.BoundingBox) error { return Codec{}.Save(path, boxes) }
