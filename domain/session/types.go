package session

import (
	"errors"
	"fmt"
)

// State enumerates navigator states.
type State int

const (
	StateNoDataset State = iota
	StateDatasetLoaded
)

func (s State) String() string {
	switch s {
	case StateNoDataset:
		return "no-dataset"
	case StateDatasetLoaded:
		return "dataset-loaded"
	default:
		return "unknown"
	}
}

// Boundary conditions. They are informational: the active image was saved and
// stays active.
var (
	ErrFirstImage = errors.New("this is the first image")
	ErrLastImage  = errors.New("all images annotated")
	ErrOutOfRange = errors.New("image number out of range")
)

// ErrNoDataset is returned by operations that need an open dataset.
var ErrNoDataset = errors.New("no dataset loaded")

// IsBoundary reports whether err is a navigation boundary rather than a failure.
func IsBoundary(err error) bool {
	return errors.Is(err, ErrFirstImage) || errors.Is(err, ErrLastImage) || errors.Is(err, ErrOutOfRange)
}

// InvalidDatasetError rejects a dataset path. The navigator state is unchanged.
type InvalidDatasetError struct {
	Path   string
	Reason string
	Err    error
}

func (e *InvalidDatasetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid dataset %q: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid dataset %q: %s", e.Path, e.Reason)
}

func (e *InvalidDatasetError) Unwrap() error { return e.Err }
