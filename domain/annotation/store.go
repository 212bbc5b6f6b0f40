// Package annotation holds the boxes drawn on the active image.
package annotation

import "github.com/soocke/yolo-annotator/domain/geometry"

// BoundingBox is one labelled box in normalized corner form.
type BoundingBox struct {
	ClassID int
	Box     geometry.Box
}

// Labeler renders the display text a view shows for a box.
type Labeler func(BoundingBox) string

// Entry pairs a box with its display label. Both live in one slot so the
// position of a box and the position of its list row cannot drift apart.
type Entry struct {
	Box   BoundingBox
	Label string
}

// Store is the ordered annotation set of a single image. It is not safe for
// concurrent use; the session drives it from the UI thread.
type Store struct {
	labeler Labeler
	entries []Entry
}

// NewStore returns an empty store. A nil labeler leaves labels empty.
func NewStore(labeler Labeler) *Store {
	return &Store{labeler: labeler}
}

func (s *Store) entry(b BoundingBox) Entry {
	e := Entry{Box: b}
	if s.labeler != nil {
		e.Label = s.labeler(b)
	}
	return e
}

// Add appends b and returns its index.
func (s *Store) Add(b BoundingBox) int {
	s.entries = append(s.entries, s.entry(b))
	return len(s.entries) - 1
}

// DeleteAt removes the entry at i. Out of range indices are ignored and report false.
func (s *Store) DeleteAt(i int) (Entry, bool) {
	if i < 0 || i >= len(s.entries) {
		return Entry{}, false
	}
	e := s.entries[i]
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return e, true
}

// Clear removes every entry.
func (s *Store) Clear() { s.entries = nil }

// Replace discards the current entries and loads boxes in order.
func (s *Store) Replace(boxes []BoundingBox) {
	s.entries = make([]Entry, 0, len(boxes))
	for _, b := range boxes {
		s.entries = append(s.entries, s.entry(b))
	}
}

// Len returns the number of boxes.
func (s *Store) Len() int { return len(s.entries) }

// All returns a copy of the boxes in insertion order.
func (s *Store) All() []BoundingBox {
	out := make([]BoundingBox, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Box
	}
	return out
}

// Labels returns a copy of the display labels, index aligned with All.
func (s *Store) Labels() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Label
	}
	return out
}

// Entries returns a copy of the entries.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
