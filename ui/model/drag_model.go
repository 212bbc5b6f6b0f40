package model

import "image"

// DragModel tracks the two-click box gesture on the image panel: the first click
// anchors a corner, the second commits the opposite corner. The zero value is idle
// and usable.
type DragModel struct {
	anchored bool
	anchor   image.Point
	cursor   image.Point
}

func NewDragModel() *DragModel { return &DragModel{} }

// Click advances the gesture. It returns the two corners and true when the click
// completes a box, leaving the model idle again.
func (m *DragModel) Click(p image.Point) (from, to image.Point, done bool) {
	if m == nil {
		return image.Point{}, image.Point{}, false
	}
	if !m.anchored {
		m.anchored = true
		m.anchor = p
		m.cursor = p
		return image.Point{}, image.Point{}, false
	}
	from, to = m.anchor, p
	m.anchored = false
	return from, to, true
}

// Move records the latest cursor position.
func (m *DragModel) Move(p image.Point) {
	if m == nil {
		return
	}
	m.cursor = p
}

// Cancel abandons a pending gesture. It reports whether one was pending.
func (m *DragModel) Cancel() bool {
	if m == nil || !m.anchored {
		return false
	}
	m.anchored = false
	return true
}

// Pending returns the in-progress rectangle between anchor and cursor.
func (m *DragModel) Pending() (image.Rectangle, bool) {
	if m == nil || !m.anchored {
		return image.Rectangle{}, false
	}
	return image.Rectangle{Min: m.anchor, Max: m.cursor}.Canon(), true
}

// Cursor returns the last cursor position.
func (m *DragModel) Cursor() image.Point {
	if m == nil {
		return image.Point{}
	}
	return m.cursor
}
