package view

import (
	"strings"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// newEntry returns a one-line Text widget holding value.
func newEntry(width int, value string) *TextWidget {
	w := Text(Height(1), Width(width))
	w.Delete("1.0", END)
	w.Insert("1.0", value)
	return w
}

// entryText returns the trimmed content of a one-line Text widget.
func entryText(w *TextWidget) string {
	if w == nil {
		return ""
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), ""))
}
