package view

import (
	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// NavBar holds Prev/Next, the progress readout, the goto entry and the cursor readout.
type NavBar struct {
	progress *LabelWidget
	cursor   *LabelWidget
	target   *TextWidget
}

// NewNavBar grids the navigation controls at row.
func NewNavBar(row int, onPrev, onNext func(), onGoto func(text string)) *NavBar {
	n := &NavBar{}
	frame := Frame()
	Grid(frame, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	prev := TButton(Txt("<< Prev"), Command(onPrev))
	Grid(prev, In(frame), Row(0), Column(0), Sticky("we"), Padx("0.2m"))
	next := TButton(Txt("Next >>"), Command(onNext))
	Grid(next, In(frame), Row(0), Column(1), Sticky("we"), Padx("0.2m"))

	n.progress = Label(Txt("Progress:     /    "), Width(18), Anchor("w"))
	Grid(n.progress, In(frame), Row(0), Column(2), Sticky("w"), Padx("0.6m"))

	gotoLbl := Label(Txt("Go to Image No."), Anchor("w"))
	Grid(gotoLbl, In(frame), Row(0), Column(3), Sticky("w"), Padx("0.2m"))
	n.target = newEntry(6, "")
	Grid(n.target, In(frame), Row(0), Column(4), Sticky("w"), Padx("0.2m"))
	gotoBtn := TButton(Txt("Go"), Command(func() {
		if onGoto != nil {
			onGoto(entryText(n.target))
		}
	}))
	Grid(gotoBtn, In(frame), Row(0), Column(5), Sticky("we"), Padx("0.2m"))

	n.cursor = Label(Txt("x: 0.00, y: 0.00"), Width(18), Anchor("e"))
	Grid(n.cursor, In(frame), Row(0), Column(6), Sticky("e"), Padx("0.6m"))
	return n
}

// SetProgress updates the "current/total" readout.
func (n *NavBar) SetProgress(text string) {
	if n == nil || n.progress == nil {
		return
	}
	n.progress.Configure(Txt("Progress: " + text))
}

// SetCursor updates the normalized pointer readout.
func (n *NavBar) SetCursor(text string) {
	if n == nil || n.cursor == nil {
		return
	}
	n.cursor.Configure(Txt(text))
}
