package view

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Toolbar holds the dataset picker and the class selector on the top row.
type Toolbar struct {
	dataset *TextWidget
	classes *TComboboxWidget
}

// NewToolbar grids the toolbar at row. onLoad receives the typed dataset path,
// onClass the chosen class name.
func NewToolbar(row int, classes []string, onLoad func(subpath string), onClass func(name string)) *Toolbar {
	t := &Toolbar{}
	frame := Frame()
	Grid(frame, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	lbl := Label(Txt("Image Dir:"), Anchor("w"))
	Grid(lbl, In(frame), Row(0), Column(0), Sticky("w"), Padx("0.2m"))
	t.dataset = newEntry(32, "")
	Grid(t.dataset, In(frame), Row(0), Column(1), Sticky("we"), Padx("0.2m"))
	load := TButton(Txt("Load"), Style(StylePrimaryButton), Command(func() {
		if onLoad != nil {
			onLoad(entryText(t.dataset))
		}
	}))
	Grid(load, In(frame), Row(0), Column(2), Sticky("we"), Padx("0.2m"))

	clsLbl := Label(Txt("Class:"), Anchor("w"))
	Grid(clsLbl, In(frame), Row(0), Column(3), Sticky("w"), Padx("0.6m"))
	if len(classes) == 0 {
		classes = []string{"<none>"}
	}
	t.classes = TCombobox(Values(classes), Width(20))
	Grid(t.classes, In(frame), Row(0), Column(4), Sticky("we"), Padx("0.2m"))
	t.classes.Current(0)
	Bind(t.classes, "<<ComboboxSelected>>", Command(func() {
		if idx := comboIndex(t.classes, len(classes)); idx >= 0 && onClass != nil {
			onClass(classes[idx])
		}
	}))
	return t
}
