package view

import (
	"fmt"
	"strconv"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const noBoxes = "<no boxes>"

// BoxPanel lists the boxes of the active image with Delete and Clear All.
// A swatch shows the class colour of the selected row.
type BoxPanel struct {
	list   *TComboboxWidget
	swatch *LabelWidget
	count  *LabelWidget
	items  []string
	colors []string
}

// NewBoxPanel grids the panel at row. onDelete receives the selected index or -1.
func NewBoxPanel(row int, onDelete func(index int), onClear func()) *BoxPanel {
	b := &BoxPanel{}
	frame := Frame()
	Grid(frame, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	b.count = Label(Txt("Boxes: 0"), Width(10), Anchor("w"))
	Grid(b.count, In(frame), Row(0), Column(0), Sticky("w"), Padx("0.2m"))
	b.swatch = Label(Txt("  "), Width(2), Background(ColorBorder))
	Grid(b.swatch, In(frame), Row(0), Column(1), Sticky("w"), Padx("0.2m"))
	b.list = TCombobox(Values([]string{noBoxes}), Width(44))
	Grid(b.list, In(frame), Row(0), Column(2), Sticky("we"), Padx("0.2m"))
	b.list.Current(0)
	Bind(b.list, "<<ComboboxSelected>>", Command(b.updateSwatch))

	del := TButton(Txt("Delete"), Style(StyleDangerButton), Command(func() {
		if onDelete != nil {
			onDelete(b.selected())
		}
	}))
	Grid(del, In(frame), Row(0), Column(3), Sticky("we"), Padx("0.2m"))
	clearBtn := TButton(Txt("Clear All"), Style(StyleDangerButton), Command(func() {
		if onClear != nil {
			onClear()
		}
	}))
	Grid(clearBtn, In(frame), Row(0), Column(4), Sticky("we"), Padx("0.2m"))
	return b
}

// Set replaces the rows; colors[i] belongs to items[i]. The newest row is selected.
func (b *BoxPanel) Set(items, colors []string) {
	if b == nil || b.list == nil {
		return
	}
	b.items = append(b.items[:0], items...)
	b.colors = append(b.colors[:0], colors...)
	b.count.Configure(Txt(fmt.Sprintf("Boxes: %d", len(items))))
	if len(items) == 0 {
		b.list.Configure(Values([]string{noBoxes}))
		b.list.Current(0)
	} else {
		b.list.Configure(Values(items))
		b.list.Current(len(items) - 1)
	}
	b.updateSwatch()
}

func (b *BoxPanel) selected() int { return comboIndex(b.list, len(b.items)) }

func (b *BoxPanel) updateSwatch() {
	color := ColorBorder
	if i := b.selected(); i >= 0 && i < len(b.colors) {
		color = b.colors[i]
	}
	b.swatch.Configure(Background(color))
}

// comboIndex returns the selected index of cb, or -1 when nothing valid is selected.
func comboIndex(cb *TComboboxWidget, n int) int {
	if cb == nil {
		return -1
	}
	idx, err := strconv.Atoi(cb.Current(nil))
	if err != nil || idx < 0 || idx >= n {
		return -1
	}
	return idx
}
