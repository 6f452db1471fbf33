package tui

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"todo-tui/model"
	"todo-tui/screen"
)

// Screen layout. Rows 0 and 1 are the header; items start at listTop.
const (
	tabRow     = 0
	helpRow    = 1
	listTop    = 2
	listIndent = 1
	tabStride  = 6
	markerCol  = 1 + tabStride*3
	statusCol  = markerCol + 2
	// draftCol is where typed text starts: after "[ ] ".
	draftCol = listIndent + len(model.MarkerTodo) + 1

	defaultWidth = 80
)

// header is everything drawn on rows 0 and 1. Two equal headers draw the
// same cells.
type header struct {
	tab       model.Tab
	dirty     bool
	status    string
	statusErr bool
	help      string
	width     int
}

// renderer issues the drawing commands for each screen region. Every
// highlighted write is followed by SetHighlight(false).
type renderer struct {
	s     screen.Surface
	width int
}

func (r *renderer) header(h header) {
	r.s.ClearLine(tabRow)
	for i, tab := range model.Tabs {
		r.s.SetHighlight(tab == h.tab)
		r.s.MoveTo(listIndent+i*tabStride, tabRow)
		r.s.Write(tab.String())
		r.s.SetHighlight(false)
	}
	if h.dirty {
		r.s.MoveTo(markerCol, tabRow)
		r.s.Write("*")
	}
	if h.status != "" {
		text := h.status
		if h.statusErr {
			text = "! " + text
		}
		r.writeClipped(statusCol, tabRow, text)
	}

	r.s.ClearLine(helpRow)
	r.writeClipped(listIndent, helpRow, h.help)
}

func (r *renderer) writeClipped(x, y int, text string) {
	avail := r.width - x
	if avail <= 0 || text == "" {
		return
	}
	r.s.MoveTo(x, y)
	r.s.Write(ansi.Truncate(text, avail, "…"))
}

// list redraws every row from listTop down, which also erases a draft line.
func (r *renderer) list(v *viewState) {
	r.s.ClearBelow(listTop)
	for i := range v.visible {
		r.item(v, i)
	}
}

// row redraws a single list item in place.
func (r *renderer) row(v *viewState, i int) {
	if i < 0 || i >= len(v.visible) {
		return
	}
	r.s.ClearLine(listTop + i)
	r.item(v, i)
}

func (r *renderer) item(v *viewState, i int) {
	sel, ok := v.selected()
	hl := ok && sel == i
	r.s.SetHighlight(hl)
	r.s.MoveTo(listIndent, listTop+i)
	r.s.Write(v.visible[i])
	r.s.SetHighlight(false)
}

// draft redraws the line being edited.
func (r *renderer) draft(v *viewState) {
	y := v.draftRow()
	r.s.ClearLine(y)
	r.s.MoveTo(listIndent, y)
	r.s.Write(v.tab.Target().Marker())
	r.s.MoveTo(draftCol, y)
	r.s.Write(v.draft.String())
}

func (r *renderer) eraseDraft(v *viewState) {
	r.s.ClearLine(v.draftRow())
}

// park leaves the cursor after the draft text while editing and hides it
// otherwise. It runs last in every redraw since drawing moves the pen.
func (r *renderer) park(v *viewState) {
	if v.mode != modeInsert {
		r.s.HideCursor()
		return
	}
	r.s.MoveTo(draftCol+runewidth.StringWidth(v.draft.String()), v.draftRow())
	r.s.ShowCursor()
}

// all paints every region of a blank surface.
func (r *renderer) all(v *viewState, h header) {
	r.s.SetHighlight(false)
	r.s.ClearBelow(0)
	r.header(h)
	r.list(v)
	if v.mode == modeInsert {
		r.draft(v)
	}
	r.park(v)
}
