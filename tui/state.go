package tui

import (
	"todo-tui/app"
	"todo-tui/model"
)

type uiMode int

const (
	modeNavigate uiMode = iota
	modeInsert
)

func (m uiMode) String() string {
	if m == modeInsert {
		return "insert"
	}
	return "navigate"
}

// viewState is the selection, active tab and mode. visible is the list the
// screen currently shows and is only replaced through refresh.
type viewState struct {
	tab     model.Tab
	row     int
	mode    uiMode
	draft   draft
	visible []string
}

func newViewState(svc *app.Service) viewState {
	v := viewState{tab: model.TabTodo, mode: modeNavigate}
	v.refresh(svc)
	return v
}

// refresh recomputes the visible list and clamps the selection into it.
func (v *viewState) refresh(svc *app.Service) {
	v.visible = svc.Visible(v.tab)
	v.row = clamp(v.row, 0, max(len(v.visible)-1, 0))
}

// selected returns the highlighted row, if the list has one.
func (v *viewState) selected() (int, bool) {
	if len(v.visible) == 0 {
		return 0, false
	}
	return v.row, true
}

// moveBy shifts the selection, clamped to the visible rows.
// It reports whether the selection changed.
func (v *viewState) moveBy(delta int) bool {
	old := v.row
	v.row = clamp(v.row+delta, 0, max(len(v.visible)-1, 0))
	return v.row != old
}

func (v *viewState) cycleTab(svc *app.Service) {
	v.tab = v.tab.Next()
	v.row = 0
	v.refresh(svc)
}

// draftRow is the screen row of the line being edited: directly below the
// last visible item.
func (v *viewState) draftRow() int {
	return listTop + len(v.visible)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
