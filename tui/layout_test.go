package tui

import (
	"strings"
	"testing"

	"todo-tui/model"
	"todo-tui/screen"
)

func TestHeaderPlacesTabsAndHighlightsActive(t *testing.T) {
	scr := screen.New(screen.DefaultHighlight)
	r := renderer{s: scr, width: 80}
	r.header(header{tab: model.TabTodo, width: 80})

	if got := scr.Line(tabRow); got != " All   Todo  Done" {
		t.Fatalf("unexpected tab bar %q", got)
	}
	if !scr.Highlighted(tabRow) {
		t.Fatalf("expected active tab highlighted")
	}
	if scr.Highlighting() {
		t.Fatalf("highlight left on after tab bar")
	}
}

func TestHeaderStatusIsClippedToWidth(t *testing.T) {
	scr := screen.New(screen.DefaultHighlight)
	r := renderer{s: scr, width: 30}
	r.header(header{
		tab:    model.TabAll,
		dirty:  true,
		status: "a very long status message that cannot fit",
		help:   "j down · k up · tab view · a add · x done/undo",
		width:  30,
	})

	line := scr.Line(tabRow)
	if len([]rune(line)) > 30 {
		t.Fatalf("status overflowed the width: %q", line)
	}
	if !strings.Contains(line, "*") || !strings.HasSuffix(line, "…") {
		t.Fatalf("expected dirty marker and truncated status, got %q", line)
	}
	if help := scr.Line(helpRow); len([]rune(help)) > 30 {
		t.Fatalf("help overflowed the width: %q", help)
	}
}

func TestHeaderRedrawLeavesNoStaleStatus(t *testing.T) {
	scr := screen.New(screen.DefaultHighlight)
	r := renderer{s: scr, width: 80}
	r.header(header{tab: model.TabAll, status: "saved 12 tasks", width: 80})
	r.header(header{tab: model.TabAll, status: "added", width: 80})

	if strings.Contains(scr.Line(tabRow), "tasks") {
		t.Fatalf("stale status text left: %q", scr.Line(tabRow))
	}
}

func TestDraftUsesTargetMarker(t *testing.T) {
	scr := screen.New(screen.DefaultHighlight)
	r := renderer{s: scr, width: 80}
	v := viewState{tab: model.TabDone, mode: modeInsert, visible: []string{"[x] a"}}
	v.draft.insert([]rune("b"))

	r.draft(&v)
	r.park(&v)
	if got := scr.Line(listTop + 1); got != " [x] b" {
		t.Fatalf("unexpected draft row %q", got)
	}
	x, y, visible := scr.Cursor()
	if !visible || x != draftCol+1 || y != listTop+1 {
		t.Fatalf("unexpected cursor (%d,%d) visible=%v", x, y, visible)
	}
}
