package screen

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func newTestScreen() *Screen {
	return New(DefaultHighlight)
}

func TestWriteAtAbsolutePositions(t *testing.T) {
	s := newTestScreen()
	s.MoveTo(1, 2)
	s.Write("[ ] a")
	s.MoveTo(3, 0)
	s.Write("hi")

	if got := s.Line(0); got != "   hi" {
		t.Fatalf("unexpected row 0 %q", got)
	}
	if got := s.Line(1); got != "" {
		t.Fatalf("expected empty row 1, got %q", got)
	}
	if got := s.Line(2); got != " [ ] a" {
		t.Fatalf("unexpected row 2 %q", got)
	}
	if x, y, _ := s.Cursor(); x != 6 || y != 2 {
		t.Fatalf("expected pen at (6,2), got (%d,%d)", x, y)
	}
}

func TestOverwriteLeavesStaleGlyphsUntilCleared(t *testing.T) {
	s := newTestScreen()
	s.MoveTo(0, 0)
	s.Write("hello world")
	s.MoveTo(0, 0)
	s.Write("bye")
	if got := s.Line(0); got != "byelo world" {
		t.Fatalf("expected terminal-like overwrite, got %q", got)
	}

	s.ClearLine(0)
	s.MoveTo(0, 0)
	s.Write("bye")
	if got := s.Line(0); got != "bye" {
		t.Fatalf("expected cleared row, got %q", got)
	}
}

func TestClearBelowDropsRowsFromY(t *testing.T) {
	s := newTestScreen()
	for y := 0; y < 5; y++ {
		s.MoveTo(0, y)
		s.Write("row")
	}
	s.ClearBelow(2)
	if s.Height() != 2 {
		t.Fatalf("expected 2 rows left, got %d", s.Height())
	}
	if s.Line(1) != "row" || s.Line(2) != "" {
		t.Fatalf("unexpected rows after clear: %q", s.Lines())
	}
}

func TestHighlightAppliesUntilReset(t *testing.T) {
	s := newTestScreen()
	s.SetHighlight(true)
	s.MoveTo(0, 0)
	s.Write("sel")
	s.SetHighlight(false)
	s.MoveTo(0, 1)
	s.Write("plain")

	if !s.Highlighted(0) {
		t.Fatalf("expected row 0 highlighted")
	}
	if s.Highlighted(1) {
		t.Fatalf("highlight bled into row 1")
	}
}

func TestWideRunesTakeTwoCells(t *testing.T) {
	s := newTestScreen()
	s.MoveTo(0, 0)
	s.Write("日本")
	if x, _, _ := s.Cursor(); x != 4 {
		t.Fatalf("expected pen at column 4, got %d", x)
	}
	s.MoveTo(1, 0)
	s.Write("a")
	if got := s.Line(0); got != " a本" {
		t.Fatalf("expected split wide rune to be blanked, got %q", got)
	}
}

func TestEqualIgnoresTrailingBlanks(t *testing.T) {
	a := newTestScreen()
	a.MoveTo(0, 0)
	a.Write("x   ")
	a.MoveTo(0, 3)
	a.Write("   ")

	b := newTestScreen()
	b.MoveTo(0, 0)
	b.Write("x")

	if !a.Equal(b) {
		t.Fatalf("expected screens to be equal: %q vs %q", a.Lines(), b.Lines())
	}

	b.ShowCursor()
	if a.Equal(b) {
		t.Fatalf("expected cursor visibility to matter")
	}
}

func TestViewPaintsCursorAndClipsHeight(t *testing.T) {
	s := newTestScreen()
	s.Resize(20, 2)
	s.MoveTo(0, 0)
	s.Write("top")
	s.MoveTo(0, 1)
	s.Write("ab")
	s.ShowCursor()
	s.MoveTo(0, 5)
	s.Write("hidden")

	view := s.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected view clipped to 2 lines, got %d", len(lines))
	}
	if got := ansi.Strip(lines[1]); got != "ab" {
		t.Fatalf("unexpected second line %q", got)
	}
}

func TestViewDoesNotMutateCells(t *testing.T) {
	s := newTestScreen()
	s.MoveTo(0, 0)
	s.Write("a")
	s.MoveTo(10, 4)
	s.ShowCursor()

	_ = s.View()
	if s.Height() != 1 {
		t.Fatalf("view grew the grid to %d rows", s.Height())
	}
}
