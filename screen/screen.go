// Package screen provides the cursor-addressed drawing surface the editor
// paints on, backed by a cell grid that is rendered as one string per frame.
package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Surface is the set of primitive drawing operations a renderer may use.
// Text written after SetHighlight(true) keeps the highlight until
// SetHighlight(false).
type Surface interface {
	MoveTo(x, y int)
	Write(s string)
	ClearLine(y int)
	ClearBelow(y int)
	SetHighlight(on bool)
	ShowCursor()
	HideCursor()
}

// DefaultHighlight is inverse video.
var DefaultHighlight = lipgloss.NewStyle().Reverse(true)

type cell struct {
	r    rune
	hl   bool
	cont bool // right half of a double-width rune
}

// Screen is an in-memory Surface. Cells keep what was last written to them
// until they are cleared, like a real terminal.
type Screen struct {
	rows      [][]cell
	x, y      int
	highlight bool
	cursor    bool

	width  int
	height int
	style  lipgloss.Style
}

// New returns an empty screen that renders highlighted cells with style.
func New(style lipgloss.Style) *Screen {
	return &Screen{style: style}
}

// Resize records the terminal size used when rendering.
func (s *Screen) Resize(width, height int) {
	s.width = width
	s.height = height
}

// Size returns the last size given to Resize.
func (s *Screen) Size() (int, int) {
	return s.width, s.height
}

func (s *Screen) MoveTo(x, y int) {
	s.x = max(x, 0)
	s.y = max(y, 0)
}

func (s *Screen) Write(text string) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.put(r, w)
	}
}

func (s *Screen) put(r rune, w int) {
	row := s.row(s.y, s.x+w)
	if row[s.x].cont && s.x > 0 {
		row[s.x-1] = cell{r: ' ', hl: row[s.x-1].hl}
	}
	row[s.x] = cell{r: r, hl: s.highlight}
	if w == 2 {
		row[s.x+1] = cell{hl: s.highlight, cont: true}
	}
	if next := s.x + w; next < len(row) && row[next].cont {
		row[next] = cell{r: ' ', hl: row[next].hl}
	}
	s.rows[s.y] = row
	s.x += w
}

// row returns row y grown to at least n cells.
func (s *Screen) row(y, n int) []cell {
	for len(s.rows) <= y {
		s.rows = append(s.rows, nil)
	}
	row := s.rows[y]
	for len(row) < n {
		row = append(row, cell{r: ' '})
	}
	return row
}

func (s *Screen) ClearLine(y int) {
	if y >= 0 && y < len(s.rows) {
		s.rows[y] = nil
	}
}

// ClearBelow erases row y and every row after it.
func (s *Screen) ClearBelow(y int) {
	y = max(y, 0)
	if y < len(s.rows) {
		s.rows = s.rows[:y]
	}
}

func (s *Screen) SetHighlight(on bool) {
	s.highlight = on
}

func (s *Screen) ShowCursor() {
	s.cursor = true
}

func (s *Screen) HideCursor() {
	s.cursor = false
}

// Reset erases every cell and restores the default pen state.
func (s *Screen) Reset() {
	s.rows = nil
	s.x, s.y = 0, 0
	s.highlight = false
	s.cursor = false
}

// Cursor returns the pen position and whether the cursor is shown.
func (s *Screen) Cursor() (x, y int, visible bool) {
	return s.x, s.y, s.cursor
}

// Highlighting reports whether text written now would be highlighted.
func (s *Screen) Highlighting() bool {
	return s.highlight
}

// Height returns the number of rows that hold cells.
func (s *Screen) Height() int {
	return len(s.rows)
}

// Line returns the text of row y without trailing blanks.
func (s *Screen) Line(y int) string {
	if y < 0 || y >= len(s.rows) {
		return ""
	}
	var b strings.Builder
	for _, c := range s.rows[y] {
		if c.cont {
			continue
		}
		b.WriteRune(c.r)
	}
	return strings.TrimRight(b.String(), " ")
}

// Lines returns every row as text.
func (s *Screen) Lines() []string {
	out := make([]string, len(s.rows))
	for y := range s.rows {
		out[y] = s.Line(y)
	}
	return out
}

// Highlighted reports whether any cell of row y is highlighted.
func (s *Screen) Highlighted(y int) bool {
	if y < 0 || y >= len(s.rows) {
		return false
	}
	for _, c := range s.rows[y] {
		if c.hl {
			return true
		}
	}
	return false
}

// Equal reports whether two screens show the same cells and cursor.
// Trailing blank cells and empty trailing rows are ignored.
func (s *Screen) Equal(o *Screen) bool {
	a, b := s.trimmed(), o.trimmed()
	if len(a) != len(b) {
		return false
	}
	for y := range a {
		if len(a[y]) != len(b[y]) {
			return false
		}
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	if s.cursor != o.cursor {
		return false
	}
	return !s.cursor || (s.x == o.x && s.y == o.y)
}

func (s *Screen) trimmed() [][]cell {
	out := make([][]cell, len(s.rows))
	for y, row := range s.rows {
		n := len(row)
		for n > 0 && row[n-1] == (cell{r: ' '}) {
			n--
		}
		out[y] = row[:n]
	}
	n := len(out)
	for n > 0 && len(out[n-1]) == 0 {
		n--
	}
	return out[:n]
}

// View renders the grid. Highlighted runs and the visible cursor are drawn
// with the highlight style.
func (s *Screen) View() string {
	n := len(s.rows)
	if s.cursor && s.y >= n {
		n = s.y + 1
	}
	if s.height > 0 && n > s.height {
		n = s.height
	}

	lines := make([]string, n)
	for y := 0; y < n; y++ {
		lines[y] = s.renderRow(y)
	}
	return strings.Join(lines, "\n")
}

func (s *Screen) renderRow(y int) string {
	var row []cell
	if y < len(s.rows) {
		row = s.rows[y]
	}
	if s.cursor && s.y == y {
		withCursor := make([]cell, max(len(row), s.x+1))
		copy(withCursor, row)
		for i := len(row); i < len(withCursor); i++ {
			withCursor[i] = cell{r: ' '}
		}
		row = withCursor
		row[s.x].hl = true
		if row[s.x].cont {
			row[s.x].r, row[s.x].cont = ' ', false
		}
	}

	var out, run strings.Builder
	runHL := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runHL {
			out.WriteString(s.style.Render(run.String()))
		} else {
			out.WriteString(run.String())
		}
		run.Reset()
	}
	for _, c := range row {
		if c.cont {
			continue
		}
		if c.hl != runHL {
			flush()
			runHL = c.hl
		}
		run.WriteRune(c.r)
	}
	flush()
	return out.String()
}
