package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"todo-tui/app"
	"todo-tui/model"
	"todo-tui/screen"
)

// Options tune a Session. The zero value is usable.
type Options struct {
	// SaveOnQuit persists unsaved changes when q is pressed. ctrl+c never saves.
	SaveOnQuit bool
	Logger     *log.Logger
	// Copy writes text to the system clipboard.
	Copy func(string) error
}

// Session interprets key events against the current mode, applies them to
// the task service and repaints the affected screen regions.
type Session struct {
	svc  *app.Service
	view viewState
	draw renderer
	keys keyMap
	help help.Model
	opts Options

	status    string
	statusErr bool

	drawn      header
	headerSeen bool
}

// NewSession draws nothing until Redraw or the first key.
func NewSession(svc *app.Service, surface screen.Surface, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	s := &Session{
		svc:  svc,
		view: newViewState(svc),
		draw: renderer{s: surface, width: defaultWidth},
		keys: defaultKeyMap(),
		help: help.New(),
		opts: opts,
	}
	s.help.ShortSeparator = " · "
	return s
}

// Resize adapts the header to a new terminal width and repaints everything.
func (s *Session) Resize(width int) {
	if width <= 0 {
		width = defaultWidth
	}
	s.draw.width = width
	s.Redraw()
}

// Redraw repaints every region.
func (s *Session) Redraw() {
	h := s.header()
	s.draw.all(&s.view, h)
	s.drawn, s.headerSeen = h, true
}

// HandleKey applies one key event and reports whether the session is over.
func (s *Session) HandleKey(msg tea.KeyMsg) bool {
	if key.Matches(msg, s.keys.ForceQuit) {
		s.opts.Logger.Info("quit", "saved", false, "dirty", s.svc.Dirty())
		return true
	}

	quit := false
	if s.view.mode == modeInsert {
		s.handleInsert(msg)
	} else {
		quit = s.handleNavigate(msg)
	}
	if quit {
		return true
	}

	s.syncHeader()
	s.draw.park(&s.view)
	return false
}

func (s *Session) handleNavigate(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, s.keys.Quit):
		return s.quit()
	case key.Matches(msg, s.keys.Down):
		s.moveBy(1)
	case key.Matches(msg, s.keys.Up):
		s.moveBy(-1)
	case key.Matches(msg, s.keys.Tab):
		s.view.cycleTab(s.svc)
		s.draw.list(&s.view)
	case key.Matches(msg, s.keys.Toggle):
		s.toggle()
	case key.Matches(msg, s.keys.Insert):
		s.beginInsert()
	case key.Matches(msg, s.keys.Save):
		s.save()
	case key.Matches(msg, s.keys.Copy):
		s.copySelected()
	}
	return false
}

func (s *Session) handleInsert(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, s.keys.Commit):
		s.commit()
	case key.Matches(msg, s.keys.Cancel):
		s.cancel()
	case key.Matches(msg, s.keys.Backspace):
		if s.view.draft.backspace() {
			s.draw.draft(&s.view)
		}
	case key.Matches(msg, s.keys.WordErase):
		if s.view.draft.eraseWord() {
			s.draw.draft(&s.view)
		}
	case msg.Type == tea.KeySpace:
		if s.view.draft.insert([]rune{' '}) {
			s.draw.draft(&s.view)
		}
	case msg.Type == tea.KeyRunes && !msg.Alt:
		if s.view.draft.insert(msg.Runes) {
			s.draw.draft(&s.view)
		}
	}
}

func (s *Session) moveBy(delta int) {
	old := s.view.row
	if !s.view.moveBy(delta) {
		return
	}
	s.draw.row(&s.view, old)
	s.draw.row(&s.view, s.view.row)
}

func (s *Session) toggle() {
	loc, err := s.svc.Toggle(s.view.tab, s.view.row)
	if err != nil {
		if errors.Is(err, app.ErrOutOfRange) {
			s.setStatus("nothing to toggle", false)
			s.opts.Logger.Debug("toggle ignored", "tab", s.view.tab, "row", s.view.row, "err", err)
			return
		}
		s.fail("toggle failed", err)
		return
	}
	s.view.row = 0
	s.view.refresh(s.svc)
	s.draw.list(&s.view)
	if loc.Seq == model.Pending {
		s.setStatus("marked done", false)
	} else {
		s.setStatus("marked to-do", false)
	}
}

func (s *Session) beginInsert() {
	s.view.mode = modeInsert
	s.view.draft.reset()
	s.draw.draft(&s.view)
}

func (s *Session) commit() {
	text := s.view.draft.String()
	if strings.TrimSpace(text) == "" {
		s.cancel()
		return
	}
	if err := s.svc.Add(s.view.tab.Target(), text); err != nil {
		s.fail("add failed", err)
		return
	}
	s.view.mode = modeNavigate
	s.view.draft.reset()
	s.view.refresh(s.svc)
	s.draw.list(&s.view)
	s.setStatus("added", false)
}

func (s *Session) cancel() {
	s.draw.eraseDraft(&s.view)
	s.view.mode = modeNavigate
	s.view.draft.reset()
}

func (s *Session) save() bool {
	if err := s.svc.Persist(); err != nil {
		s.fail("save failed", err)
		return false
	}
	n := len(s.svc.Pending()) + len(s.svc.Completed())
	s.opts.Logger.Info("saved", "tasks", n)
	s.setStatus(fmt.Sprintf("saved %d tasks", n), false)
	return true
}

func (s *Session) quit() bool {
	if s.opts.SaveOnQuit && s.svc.Dirty() && !s.save() {
		return false
	}
	s.opts.Logger.Info("quit", "saved", !s.svc.Dirty())
	return true
}

func (s *Session) copySelected() {
	loc, err := s.svc.Resolve(s.view.tab, s.view.row)
	if err != nil {
		s.setStatus("nothing to copy", false)
		return
	}
	text, err := s.svc.Text(loc)
	if err != nil {
		s.fail("copy failed", err)
		return
	}
	if err := s.opts.Copy(text); err != nil {
		s.fail("copy failed", err)
		return
	}
	s.setStatus("copied", false)
}

func (s *Session) fail(what string, err error) {
	s.opts.Logger.Error(what, "err", err)
	s.setStatus(what+": "+err.Error(), true)
}

func (s *Session) setStatus(text string, isErr bool) {
	s.status = text
	s.statusErr = isErr
}

// syncHeader repaints rows 0 and 1 when their content changed.
func (s *Session) syncHeader() {
	h := s.header()
	if s.headerSeen && h == s.drawn {
		return
	}
	s.draw.header(h)
	s.drawn, s.headerSeen = h, true
}

func (s *Session) header() header {
	bindings := s.keys.navigateHelp()
	if s.view.mode == modeInsert {
		bindings = s.keys.insertHelp()
	}
	s.help.Width = max(s.draw.width-listIndent, 0)
	return header{
		tab:       s.view.tab,
		dirty:     s.svc.Dirty(),
		status:    s.status,
		statusErr: s.statusErr,
		help:      ansi.Strip(s.help.ShortHelpView(bindings)),
		width:     s.draw.width,
	}
}
