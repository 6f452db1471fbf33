package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todo-tui/app"
	"todo-tui/screen"
)

// Model adapts a Session to a bubbletea program. The program owns raw mode
// and the alternate screen and delivers key events one at a time, so the
// session, service and screen are only touched from Update and View.
type Model struct {
	session *Session
	screen  *screen.Screen
	ready   bool
}

// NewModel builds a model whose highlighted cells use style.
func NewModel(svc *app.Service, style lipgloss.Style, opts Options) *Model {
	scr := screen.New(style)
	return &Model{
		session: NewSession(svc, scr, opts),
		screen:  scr,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.session.Resize(msg.Width)
		m.ready = true
	case tea.KeyMsg:
		if !m.ready {
			m.session.Redraw()
			m.ready = true
		}
		if m.session.HandleKey(msg) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.screen.View()
}
