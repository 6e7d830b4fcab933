// Package tui is the full-screen front end: a landing screen and a popup
// terminal holding the typewriter output and the answer box.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazelnt/gameAI/internal/game"
	"github.com/hazelnt/gameAI/internal/typewriter"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("28")).
			Padding(0, 1)
)

// Messages for Bubble Tea
type (
	// refreshMsg is sent by the output buffer after every change.
	refreshMsg struct{ scroll bool }
	// narrationDoneMsg arrives when an accepted command finished narrating.
	narrationDoneMsg struct{}
)

// Model follows Bubble Tea's Elm architecture. The game Controller and the
// output Buffer are shared with the narration goroutines; everything else is
// only touched by Update.
type Model struct {
	ctrl     *game.Controller
	buf      *typewriter.Buffer
	viewport viewport.Model
	input    textinput.Model
	open     bool
	width    int
	height   int
}

func New(ctrl *game.Controller, buf *typewriter.Buffer) Model {
	ti := textinput.New()
	ti.Placeholder = "Type here and press Enter..."
	ti.Prompt = "> "
	ti.CharLimit = 200

	return Model{
		ctrl:     ctrl,
		buf:      buf,
		viewport: viewport.New(80, 20),
		input:    ti,
	}
}

// Init plays the intro once at load, even though the popup starts hidden.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitFor(m.ctrl.Intro()))
}

// waitFor turns a narration's done channel into a message. A nil channel
// (dropped input) produces no command.
func waitFor(done <-chan struct{}) tea.Cmd {
	if done == nil {
		return nil
	}
	return func() tea.Msg {
		<-done
		return narrationDoneMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case refreshMsg:
		m.viewport.SetContent(textStyle.Render(m.buf.String()))
		if msg.scroll {
			m.viewport.GotoBottom()
		}
		return m, nil

	case narrationDoneMsg:
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if !m.open {
			return m.updateLanding(msg)
		}
		return m.updatePopup(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateLanding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.open = true
		return m, tea.Batch(m.input.Focus(), waitFor(m.ctrl.Intro()))
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updatePopup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// Hiding the popup leaves the game where it was.
		m.open = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		done := m.ctrl.Submit(m.input.Value())
		if done == nil {
			return m, nil
		}
		m.input.Reset()
		return m, waitFor(done)
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Open reports whether the popup terminal is showing.
func (m Model) Open() bool {
	return m.open
}

func (m *Model) resize() {
	// border + padding on each side
	w := m.width - 4
	// border, title, status line, input, hint
	h := m.height - 6
	if w < 10 {
		w = 10
	}
	if h < 3 {
		h = 3
	}
	m.viewport.Width = w
	m.viewport.Height = h
	m.input.Width = w - len(m.input.Prompt) - 1
}

func (m Model) View() string {
	if !m.open {
		return lipgloss.JoinVertical(lipgloss.Left,
			"",
			titleStyle.Render("  AI Awakening"),
			dimStyle.Render("  Discover how AI works, one level at a time."),
			"",
			"  Press "+titleStyle.Render("Enter")+" to open the AI terminal, "+titleStyle.Render("q")+" to quit.",
		)
	}

	s := m.ctrl.State()
	status := "not started"
	if s.Started {
		status = fmt.Sprintf("Part %d · Level %d · Knowledge Points %d", s.Part, s.Level, s.KnowledgePoints)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("AI Awakening"),
		m.viewport.View(),
		dimStyle.Render(status),
		m.input.View(),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		popupStyle.Render(body),
		dimStyle.Render(" Enter: submit · PgUp/PgDn: scroll · Esc: close · Ctrl+C: quit"),
	)
}

// Run drives the model until the player quits. Buffer changes made by the
// narration goroutines are forwarded into the program as refresh messages.
func Run(ctrl *game.Controller, buf *typewriter.Buffer) error {
	p := tea.NewProgram(New(ctrl, buf), tea.WithAltScreen())
	buf.OnChange(func(scroll bool) {
		p.Send(refreshMsg{scroll: scroll})
	})
	defer buf.OnChange(nil)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
