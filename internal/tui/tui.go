package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/dungeon-escape/internal/command"
	"github.com/tatianab/dungeon-escape/internal/engine"
	"github.com/tatianab/dungeon-escape/internal/world"
)

type sessionState int

const (
	statePlaying sessionState = iota
	stateOver
	stateError
)

// NewEngineFunc builds a fresh session; /restart calls it again.
type NewEngineFunc func() (*engine.Engine, error)

type model struct {
	state     sessionState
	newEngine NewEngineFunc
	engine    *engine.Engine
	textInput textinput.Model
	viewport  viewport.Model
	err       error
	gameLog   string
	width     int
	height    int
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	wonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00D75F")).
			Bold(true)

	lostStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true)
)

func NewModel(newEngine NewEngineFunc) model {
	ti := textinput.New()
	ti.Placeholder = "What do you do?"
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	m := model{
		newEngine: newEngine,
		textInput: ti,
	}
	m.start()
	return m
}

// start replaces the session with a new one.
func (m *model) start() {
	eng, err := m.newEngine()
	if err != nil {
		m.err = err
		m.state = stateError
		return
	}
	m.engine = eng
	m.state = statePlaying
	m.gameLog = m.renderLines(eng.Intro()) + "\n\n"
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.state == stateError {
				return m, tea.Quit
			}
			action := strings.TrimSpace(m.textInput.Value())
			m.textInput.Reset()
			if action == "" {
				if m.state == stateOver {
					return m, tea.Quit
				}
				return m, nil
			}

			if action == "/quit" {
				return m, tea.Quit
			}
			if action == "/restart" {
				m.start()
				m.textInput.Placeholder = "What do you do?"
				m.viewport.SetContent(m.renderLog())
				m.viewport.GotoTop()
				return m, nil
			}
			if m.state == stateOver {
				return m, nil
			}

			logWidth := m.logWidth()
			styledAction := userStyle.Width(logWidth).Render("> " + action)
			m.gameLog += "\n" + styledAction + "\n\n"

			turn := m.engine.ProcessTurn(command.Parse(action))
			m.gameLog += m.renderLines(turn.Lines) + "\n"
			if turn.Status.Terminal() {
				m.state = stateOver
				m.gameLog += "\n" + banner(turn.Status) + "\n"
				m.textInput.Placeholder = "Press Enter to leave, or type /restart"
			}
			m.viewport.SetContent(m.renderLog())
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.viewport.Width == 0 {
			m.viewport = viewport.New(m.logWidth(), msg.Height-6)
		}
		m.viewport.Width = m.logWidth()
		m.viewport.Height = msg.Height - 6
		m.viewport.SetContent(m.renderLog())
		m.viewport.GotoBottom()
	}

	if m.state != stateError {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) View() string {
	var s string

	switch m.state {
	case statePlaying, stateOver:
		logView := m.viewport.View()
		stateView := m.renderState()

		// Join log and state horizontally
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			logView,
			stateView,
		)

		help := helpStyle.Render("Commands: " + strings.Join(command.Words(), ", ") + ", /restart, /quit")

		s = lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			"\n"+m.textInput.View(),
			"\n"+help,
		)

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) renderState() string {
	if m.engine == nil {
		return ""
	}

	r := m.engine.World().Snapshot()

	location := titleStyle.Render("LOCATION") + "\n" + r.Location + "\n\n"

	statsTitle := titleStyle.Render("STATS") + "\n"
	stats := fmt.Sprintf("Health: %d\nCan carry: %d pounds\nStatus: %s\n", r.HP, r.Remaining, m.engine.Status())
	if r.HasKey {
		stats += "Key: yes\n"
	} else {
		stats += "Key: no\n"
	}
	stats += "\n"

	invTitle := titleStyle.Render("INVENTORY") + "\n"
	inventory := ""
	if len(r.Inventory) == 0 {
		inventory = "(empty)\n"
	} else {
		for _, item := range r.Inventory {
			inventory += "- " + item + "\n"
		}
	}
	inventory += "\n"

	weaponsTitle := titleStyle.Render("WEAPONS") + "\n"
	weapons := ""
	if len(r.Weapons) == 0 {
		weapons = "(none)"
	} else {
		for _, w := range r.Weapons {
			weapons += fmt.Sprintf("- %s HP %d\n", w.Name, w.HP)
		}
	}

	content := location + statsTitle + stats + invTitle + inventory + weaponsTitle + weapons

	stateWidth := int(float64(m.width) * 0.23) // Leave some room for padding
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

func (m model) renderLog() string {
	return m.gameLog
}

func (m model) logWidth() int {
	return int(float64(m.width) * 0.75)
}

func (m model) renderLines(lines []string) string {
	text := strings.ReplaceAll(strings.Join(lines, "\n"), "\t", "  ")
	if w := m.logWidth(); w > 0 {
		return gameStyle.Width(w).Render(text)
	}
	return gameStyle.Render(text)
}

func banner(s world.Status) string {
	switch s {
	case world.Won:
		return wonStyle.Render("*** YOU ESCAPED THE DUNGEON ***")
	case world.Lost:
		return lostStyle.Render("*** YOU DIED ***")
	default:
		return helpStyle.Render("*** GAME ENDED ***")
	}
}

// Run starts the interactive program and blocks until the user leaves.
func Run(newEngine NewEngineFunc) error {
	p := tea.NewProgram(NewModel(newEngine), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
