package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// LoserMessage is the headline of the end-of-game screen.
const LoserMessage = "You are a loser!"

// overKeyMap only feeds the help line; any key closes the screen.
type overKeyMap struct {
	Exit key.Binding
}

func (k overKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Exit}
}

func (k overKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Exit}}
}

// GameOverModel is the Bubble Tea model for the end-of-game screen.
type GameOverModel struct {
	result snake.Result
	keys   overKeyMap
	help   help.Model
	width  int
	height int
	done   bool
}

// NewGameOverModel creates the end screen for res.
func NewGameOverModel(res snake.Result, width, height int) GameOverModel {
	return GameOverModel{
		result: res,
		keys: overKeyMap{
			Exit: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("any key", "exit"),
			),
		},
		help:   help.New(),
		width:  width,
		height: height,
	}
}

// Init initializes the model.
func (m GameOverModel) Init() tea.Cmd {
	return nil
}

// Update closes the screen on the first key press.
func (m GameOverModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.done = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// Done reports whether a key was pressed.
func (m GameOverModel) Done() bool {
	return m.done
}

// View renders the end screen.
func (m GameOverModel) View() string {
	if m.done {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("9"))
	statStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(LoserMessage))
	b.WriteString("\n\n")
	b.WriteString(statStyle.Render(fmt.Sprintf("Score: %d   Length: %d", m.result.Score, m.result.Length)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.reasonLine()))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(b.String())

	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m GameOverModel) reasonLine() string {
	switch m.result.Reason {
	case snake.EndQuit:
		return fmt.Sprintf("Gave up after %d ticks", m.result.Ticks)
	case snake.EndError:
		return fmt.Sprintf("Terminal lost after %d ticks", m.result.Ticks)
	default:
		return fmt.Sprintf("Crashed after %d ticks", m.result.Ticks)
	}
}

// RunGameOver shows the end screen until a key is pressed.
func RunGameOver(res snake.Result, width, height int, opts ...tea.ProgramOption) error {
	model := NewGameOverModel(res, width, height)

	p := tea.NewProgram(
		model,
		append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...,
	)

	_, err := p.Run()
	return err
}
