package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxCaptainName bounds the length of a captain name.
const maxCaptainName = 24

// CaptainModel asks for the captain's name.
type CaptainModel struct {
	input    textinput.Model
	width    int
	name     string
	quitting bool
}

// NewCaptainModel creates the prompt. suggestion prefills the input.
func NewCaptainModel(suggestion string, width int) CaptainModel {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = maxCaptainName
	ti.Width = maxCaptainName
	ti.SetValue(suggestion)
	ti.Focus()

	return CaptainModel{input: ti, width: width}
}

// Init starts the cursor blink.
func (m CaptainModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt.
func (m CaptainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if name := strings.TrimSpace(m.input.Value()); name != "" {
				m.name = name
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m CaptainModel) View() string {
	if m.quitting || m.name != "" {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("Your name, Captain?", m.width, titleStyle))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.input.View(), m.width, lipgloss.NewStyle()))
	b.WriteString("\n\n")
	b.WriteString(centerText("Enter: confirm  |  Esc: quit", m.width, dimStyle))
	b.WriteString("\n")
	return b.String()
}

// Name returns the confirmed name, empty if the prompt was abandoned.
func (m CaptainModel) Name() string {
	return m.name
}

// AskCaptain runs the prompt and returns the entered name. The name is
// empty if the player quit.
func AskCaptain(suggestion string, width int) (string, error) {
	p := tea.NewProgram(NewCaptainModel(suggestion, width), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := finalModel.(CaptainModel)
	if !ok {
		return "", nil
	}
	return m.Name(), nil
}
