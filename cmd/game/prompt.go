package main

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var errPromptCancelled = errors.New("prompt cancelled")

var (
	promptTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700"))
	promptHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	promptFocusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7DD3FC"))
)

// credentialsModel asks for a login and a password
type credentialsModel struct {
	title     string
	inputs    []textinput.Model
	focus     int
	done      bool
	cancelled bool
}

func newCredentialsModel(title, login string) credentialsModel {
	user := textinput.New()
	user.Placeholder = "login"
	user.CharLimit = 32
	user.SetValue(login)

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.CharLimit = 64
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '*'

	m := credentialsModel{title: title, inputs: []textinput.Model{user, pass}}
	if login != "" {
		m.focus = 1
	}
	m.inputs[m.focus].PromptStyle = promptFocusStyle
	m.inputs[m.focus].Focus()
	return m
}

func (m credentialsModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m credentialsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.focus == len(m.inputs)-1 {
				m.done = true
				return m, tea.Quit
			}
			cmd := m.move(1)
			return m, cmd
		case tea.KeyTab, tea.KeyDown:
			cmd := m.move(1)
			return m, cmd
		case tea.KeyShiftTab, tea.KeyUp:
			cmd := m.move(-1)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// move shifts focus and wraps around
func (m *credentialsModel) move(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.inputs[m.focus].PromptStyle = lipgloss.NewStyle()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].PromptStyle = promptFocusStyle
	return m.inputs[m.focus].Focus()
}

func (m credentialsModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(promptTitleStyle.Render(m.title))
	b.WriteString("\n\n")
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(promptHelpStyle.Render("tab: next field  enter: submit  esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

func (m credentialsModel) values() (string, string) {
	return strings.TrimSpace(m.inputs[0].Value()), m.inputs[1].Value()
}

// promptCredentials runs the prompt on the terminal
func promptCredentials(title, login string) (string, string, error) {
	final, err := tea.NewProgram(newCredentialsModel(title, login)).Run()
	if err != nil {
		return "", "", err
	}
	m := final.(credentialsModel)
	if m.cancelled {
		return "", "", errPromptCancelled
	}
	user, pass := m.values()
	return user, pass, nil
}
