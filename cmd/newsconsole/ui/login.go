package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type LoginModel struct {
	Session  *Session
	Inputs   []textinput.Model
	FocusIdx int
	Err      error
	busy     bool
}

const (
	inputURL = iota
	inputUsername
	inputPassword
)

// loginResultMsg reports the outcome of a login attempt.
type loginResultMsg struct{ Err error }

func NewLoginModel(s *Session) LoginModel {
	inputs := make([]textinput.Model, 3)

	inputs[inputURL] = textinput.New()
	inputs[inputURL].Placeholder = "http://127.0.0.1:8080"
	inputs[inputURL].Prompt = "API URL: "
	inputs[inputURL].SetValue(s.BaseURL)

	inputs[inputUsername] = textinput.New()
	inputs[inputUsername].Placeholder = "admin"
	inputs[inputUsername].Prompt = "Username: "
	inputs[inputUsername].Focus()

	inputs[inputPassword] = textinput.New()
	inputs[inputPassword].Placeholder = "password"
	inputs[inputPassword].EchoMode = textinput.EchoPassword
	inputs[inputPassword].Prompt = "Password: "

	return LoginModel{
		Session:  s,
		Inputs:   inputs,
		FocusIdx: inputUsername,
	}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.Inputs))

	switch msg := msg.(type) {
	case loginResultMsg:
		m.busy = false
		m.Err = msg.Err
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.FocusIdx == len(m.Inputs)-1 {
				if m.busy {
					return m, nil
				}
				m.busy = true
				m.Err = nil
				return m, m.LoginCmd()
			}
			m.nextInput()
		case tea.KeyTab, tea.KeyDown:
			m.nextInput()
		case tea.KeyShiftTab, tea.KeyUp:
			m.prevInput()
		}
	}

	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *LoginModel) nextInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx = (m.FocusIdx + 1) % len(m.Inputs)
	m.Inputs[m.FocusIdx].Focus()
}

func (m *LoginModel) prevInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx--
	if m.FocusIdx < 0 {
		m.FocusIdx = len(m.Inputs) - 1
	}
	m.Inputs[m.FocusIdx].Focus()
}

// LoginCmd captures the form values and logs in off the UI goroutine.
func (m LoginModel) LoginCmd() tea.Cmd {
	url := strings.TrimRight(strings.TrimSpace(m.Inputs[inputURL].Value()), "/")
	username := strings.TrimSpace(m.Inputs[inputUsername].Value())
	password := m.Inputs[inputPassword].Value()
	s := m.Session
	return func() tea.Msg {
		if url == "" || username == "" || password == "" {
			return loginResultMsg{Err: fmt.Errorf("url, username and password are required")}
		}
		s.BaseURL = url
		if err := s.Login(context.Background(), username, password); err != nil {
			return loginResultMsg{Err: fmt.Errorf("login failed: %w", err)}
		}
		return loginResultMsg{}
	}
}

func (m LoginModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("News Moderation - Login") + "\n\n")
	for i := range m.Inputs {
		b.WriteString(m.Inputs[i].View())
		if i < len(m.Inputs)-1 {
			b.WriteRune('\n')
		}
	}
	b.WriteString("\n\n")
	if m.busy {
		b.WriteString(focusedStyle.Render("Signing in..."))
	} else {
		b.WriteString(blurredStyle.Render("Press Tab to change fields, Enter to submit"))
	}
	if m.Err != nil {
		b.WriteString("\n\n")
		b.WriteString(errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
