package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateLogin state = iota
	stateDashboard
	stateDetail
)

type RootModel struct {
	State     state
	Session   *Session
	Login     LoginModel
	Dashboard DashboardModel
	Detail    NewsDetailModel
	Quitting  bool
	width     int
	height    int
}

func NewRootModel(s *Session) RootModel {
	return RootModel{
		State:   stateLogin,
		Session: s,
		Login:   NewLoginModel(s),
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) logout() tea.Msg {
	if m.State == stateLogin {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_ = m.Session.Logout(ctx)
	return nil
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.Dashboard.Table.SetHeight(max(msg.Height-10, 5))
		m.Detail.Body.Width = max(msg.Width-4, 20)
		m.Detail.Body.Height = max(msg.Height-8, 5)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			m.logout()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch m.State {
	case stateLogin:
		if res, ok := msg.(loginResultMsg); ok && res.Err == nil {
			m.State = stateDashboard
			m.Dashboard = NewDashboardModel(m.Session, m.width, m.height)
			return m, m.Dashboard.Init()
		}
		m.Login, cmd = m.Login.Update(msg)

	case stateDashboard:
		if sel, ok := msg.(NewsSelectedMsg); ok {
			m.State = stateDetail
			m.Detail = NewNewsDetailModel(m.Session, sel.Item, m.width, m.height)
			return m, m.Detail.Init()
		}
		if k, ok := msg.(tea.KeyMsg); ok && k.String() == "q" {
			m.Quitting = true
			m.logout()
			return m, tea.Quit
		}
		m.Dashboard, cmd = m.Dashboard.Update(msg)

	case stateDetail:
		if _, ok := msg.(BackToDashboardMsg); ok {
			m.State = stateDashboard
			// the article may have changed or be gone
			return m, m.Dashboard.LoadCmd()
		}
		m.Detail, cmd = m.Detail.Update(msg)
	}
	return m, cmd
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Bye!\n"
	}
	switch m.State {
	case stateLogin:
		return m.Login.View()
	case stateDashboard:
		return m.Dashboard.View()
	case stateDetail:
		return m.Detail.View()
	}
	return "Unknown state"
}
