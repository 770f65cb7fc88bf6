package ui

import (
	"context"
	"fmt"
	"strings"

	"news-app/backend/app/dto"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Listings in the order tab cycles through them.
var listings = []string{"pending", "approved", "all"}

type DashboardModel struct {
	Session *Session
	Table   table.Model
	Items   []dto.NewsResponse
	List    int
	Status  string
	Err     error
}

type newsLoadedMsg struct {
	List  string
	Items []dto.NewsResponse
	Err   error
}

// NewsSelectedMsg opens the detail view for one article.
type NewsSelectedMsg struct{ Item dto.NewsResponse }

func NewDashboardModel(s *Session, width, height int) DashboardModel {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Title", Width: 40},
		{Title: "Status", Width: 10},
		{Title: "Publish", Width: 12},
		{Title: "Author", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 5)),
	)

	sStyle := table.DefaultStyles()
	sStyle.Header = sStyle.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	sStyle.Selected = sStyle.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(sStyle)

	return DashboardModel{
		Session: s,
		Table:   t,
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return m.LoadCmd()
}

func (m DashboardModel) current() string { return listings[m.List] }

func (m DashboardModel) LoadCmd() tea.Cmd {
	s, list := m.Session, m.current()
	return func() tea.Msg {
		items, err := s.ListNews(context.Background(), list)
		return newsLoadedMsg{List: list, Items: items, Err: err}
	}
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.Status = "refreshing..."
			return m, m.LoadCmd()
		case "tab":
			m.List = (m.List + 1) % len(listings)
			m.Items = nil
			m.Table.SetRows(nil)
			m.Status = "loading " + m.current() + "..."
			return m, m.LoadCmd()
		case "enter":
			if i := m.Table.Cursor(); i >= 0 && i < len(m.Items) {
				item := m.Items[i]
				return m, func() tea.Msg { return NewsSelectedMsg{Item: item} }
			}
			return m, nil
		}

	case newsLoadedMsg:
		if msg.List != m.current() {
			// a late answer for a listing we already left
			return m, nil
		}
		if msg.Err != nil {
			m.Err = msg.Err
			m.Status = ""
			return m, nil
		}
		m.Err = nil
		m.Items = msg.Items
		m.Status = fmt.Sprintf("%d %s article(s)", len(msg.Items), msg.List)
		rows := make([]table.Row, 0, len(msg.Items))
		for _, n := range msg.Items {
			rows = append(rows, table.Row{fmt.Sprint(n.ID), n.Title, n.Status, n.PublishDate, n.AuthorName})
		}
		m.Table.SetRows(rows)
		if m.Table.Cursor() >= len(rows) {
			m.Table.SetCursor(max(len(rows)-1, 0))
		}
		return m, nil
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m DashboardModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("News Moderation - "+m.Session.Username) + "\n\n")

	tabs := make([]string, 0, len(listings))
	for i, l := range listings {
		if i == m.List {
			tabs = append(tabs, activeTabStyle.Render(l))
		} else {
			tabs = append(tabs, tabStyle.Render(l))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("enter: open  tab: switch list  r: refresh  q: quit"))

	if m.Status != "" {
		b.WriteString("\n" + statusMessageStyle(m.Status))
	}
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
