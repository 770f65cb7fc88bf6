package ui

import (
	"context"
	"fmt"
	"strings"

	"news-app/backend/app/dto"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// BackToDashboardMsg signals transition back to dashboard
type BackToDashboardMsg struct{}

type NewsDetailModel struct {
	Session *Session
	Item    dto.NewsResponse
	Body    viewport.Model
	Status  string
	Err     error
	deleted bool
}

type actionDoneMsg struct {
	Item    *dto.NewsResponse
	Message string
	Deleted bool
	Err     error
}

func NewNewsDetailModel(s *Session, item dto.NewsResponse, width, height int) NewsDetailModel {
	vp := viewport.New(max(width-4, 20), max(height-8, 5))
	m := NewsDetailModel{Session: s, Item: item, Body: vp}
	m.Body.SetContent(renderNews(item))
	return m
}

func renderNews(n dto.NewsResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("ID:"), n.ID)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Status:"), statusStyle(n.Status).Render(n.Status))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Publish date:"), n.PublishDate)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Author:"), n.AuthorName)
	if n.ImageURL != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Image:"), n.ImageURL)
	}
	fmt.Fprintf(&b, "\n%s\n%s\n\n%s\n", labelStyle.Render(n.Title), n.Description, labelStyle.Render("Arabic"))
	fmt.Fprintf(&b, "%s\n%s\n", n.TitleAr, n.DescriptionAr)
	return b.String()
}

func (m NewsDetailModel) Init() tea.Cmd { return nil }

func (m NewsDetailModel) action(name string) tea.Cmd {
	s, id := m.Session, m.Item.ID
	return func() tea.Msg {
		ctx := context.Background()
		switch name {
		case "approve":
			n, err := s.Approve(ctx, id)
			return actionDoneMsg{Item: n, Message: "approved", Err: err}
		case "reject":
			n, err := s.Reject(ctx, id)
			return actionDoneMsg{Item: n, Message: "rejected", Err: err}
		default:
			msg, err := s.Delete(ctx, id)
			return actionDoneMsg{Message: msg, Deleted: err == nil, Err: err}
		}
	}
}

func (m NewsDetailModel) Update(msg tea.Msg) (NewsDetailModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "backspace":
			return m, func() tea.Msg { return BackToDashboardMsg{} }
		case "a":
			if !m.deleted {
				m.Status = "approving..."
				return m, m.action("approve")
			}
		case "x":
			if !m.deleted {
				m.Status = "rejecting..."
				return m, m.action("reject")
			}
		case "d":
			if !m.deleted {
				m.Status = "deleting..."
				return m, m.action("delete")
			}
		}

	case actionDoneMsg:
		if msg.Err != nil {
			m.Err, m.Status = msg.Err, ""
			return m, nil
		}
		m.Err = nil
		m.Status = msg.Message
		if msg.Item != nil {
			m.Item = *msg.Item
			m.Body.SetContent(renderNews(m.Item))
		}
		if msg.Deleted {
			m.deleted = true
		}
		return m, nil
	}

	m.Body, cmd = m.Body.Update(msg)
	return m, cmd
}

func (m NewsDetailModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("News #%d", m.Item.ID)) + "\n\n")
	b.WriteString(m.Body.View())
	b.WriteString("\n\n")
	if m.deleted {
		b.WriteString(blurredStyle.Render("esc: back"))
	} else {
		b.WriteString(blurredStyle.Render("a: approve  x: reject  d: delete  esc: back"))
	}
	if m.Status != "" {
		b.WriteString("\n" + statusMessageStyle(m.Status))
	}
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
