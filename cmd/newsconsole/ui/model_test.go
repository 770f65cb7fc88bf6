package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"news-app/backend/app/dto"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDashboardLoadsAndSelects(t *testing.T) {
	m := NewDashboardModel(&Session{Username: "admin"}, 100, 30)
	items := []dto.NewsResponse{{ID: 7, Title: "first", Status: "PENDING"}, {ID: 9, Title: "second", Status: "PENDING"}}
	m, _ = m.Update(newsLoadedMsg{List: "pending", Items: items})
	if len(m.Table.Rows()) != 2 || !strings.Contains(m.View(), "2 pending") {
		t.Fatalf("rows = %v", m.Table.Rows())
	}

	_, cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	sel, ok := cmd().(NewsSelectedMsg)
	if !ok || sel.Item.ID != 7 {
		t.Fatalf("selected = %+v", sel)
	}

	m, cmd = m.Update(key("tab"))
	if m.current() != "approved" || cmd == nil || len(m.Table.Rows()) != 0 {
		t.Fatalf("tab: list %s rows %d", m.current(), len(m.Table.Rows()))
	}
	// a late answer for the previous listing is dropped
	m, _ = m.Update(newsLoadedMsg{List: "pending", Items: items})
	if len(m.Table.Rows()) != 0 {
		t.Errorf("stale listing applied")
	}
	m, _ = m.Update(newsLoadedMsg{List: "approved", Err: errors.New("Access Denied (403)")})
	if !strings.Contains(m.View(), "Access Denied") {
		t.Errorf("error not shown")
	}
}

func TestDetailActions(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.Login(context.Background(), "admin", "pw"); err != nil {
		t.Fatal(err)
	}
	m := NewNewsDetailModel(s, dto.NewsResponse{ID: 1, Title: "story", Status: "PENDING"}, 80, 24)
	if !strings.Contains(m.View(), "story") {
		t.Fatal("title not rendered")
	}

	m, cmd := m.Update(key("a"))
	if cmd == nil {
		t.Fatal("approve produced no command")
	}
	m, _ = m.Update(cmd())
	if m.Item.Status != "APPROVED" || m.Err != nil {
		t.Fatalf("after approve: %+v %v", m.Item, m.Err)
	}

	m, cmd = m.Update(key("d"))
	m, _ = m.Update(cmd())
	if !m.deleted || !strings.Contains(m.View(), "News deleted successfully.") {
		t.Fatalf("after delete: deleted=%v err=%v", m.deleted, m.Err)
	}
	if _, cmd := m.Update(key("a")); cmd != nil {
		if _, ok := cmd().(actionDoneMsg); ok {
			t.Error("action allowed on deleted article")
		}
	}

	_, cmd = m.Update(key("esc"))
	if _, ok := cmd().(BackToDashboardMsg); !ok {
		t.Error("esc did not go back")
	}
}

func TestRootLoginTransition(t *testing.T) {
	root := NewRootModel(&Session{BaseURL: "http://example.invalid"})
	next, _ := root.Update(loginResultMsg{Err: errors.New("login failed: bad credentials")})
	rm := next.(RootModel)
	if rm.State != stateLogin || !strings.Contains(rm.View(), "bad credentials") {
		t.Fatalf("state %v view %q", rm.State, rm.View())
	}
	next, cmd := rm.Update(loginResultMsg{})
	rm = next.(RootModel)
	if rm.State != stateDashboard || cmd == nil {
		t.Fatalf("state = %v", rm.State)
	}
}
