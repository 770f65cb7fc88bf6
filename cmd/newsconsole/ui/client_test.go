package ui

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"news-app/backend/app/dto"
)

// fakeAPI accepts access token "a1" until expire is set, then only "a2",
// which the refresh endpoint hands out for refresh token "r1".
type fakeAPI struct {
	expired   atomic.Bool
	refreshes atomic.Int32
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "pw" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(dto.MessageResponse{Message: "Bad credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(dto.JwtResponse{AccessToken: "a1", RefreshToken: "r1", Username: req.Username, Roles: []string{"ROLE_ADMIN"}})
	})
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		f.refreshes.Add(1)
		var req dto.RefreshRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.RefreshToken != "r1" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(dto.MessageResponse{Message: "Invalid refresh token"})
			return
		}
		_ = json.NewEncoder(w).Encode(dto.RefreshResponse{AccessToken: "a2", TokenType: "Bearer"})
	})
	authed := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			want := "Bearer a1"
			if f.expired.Load() {
				want = "Bearer a2"
			}
			if r.Header.Get("Authorization") != want {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			h(w, r)
		}
	}
	mux.HandleFunc("GET /api/news/{list}", authed(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]dto.NewsResponse{{ID: 1, Title: r.PathValue("list"), Status: "PENDING"}})
	}))
	mux.HandleFunc("PUT /api/news/{id}/approve", authed(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(dto.NewsResponse{ID: 1, Status: "APPROVED"})
	}))
	mux.HandleFunc("DELETE /api/news/{id}", authed(func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "1" {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(dto.MessageResponse{Message: "News not found"})
			return
		}
		_, _ = w.Write([]byte("News deleted successfully."))
	}))
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(dto.MessageResponse{Message: "User logged out successfully!"})
	})
	return mux
}

func newTestSession(t *testing.T) (*Session, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{}
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	return NewSession(srv.URL+"/", 5*time.Second), api
}

func TestSessionLogin(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()
	if err := s.Login(ctx, "admin", "nope"); err == nil {
		t.Fatal("bad password accepted")
	}
	if err := s.Login(ctx, "admin", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if s.Username != "admin" || len(s.Roles) != 1 {
		t.Errorf("session = %+v", s)
	}
}

func TestSessionRefreshesOnce(t *testing.T) {
	s, api := newTestSession(t)
	ctx := context.Background()
	if err := s.Login(ctx, "admin", "pw"); err != nil {
		t.Fatal(err)
	}

	items, err := s.ListNews(ctx, "pending")
	if err != nil || len(items) != 1 || items[0].Title != "pending" {
		t.Fatalf("list = %+v, %v", items, err)
	}
	if api.refreshes.Load() != 0 {
		t.Errorf("refreshed without need")
	}

	api.expired.Store(true)
	n, err := s.Approve(ctx, 1)
	if err != nil || n.Status != "APPROVED" {
		t.Fatalf("approve after expiry = %+v, %v", n, err)
	}
	if api.refreshes.Load() != 1 {
		t.Errorf("refreshes = %d", api.refreshes.Load())
	}

	msg, err := s.Delete(ctx, 1)
	if err != nil || msg != "News deleted successfully." {
		t.Fatalf("delete = %q, %v", msg, err)
	}
	if _, err := s.Delete(ctx, 2); err == nil || err.Error() != "News not found (404)" {
		t.Errorf("delete missing = %v", err)
	}
}

func TestSessionGivesUpWhenRefreshFails(t *testing.T) {
	s, api := newTestSession(t)
	ctx := context.Background()
	if err := s.Login(ctx, "admin", "pw"); err != nil {
		t.Fatal(err)
	}
	s.refresh = "stale"
	api.expired.Store(true)
	if _, err := s.ListNews(ctx, "all"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v", err)
	}

	if err := s.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if a, r := s.tokens(); a != "" || r != "" {
		t.Errorf("tokens kept after logout: %q %q", a, r)
	}
}
