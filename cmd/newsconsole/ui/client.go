package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"news-app/backend/app/dto"
)

// ErrUnauthorized is returned once the session can no longer authenticate,
// even after trying the refresh token.
var ErrUnauthorized = errors.New("session expired, please log in again")

// Session talks to the news API with the tokens of one logged in user.
type Session struct {
	BaseURL  string
	Username string
	Roles    []string

	http    *http.Client
	mu      sync.Mutex
	access  string
	refresh string
}

func NewSession(baseURL string, timeout time.Duration) *Session {
	return &Session{
		BaseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (s *Session) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access, s.refresh
}

// Login exchanges credentials for a token pair and keeps it.
func (s *Session) Login(ctx context.Context, username, password string) error {
	var res dto.JwtResponse
	status, err := s.send(ctx, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: username, Password: password}, &res)
	if status == http.StatusUnauthorized {
		return errors.New("bad credentials")
	}
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.access, s.refresh = res.AccessToken, res.RefreshToken
	s.Username, s.Roles = res.Username, res.Roles
	s.mu.Unlock()
	return nil
}

// Logout tells the server to revoke the tokens and forgets them locally.
func (s *Session) Logout(ctx context.Context) error {
	access, refresh := s.tokens()
	_, err := s.send(ctx, http.MethodPost, "/api/auth/logout", access, dto.LogoutRequest{RefreshToken: refresh}, nil)
	s.mu.Lock()
	s.access, s.refresh = "", ""
	s.mu.Unlock()
	return err
}

func (s *Session) renew(ctx context.Context) error {
	_, refresh := s.tokens()
	if refresh == "" {
		return ErrUnauthorized
	}
	var res dto.RefreshResponse
	status, err := s.send(ctx, http.MethodPost, "/api/auth/refresh", "", dto.RefreshRequest{RefreshToken: refresh}, &res)
	if err != nil {
		if status == http.StatusBadRequest {
			return ErrUnauthorized
		}
		return err
	}
	s.mu.Lock()
	s.access = res.AccessToken
	s.mu.Unlock()
	return nil
}

// call performs an authenticated request. A 401 triggers one refresh and a
// single retry.
func (s *Session) call(ctx context.Context, method, path string, body, out interface{}) error {
	access, _ := s.tokens()
	status, err := s.send(ctx, method, path, access, body, out)
	if status != http.StatusUnauthorized {
		return err
	}
	if err := s.renew(ctx); err != nil {
		return err
	}
	access, _ = s.tokens()
	status, err = s.send(ctx, method, path, access, body, out)
	if status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return err
}

func (s *Session) send(ctx context.Context, method, path, token string, body, out interface{}) (int, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.BaseURL+path, rd)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if resp.StatusCode >= 300 {
		var msg dto.MessageResponse
		if json.Unmarshal(raw, &msg) == nil && msg.Message != "" {
			return resp.StatusCode, fmt.Errorf("%s (%d)", msg.Message, resp.StatusCode)
		}
		return resp.StatusCode, fmt.Errorf("%s", http.StatusText(resp.StatusCode))
	}
	switch o := out.(type) {
	case nil:
	case *string:
		*o = string(raw)
	default:
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// ListNews fetches one of the news listings: "pending", "approved" or "all".
func (s *Session) ListNews(ctx context.Context, list string) ([]dto.NewsResponse, error) {
	var items []dto.NewsResponse
	err := s.call(ctx, http.MethodGet, "/api/news/"+list, nil, &items)
	return items, err
}

func (s *Session) Approve(ctx context.Context, id uint) (*dto.NewsResponse, error) {
	var n dto.NewsResponse
	if err := s.call(ctx, http.MethodPut, fmt.Sprintf("/api/news/%d/approve", id), nil, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Session) Reject(ctx context.Context, id uint) (*dto.NewsResponse, error) {
	var n dto.NewsResponse
	if err := s.call(ctx, http.MethodPut, fmt.Sprintf("/api/news/%d/reject", id), nil, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// Delete returns the server's confirmation text.
func (s *Session) Delete(ctx context.Context, id uint) (string, error) {
	var msg string
	err := s.call(ctx, http.MethodDelete, fmt.Sprintf("/api/news/%d", id), nil, &msg)
	return msg, err
}
