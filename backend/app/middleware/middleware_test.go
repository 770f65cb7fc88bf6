package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	jwtutil "news-app/backend/app/jwt"
)

type revokedSet map[string]bool

func (s revokedSet) IsRevoked(_ context.Context, jti string) (bool, error) { return s[jti], nil }

func TestAllowed(t *testing.T) {
	tests := []struct {
		name     string
		have     []string
		required []string
		want     bool
	}{
		{"no requirement", nil, nil, true},
		{"match", []string{"ROLE_WRITER"}, []string{"ROLE_WRITER", "ROLE_ADMIN"}, true},
		{"second role matches", []string{"ROLE_NORMAL", "ROLE_ADMIN"}, []string{"ROLE_ADMIN"}, true},
		{"no match", []string{"ROLE_NORMAL"}, []string{"ROLE_WRITER", "ROLE_ADMIN"}, false},
		{"no roles", nil, []string{"ROLE_ADMIN"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(tt.have, tt.required...); got != tt.want {
				t.Errorf("Allowed(%v, %v) = %v", tt.have, tt.required, got)
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	signer := &jwtutil.Signer{Secret: []byte("s"), Issuer: "news-test", ExpMin: 5, RefreshExpMin: 10}
	revoked := revokedSet{}
	a := &Auth{Signer: signer, Revoked: revoked}

	var seen *jwtutil.Claims
	h := a.RequireRoles("ROLE_ADMIN")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetClaims(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	admin, _ := signer.SignAccess(1, "root", []string{"ROLE_ADMIN"})
	reader, _ := signer.SignAccess(2, "rita", []string{"ROLE_NORMAL"})
	refresh, _ := signer.SignRefresh(1, "root", []string{"ROLE_ADMIN"})
	gone, _ := signer.SignAccess(1, "root", []string{"ROLE_ADMIN"})
	goneClaims, _ := signer.Parse(gone)
	revoked[goneClaims.ID] = true

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage", "Bearer abc", http.StatusUnauthorized},
		{"refresh token", "Bearer " + refresh, http.StatusUnauthorized},
		{"revoked", "Bearer " + gone, http.StatusUnauthorized},
		{"wrong role", "Bearer " + reader, http.StatusForbidden},
		{"admin", "Bearer " + admin, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.want, rec.Body.String())
			}
			if tt.want == http.StatusNoContent && (seen == nil || seen.Username != "root") {
				t.Errorf("claims not in context: %+v", seen)
			}
		})
	}
}

func TestRequestIDAndLogging(t *testing.T) {
	h := RequestID(Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(RequestIDHeader) == "" {
			t.Error("request id not set before handler")
		}
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTeapot || rec.Header().Get(RequestIDHeader) == "" {
		t.Fatalf("status %d, id %q", rec.Code, rec.Header().Get(RequestIDHeader))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q", got)
	}
}

func TestOptionalAuth(t *testing.T) {
	signer := &jwtutil.Signer{Secret: []byte("s"), ExpMin: 5}
	a := &Auth{Signer: signer}
	var seen *jwtutil.Claims
	h := a.OptionalAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetClaims(r.Context())
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	if seen != nil {
		t.Errorf("claims without token: %+v", seen)
	}

	tok, _ := signer.SignAccess(3, "olga", nil)
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen == nil || seen.Username != "olga" {
		t.Errorf("claims = %+v", seen)
	}
}
