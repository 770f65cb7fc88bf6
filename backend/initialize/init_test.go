package initialize

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"news-app/backend/config"
)

func TestBuildFromConfig(t *testing.T) {
	app, err := BuildFromConfig(config.Config{
		DB:    config.DB{Driver: "sqlite", Path: ":memory:"},
		JWT:   config.JWT{Secret: "s", Issuer: "news-test", AccessExpMin: 5, RefreshExpHours: 1},
		Admin: config.Admin{Username: "admin", Email: "admin@example.com", Password: "admin123"},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer app.Close()

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Code != http.StatusOK || rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("ping = %d, headers %v", rec.Code, rec.Header())
	}

	rec = httptest.NewRecorder()
	body := strings.NewReader(`{"username":"admin","password":"admin123"}`)
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", body))
	if rec.Code != http.StatusOK {
		t.Fatalf("bootstrap admin login = %d %s", rec.Code, rec.Body.String())
	}
}

func TestBuildReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "db:\n  driver: sqlite\n  path: \":memory:\"\nnews:\n  sweep_interval: 5m\n  writer_delete_own_only: true\nlog:\n  level: warn\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	app, err := Build(path)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer app.Close()
	if app.Sweeper.Interval.Minutes() != 5 || !app.News.WriterOwnOnly {
		t.Errorf("config not applied: %v %v", app.Sweeper.Interval, app.News.WriterOwnOnly)
	}
	SetLevel("info")
}
