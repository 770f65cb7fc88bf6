package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"news-app/backend/app/db"
	jwtutil "news-app/backend/app/jwt"
	"news-app/backend/app/models"
	"news-app/backend/app/repo"

	"gorm.io/gorm"
)

type fixture struct {
	gdb     *gorm.DB
	users   *UserService
	auth    *AuthService
	news    *NewsService
	signer  *jwtutil.Signer
	revoked *memStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb, err := db.Connect(db.Config{Driver: "sqlite", Path: ":memory:"})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	signer := &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "news-test", ExpMin: 15, RefreshExpMin: 60}
	store := newMemStore()
	users := NewUserService(repo.NewUserRepository(gdb), repo.NewRoleRepository(gdb))
	return &fixture{
		gdb:     gdb,
		users:   users,
		auth:    NewAuthService(users, signer, store),
		news:    NewNewsService(repo.NewNewsRepository(gdb)),
		signer:  signer,
		revoked: store,
	}
}

// mustUser registers a user directly with the given roles.
func (f *fixture) mustUser(t *testing.T, username string, roles ...models.RoleName) *models.User {
	t.Helper()
	u, err := f.users.register(username, username+"@example.com", "secret1", nil, roles)
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return u
}

func fixedClock(day string) func() time.Time {
	t, err := time.Parse("2006-01-02 15:04", day+" 10:30")
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func assertKind(t *testing.T, err, kind error) {
	t.Helper()
	if !errors.Is(err, kind) {
		t.Fatalf("err = %v, want kind %v", err, kind)
	}
}

type memStore struct {
	mu  sync.Mutex
	ids map[string]time.Duration
}

func newMemStore() *memStore { return &memStore{ids: map[string]time.Duration{}} }

func (m *memStore) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ids[jti] = ttl
	return nil
}

func (m *memStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.ids[jti]
	return ok, nil
}
