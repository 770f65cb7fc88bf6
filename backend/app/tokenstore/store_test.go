package tokenstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNoop(t *testing.T) {
	var s Store = Noop{}
	ctx := context.Background()
	if err := s.Revoke(ctx, "abc", time.Minute); err != nil {
		t.Fatal(err)
	}
	if revoked, err := s.IsRevoked(ctx, "abc"); err != nil || revoked {
		t.Fatalf("noop revoked = %v, %v", revoked, err)
	}
}

// TestRedisStore needs a reachable redis; set NEWS_TEST_REDIS_ADDR to run it.
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("NEWS_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("NEWS_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	rdb, err := Connect(ctx, addr, "", 0)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer rdb.Close()

	s := NewRedisStore(rdb)
	jti := uuid.NewString()
	if revoked, err := s.IsRevoked(ctx, jti); err != nil || revoked {
		t.Fatalf("fresh id revoked = %v, %v", revoked, err)
	}
	if err := s.Revoke(ctx, jti, time.Minute); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if revoked, err := s.IsRevoked(ctx, jti); err != nil || !revoked {
		t.Fatalf("revoked = %v, %v", revoked, err)
	}
	ttl, err := rdb.TTL(ctx, keyPrefix+jti).Result()
	if err != nil || ttl <= 0 || ttl > time.Minute {
		t.Errorf("ttl = %v, %v", ttl, err)
	}

	// expired tokens need no entry
	gone := uuid.NewString()
	if err := s.Revoke(ctx, gone, 0); err != nil {
		t.Fatal(err)
	}
	if revoked, _ := s.IsRevoked(ctx, gone); revoked {
		t.Error("zero ttl should not store anything")
	}
	rdb.Del(ctx, keyPrefix+jti)
}
