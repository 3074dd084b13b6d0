package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func setupTokenStore(t *testing.T, ttl time.Duration) (*RedisTokenStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := NewRedisTokenStore("redis://"+mr.Addr(), ttl)
	if err != nil {
		t.Fatalf("create token store: %v", err)
	}
	return store, mr
}

func TestTokenStore_IssueAndLookup(t *testing.T) {
	store, _ := setupTokenStore(t, time.Hour)
	defer store.Close()
	ctx := context.Background()

	token, err := store.Issue(ctx, Principal{ID: "u1", Email: "admin@vertexit.dev", Name: "Admin"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	p, err := store.Lookup(ctx, token)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if p.ID != "u1" || p.Email != "admin@vertexit.dev" {
		t.Fatalf("unexpected principal %+v", p)
	}
}

func TestTokenStore_LookupUnknownToken(t *testing.T) {
	store, _ := setupTokenStore(t, time.Hour)
	defer store.Close()

	_, err := store.Lookup(context.Background(), "bogus")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestTokenStore_Expiry(t *testing.T) {
	store, mr := setupTokenStore(t, time.Minute)
	defer store.Close()
	ctx := context.Background()

	token, err := store.Issue(ctx, Principal{ID: "u1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := store.Lookup(ctx, token); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected expired token to be invalid, got %v", err)
	}
}

func TestTokenStore_Revoke(t *testing.T) {
	store, _ := setupTokenStore(t, time.Hour)
	defer store.Close()
	ctx := context.Background()

	token, err := store.Issue(ctx, Principal{ID: "u1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := store.Revoke(ctx, token); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := store.Lookup(ctx, token); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected revoked token to be invalid, got %v", err)
	}
}
