package contentcache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCached_ServesFromCacheUntilInvalidated(t *testing.T) {
	cache := New(time.Minute)

	calls := 0
	fetch := Cached(cache, "services", func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"cloud", "devops"}, nil
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		got, err := fetch(ctx)
		if err != nil {
			t.Fatalf("fetch: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("got %d items, want 2", len(got))
		}
	}
	if calls != 1 {
		t.Fatalf("fetcher called %d times, want 1", calls)
	}

	cache.Invalidate("services")
	if _, err := fetch(ctx); err != nil {
		t.Fatalf("fetch after invalidate: %v", err)
	}
	if calls != 2 {
		t.Fatalf("fetcher called %d times after invalidate, want 2", calls)
	}
}

func TestCached_DoesNotCacheFailures(t *testing.T) {
	cache := New(time.Minute)

	calls := 0
	fetch := Cached(cache, "jobs", func(ctx context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("store down")
		}
		return 7, nil
	})

	ctx := context.Background()
	if _, err := fetch(ctx); err == nil {
		t.Fatal("expected error on first fetch")
	}
	got, err := fetch(ctx)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
	if calls != 2 {
		t.Fatalf("fetcher called %d times, want 2", calls)
	}
}

func TestFlush(t *testing.T) {
	cache := New(time.Minute)

	calls := 0
	fetch := Cached(cache, "faqs", func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})

	ctx := context.Background()
	fetch(ctx)
	cache.Flush()
	fetch(ctx)
	if calls != 2 {
		t.Fatalf("fetcher called %d times, want 2", calls)
	}
}
