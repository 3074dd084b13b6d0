package docstore

import (
	"context"
	"errors"
	"testing"

	"vertexit-site/internal/domain"
)

type testRecord struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

func TestMemory_CreateAllocatesID(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	id, err := store.CreateDocument(ctx, "things", testRecord{Name: "a", Status: "draft"}, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == "" {
		t.Fatal("expected a non-empty allocated id")
	}

	rec, ok, err := Get[testRecord](ctx, store, "things", id)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if rec.ID != id || rec.Name != "a" {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestMemory_CreateWithExplicitIDIsUpsert(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	if _, err := store.CreateDocument(ctx, "things", testRecord{Name: "first"}, "fixed"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.CreateDocument(ctx, "things", testRecord{Name: "second"}, "fixed"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	docs, err := store.GetCollection(ctx, "things")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document after upsert, got %d", len(docs))
	}
	rec, _, _ := Get[testRecord](ctx, store, "things", "fixed")
	if rec.Name != "second" {
		t.Fatalf("expected replaced document, got %+v", rec)
	}
}

func TestMemory_GetMissingIsNilNotError(t *testing.T) {
	store := NewMemory()
	doc, err := store.GetDocument(context.Background(), "things", "nope")
	if err != nil {
		t.Fatalf("expected no error for missing id, got %v", err)
	}
	if doc != nil {
		t.Fatalf("expected nil document, got %s", doc)
	}
}

func TestMemory_UpdateMergesFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	if _, err := store.CreateDocument(ctx, "things", testRecord{Name: "keep", Status: "draft"}, "x"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.UpdateDocument(ctx, "things", "x", map[string]any{"status": "published"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	rec, _, _ := Get[testRecord](ctx, store, "things", "x")
	if rec.Name != "keep" {
		t.Fatalf("untouched field lost: %+v", rec)
	}
	if rec.Status != "published" {
		t.Fatalf("merged field missing: %+v", rec)
	}
}

func TestMemory_UpdateMissingIsNotFound(t *testing.T) {
	err := NewMemory().UpdateDocument(context.Background(), "things", "nope", map[string]any{"a": 1})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemory_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	if _, err := store.CreateDocument(ctx, "things", testRecord{Name: "a"}, "x"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.DeleteDocument(ctx, "things", "x"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.DeleteDocument(ctx, "things", "x"); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}
	docs, _ := store.GetCollection(ctx, "things")
	if len(docs) != 0 {
		t.Fatalf("expected empty collection, got %d docs", len(docs))
	}
}

func TestMemory_EqualityFilter(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	store.CreateDocument(ctx, "things", testRecord{Name: "a", Status: "published"}, "")
	store.CreateDocument(ctx, "things", testRecord{Name: "b", Status: "draft"}, "")
	store.CreateDocument(ctx, "things", testRecord{Name: "c", Status: "published"}, "")

	recs, err := List[testRecord](ctx, store, "things", Where("status", "published"))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 published records, got %d", len(recs))
	}
	for _, r := range recs {
		if r.Status != "published" {
			t.Fatalf("filter leaked %+v", r)
		}
	}
}

func TestMemory_MetaFieldsAreStoreManaged(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	// A payload carrying its own id/createdAt must not override the
	// store's metadata columns.
	id, err := store.CreateDocument(ctx, "things", map[string]any{
		"id":        "spoofed",
		"createdAt": "1999-01-01T00:00:00Z",
		"name":      "a",
	}, "real")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != "real" {
		t.Fatalf("expected explicit id to win, got %q", id)
	}

	rec, _, _ := Get[testRecord](ctx, store, "things", "real")
	if rec.ID != "real" {
		t.Fatalf("expected store-managed id, got %q", rec.ID)
	}
}
