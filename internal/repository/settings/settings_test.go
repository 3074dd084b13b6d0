package settings

import (
	"context"
	"errors"
	"testing"

	"vertexit-site/internal/docstore"
	"vertexit-site/internal/domain"
)

func TestGet_MissingSingletonIsNotFound(t *testing.T) {
	repo := New(docstore.NewMemory())

	_, err := repo.Get(context.Background())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSave_IsFullReplaceAtFixedID(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()
	repo := New(store)

	if err := repo.Save(ctx, domain.Settings{SiteName: "Vertex IT", Tagline: "We build software"}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	// Second save omits the tagline; full-replace semantics must clear it.
	if err := repo.Save(ctx, domain.Settings{SiteName: "Vertex IT Solutions"}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	s, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s.ID != domain.SettingsID {
		t.Fatalf("expected fixed id %q, got %q", domain.SettingsID, s.ID)
	}
	if s.SiteName != "Vertex IT Solutions" {
		t.Fatalf("unexpected site name %q", s.SiteName)
	}
	if s.Tagline != "" {
		t.Fatalf("full replace must clear omitted fields, tagline=%q", s.Tagline)
	}

	docs, _ := store.GetCollection(ctx, "settings")
	if len(docs) != 1 {
		t.Fatalf("settings must stay a singleton, got %d documents", len(docs))
	}
}
