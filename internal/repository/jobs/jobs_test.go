package jobs

import (
	"context"
	"errors"
	"testing"

	"vertexit-site/internal/docstore"
	"vertexit-site/internal/domain"
)

func TestSave_NormalizesBeforePersisting(t *testing.T) {
	ctx := context.Background()
	repo := New(docstore.NewMemory())

	id, err := repo.Save(ctx, domain.Job{Slug: " React-Dev ", Title: "  Dev  "})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id == "" {
		t.Fatal("expected a non-empty id")
	}

	all, err := repo.Fetch(ctx)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one job, got %d", len(all))
	}
	got := all[0]
	if got.ID != id {
		t.Fatalf("expected id %q, got %q", id, got.ID)
	}
	if got.Slug != "react-dev" {
		t.Fatalf("expected slug react-dev, got %q", got.Slug)
	}
	if got.Title != "Dev" {
		t.Fatalf("expected title Dev, got %q", got.Title)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Fatalf("expected store timestamps, got %+v", got)
	}
}

func TestSave_EmptyTitleFailsBeforeStore(t *testing.T) {
	repo := New(docstore.NewMemory())

	_, err := repo.Save(context.Background(), domain.Job{Title: "   "})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	all, _ := repo.Fetch(context.Background())
	if len(all) != 0 {
		t.Fatalf("invalid record must not reach the store, found %d", len(all))
	}
}

func TestSave_WithIDUpdatesExisting(t *testing.T) {
	ctx := context.Background()
	repo := New(docstore.NewMemory())

	id, err := repo.Save(ctx, domain.Job{Title: "Go Engineer", Vacancies: 1})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := repo.Save(ctx, domain.Job{ID: id, Title: "Go Engineer", Vacancies: 3}); err != nil {
		t.Fatalf("update: %v", err)
	}

	all, _ := repo.Fetch(ctx)
	if len(all) != 1 {
		t.Fatalf("update must not create a second record, got %d", len(all))
	}
	if all[0].Vacancies != 3 {
		t.Fatalf("expected 3 vacancies, got %d", all[0].Vacancies)
	}
}

func TestSave_UnknownIDIsNotFound(t *testing.T) {
	repo := New(docstore.NewMemory())

	_, err := repo.Save(context.Background(), domain.Job{ID: "ghost", Title: "X"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFetchPublished_NeverReturnsDrafts(t *testing.T) {
	ctx := context.Background()
	repo := New(docstore.NewMemory())

	for _, j := range []domain.Job{
		{Title: "Draft role", Status: domain.StatusDraft},
		{Title: "Open role", Status: domain.StatusPublished},
		{Title: "Unset status role"},
		{Title: "Second open role", Status: domain.StatusPublished},
	} {
		if _, err := repo.Save(ctx, j); err != nil {
			t.Fatalf("save %q: %v", j.Title, err)
		}
	}

	published, err := repo.FetchPublished(ctx)
	if err != nil {
		t.Fatalf("fetch published: %v", err)
	}
	if len(published) != 2 {
		t.Fatalf("expected 2 published jobs, got %d", len(published))
	}
	for _, j := range published {
		if j.Status != domain.StatusPublished {
			t.Fatalf("draft leaked into public listing: %+v", j)
		}
	}
}

func TestGetBySlug_OnlyPublished(t *testing.T) {
	ctx := context.Background()
	repo := New(docstore.NewMemory())

	if _, err := repo.Save(ctx, domain.Job{Title: "Hidden", Slug: "hidden", Status: domain.StatusDraft}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := repo.Save(ctx, domain.Job{Title: "Open", Slug: "open", Status: domain.StatusPublished}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := repo.GetBySlug(ctx, "hidden"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("draft job must not resolve by slug, got %v", err)
	}

	j, err := repo.GetBySlug(ctx, "  Open ")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if j.Slug != "open" {
		t.Fatalf("unexpected job %+v", j)
	}
}

func TestDelete_RemovesFromFetch(t *testing.T) {
	ctx := context.Background()
	repo := New(docstore.NewMemory())

	id, err := repo.Save(ctx, domain.Job{Title: "Temp"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	all, _ := repo.Fetch(ctx)
	for _, j := range all {
		if j.ID == id {
			t.Fatalf("deleted id still present: %+v", j)
		}
	}
}
