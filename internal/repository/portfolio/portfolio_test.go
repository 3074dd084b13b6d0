package portfolio

import (
	"context"
	"testing"

	"vertexit-site/internal/docstore"
	"vertexit-site/internal/domain"
)

func TestSave_KeepsPreAssignedID(t *testing.T) {
	ctx := context.Background()
	repo := New(docstore.NewMemory())

	// The id does not exist in the store yet; save must still succeed so
	// the record can line up with an externally chosen folder name.
	id, err := repo.Save(ctx, domain.PortfolioItem{
		ID:       "erp-rollout-2026",
		Title:    "ERP rollout",
		Category: "Enterprise",
		Media:    []domain.Media{{Kind: domain.MediaImage, URL: "https://cdn.example.com/erp/1.png"}},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id != "erp-rollout-2026" {
		t.Fatalf("expected pre-assigned id to be kept, got %q", id)
	}

	all, err := repo.Fetch(ctx)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(all) != 1 || all[0].ID != "erp-rollout-2026" {
		t.Fatalf("unexpected fetch result %+v", all)
	}
}

func TestSave_ExistingIDReplaces(t *testing.T) {
	ctx := context.Background()
	repo := New(docstore.NewMemory())

	if _, err := repo.Save(ctx, domain.PortfolioItem{ID: "p1", Title: "V1", Category: "Web"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := repo.Save(ctx, domain.PortfolioItem{ID: "p1", Title: "V2", Category: "Web"}); err != nil {
		t.Fatalf("resave: %v", err)
	}

	all, _ := repo.Fetch(ctx)
	if len(all) != 1 {
		t.Fatalf("expected one item, got %d", len(all))
	}
	if all[0].Title != "V2" {
		t.Fatalf("expected replaced item, got %+v", all[0])
	}
}
