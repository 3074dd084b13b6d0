package jobs

import (
	"context"

	"vertexit-site/internal/domain"
)

// Repository is the typed facade over the jobs collection. GetBySlug only
// resolves published jobs; the career pages link by slug, not id.
type Repository interface {
	Fetch(ctx context.Context) ([]domain.Job, error)
	FetchPublished(ctx context.Context) ([]domain.Job, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Job, error)
	Save(ctx context.Context, j domain.Job) (string, error)
	Delete(ctx context.Context, id string) error
}
