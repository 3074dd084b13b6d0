package faqs

import (
	"context"

	"vertexit-site/internal/domain"
)

// Repository is the typed facade over the faqs collection.
type Repository interface {
	Fetch(ctx context.Context) ([]domain.FAQ, error)
	FetchPublished(ctx context.Context) ([]domain.FAQ, error)
	Save(ctx context.Context, f domain.FAQ) (string, error)
	Delete(ctx context.Context, id string) error
}
