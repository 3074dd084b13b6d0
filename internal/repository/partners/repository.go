package partners

import (
	"context"

	"vertexit-site/internal/domain"
)

// Repository is the typed facade over the partners collection.
type Repository interface {
	Fetch(ctx context.Context) ([]domain.Partner, error)
	FetchPublished(ctx context.Context) ([]domain.Partner, error)
	Save(ctx context.Context, p domain.Partner) (string, error)
	Delete(ctx context.Context, id string) error
}
