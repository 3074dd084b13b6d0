package pricing

import (
	"context"

	"vertexit-site/internal/domain"
)

// Repository is the typed facade over the pricing collection.
type Repository interface {
	Fetch(ctx context.Context) ([]domain.Plan, error)
	FetchPublished(ctx context.Context) ([]domain.Plan, error)
	Save(ctx context.Context, p domain.Plan) (string, error)
	Delete(ctx context.Context, id string) error
}
