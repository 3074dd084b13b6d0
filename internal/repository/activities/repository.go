package activities

import (
	"context"

	"vertexit-site/internal/domain"
)

// Repository is the typed facade over the activities collection.
type Repository interface {
	Fetch(ctx context.Context) ([]domain.Activity, error)
	FetchPublished(ctx context.Context) ([]domain.Activity, error)
	Save(ctx context.Context, a domain.Activity) (string, error)
	Delete(ctx context.Context, id string) error
}
