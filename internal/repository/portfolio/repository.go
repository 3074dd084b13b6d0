package portfolio

import (
	"context"

	"vertexit-site/internal/domain"
)

// Repository is the typed facade over the portfolio collection.
type Repository interface {
	Fetch(ctx context.Context) ([]domain.PortfolioItem, error)
	FetchPublished(ctx context.Context) ([]domain.PortfolioItem, error)
	Save(ctx context.Context, p domain.PortfolioItem) (string, error)
	Delete(ctx context.Context, id string) error
}
