package services

import (
	"context"

	"vertexit-site/internal/domain"
)

// Repository is the typed facade over the services collection.
type Repository interface {
	Fetch(ctx context.Context) ([]domain.Service, error)
	FetchPublished(ctx context.Context) ([]domain.Service, error)
	Save(ctx context.Context, s domain.Service) (string, error)
	Delete(ctx context.Context, id string) error
}
