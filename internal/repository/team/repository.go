package team

import (
	"context"

	"vertexit-site/internal/domain"
)

// Repository is the typed facade over the team collection.
type Repository interface {
	Fetch(ctx context.Context) ([]domain.TeamMember, error)
	FetchPublished(ctx context.Context) ([]domain.TeamMember, error)
	Save(ctx context.Context, m domain.TeamMember) (string, error)
	Delete(ctx context.Context, id string) error
}
