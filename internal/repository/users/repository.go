package users

import (
	"context"

	"vertexit-site/internal/domain"
)

// Repository is the typed facade over the users collection, the profile
// mirror consulted by the identity layer.
type Repository interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Save(ctx context.Context, u domain.User) (string, error)
}
