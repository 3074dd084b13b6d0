package settings

import (
	"context"

	"vertexit-site/internal/domain"
)

// Repository is the typed facade over the settings singleton. Save always
// replaces the whole document; there is no partial patch.
type Repository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) error
}
