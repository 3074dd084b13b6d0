package applications

import (
	"context"

	"vertexit-site/internal/domain"
)

// Repository is the typed facade over the job-applications collection.
// Applications are submitted from the public career form but only ever
// read back in the admin area, so there is no published accessor.
type Repository interface {
	Fetch(ctx context.Context) ([]domain.JobApplication, error)
	Save(ctx context.Context, a domain.JobApplication) (string, error)
	Delete(ctx context.Context, id string) error
}
