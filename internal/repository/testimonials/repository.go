package testimonials

import (
	"context"

	"vertexit-site/internal/domain"
)

// Repository is the typed facade over the testimonials collection.
type Repository interface {
	Fetch(ctx context.Context) ([]domain.Testimonial, error)
	FetchPublished(ctx context.Context) ([]domain.Testimonial, error)
	Save(ctx context.Context, t domain.Testimonial) (string, error)
	Delete(ctx context.Context, id string) error
}
