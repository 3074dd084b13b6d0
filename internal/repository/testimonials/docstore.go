package testimonials

import (
	"context"

	"vertexit-site/internal/docstore"
	"vertexit-site/internal/domain"
)

const collection = "testimonials"

type docstoreRepo struct {
	store docstore.Client
}

// New builds a Repository over the document store.
func New(store docstore.Client) Repository {
	return &docstoreRepo{store: store}
}

func (r *docstoreRepo) Fetch(ctx context.Context) ([]domain.Testimonial, error) {
	return docstore.List[domain.Testimonial](ctx, r.store, collection)
}

func (r *docstoreRepo) FetchPublished(ctx context.Context) ([]domain.Testimonial, error) {
	return docstore.List[domain.Testimonial](ctx, r.store, collection,
		docstore.Where("status", string(domain.StatusPublished)))
}

func (r *docstoreRepo) Save(ctx context.Context, t domain.Testimonial) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	t.Normalize()
	if t.ID == "" {
		return r.store.CreateDocument(ctx, collection, t, "")
	}
	if err := r.store.UpdateDocument(ctx, collection, t.ID, t); err != nil {
		return "", err
	}
	return t.ID, nil
}

func (r *docstoreRepo) Delete(ctx context.Context, id string) error {
	return r.store.DeleteDocument(ctx, collection, id)
}
