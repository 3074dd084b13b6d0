package applications

import (
	"context"

	"vertexit-site/internal/docstore"
	"vertexit-site/internal/domain"
)

const collection = "job-applications"

type docstoreRepo struct {
	store docstore.Client
}

// New builds a Repository over the document store.
func New(store docstore.Client) Repository {
	return &docstoreRepo{store: store}
}

func (r *docstoreRepo) Fetch(ctx context.Context) ([]domain.JobApplication, error) {
	return docstore.List[domain.JobApplication](ctx, r.store, collection)
}

func (r *docstoreRepo) Save(ctx context.Context, a domain.JobApplication) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}
	a.Normalize()
	if a.ID == "" {
		return r.store.CreateDocument(ctx, collection, a, "")
	}
	if err := r.store.UpdateDocument(ctx, collection, a.ID, a); err != nil {
		return "", err
	}
	return a.ID, nil
}

func (r *docstoreRepo) Delete(ctx context.Context, id string) error {
	return r.store.DeleteDocument(ctx, collection, id)
}
