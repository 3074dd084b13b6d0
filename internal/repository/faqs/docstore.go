package faqs

import (
	"context"

	"vertexit-site/internal/docstore"
	"vertexit-site/internal/domain"
)

const collection = "faqs"

type docstoreRepo struct {
	store docstore.Client
}

// New builds a Repository over the document store.
func New(store docstore.Client) Repository {
	return &docstoreRepo{store: store}
}

func (r *docstoreRepo) Fetch(ctx context.Context) ([]domain.FAQ, error) {
	return docstore.List[domain.FAQ](ctx, r.store, collection)
}

func (r *docstoreRepo) FetchPublished(ctx context.Context) ([]domain.FAQ, error) {
	return docstore.List[domain.FAQ](ctx, r.store, collection,
		docstore.Where("status", string(domain.StatusPublished)))
}

func (r *docstoreRepo) Save(ctx context.Context, f domain.FAQ) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	f.Normalize()
	if f.ID == "" {
		return r.store.CreateDocument(ctx, collection, f, "")
	}
	if err := r.store.UpdateDocument(ctx, collection, f.ID, f); err != nil {
		return "", err
	}
	return f.ID, nil
}

func (r *docstoreRepo) Delete(ctx context.Context, id string) error {
	return r.store.DeleteDocument(ctx, collection, id)
}
