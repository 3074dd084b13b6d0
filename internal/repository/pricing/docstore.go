package pricing

import (
	"context"

	"vertexit-site/internal/docstore"
	"vertexit-site/internal/domain"
)

const collection = "pricing"

type docstoreRepo struct {
	store docstore.Client
}

// New builds a Repository over the document store.
func New(store docstore.Client) Repository {
	return &docstoreRepo{store: store}
}

func (r *docstoreRepo) Fetch(ctx context.Context) ([]domain.Plan, error) {
	return docstore.List[domain.Plan](ctx, r.store, collection)
}

func (r *docstoreRepo) FetchPublished(ctx context.Context) ([]domain.Plan, error) {
	return docstore.List[domain.Plan](ctx, r.store, collection,
		docstore.Where("status", string(domain.StatusPublished)))
}

func (r *docstoreRepo) Save(ctx context.Context, p domain.Plan) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	p.Normalize()
	if p.ID == "" {
		return r.store.CreateDocument(ctx, collection, p, "")
	}
	if err := r.store.UpdateDocument(ctx, collection, p.ID, p); err != nil {
		return "", err
	}
	return p.ID, nil
}

func (r *docstoreRepo) Delete(ctx context.Context, id string) error {
	return r.store.DeleteDocument(ctx, collection, id)
}
