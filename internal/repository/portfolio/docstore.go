package portfolio

import (
	"context"

	"vertexit-site/internal/docstore"
	"vertexit-site/internal/domain"
)

const collection = "portfolio"

type docstoreRepo struct {
	store docstore.Client
}

// New builds a Repository over the document store.
func New(store docstore.Client) Repository {
	return &docstoreRepo{store: store}
}

func (r *docstoreRepo) Fetch(ctx context.Context) ([]domain.PortfolioItem, error) {
	return docstore.List[domain.PortfolioItem](ctx, r.store, collection)
}

func (r *docstoreRepo) FetchPublished(ctx context.Context) ([]domain.PortfolioItem, error) {
	return docstore.List[domain.PortfolioItem](ctx, r.store, collection,
		docstore.Where("status", string(domain.StatusPublished)))
}

// Save upserts by explicit id when one is present. Portfolio items may
// pre-assign their id so it lines up with the media folder layout in
// object storage, and that id may not exist in the store yet.
func (r *docstoreRepo) Save(ctx context.Context, p domain.PortfolioItem) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	p.Normalize()
	return r.store.CreateDocument(ctx, collection, p, p.ID)
}

func (r *docstoreRepo) Delete(ctx context.Context, id string) error {
	return r.store.DeleteDocument(ctx, collection, id)
}
