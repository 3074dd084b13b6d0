package services

import (
	"context"

	"vertexit-site/internal/docstore"
	"vertexit-site/internal/domain"
)

const collection = "services"

type docstoreRepo struct {
	store docstore.Client
}

// New builds a Repository over the document store.
func New(store docstore.Client) Repository {
	return &docstoreRepo{store: store}
}

func (r *docstoreRepo) Fetch(ctx context.Context) ([]domain.Service, error) {
	return docstore.List[domain.Service](ctx, r.store, collection)
}

func (r *docstoreRepo) FetchPublished(ctx context.Context) ([]domain.Service, error) {
	return docstore.List[domain.Service](ctx, r.store, collection,
		docstore.Where("status", string(domain.StatusPublished)))
}

func (r *docstoreRepo) Save(ctx context.Context, s domain.Service) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	s.Normalize()
	if s.ID == "" {
		return r.store.CreateDocument(ctx, collection, s, "")
	}
	if err := r.store.UpdateDocument(ctx, collection, s.ID, s); err != nil {
		return "", err
	}
	return s.ID, nil
}

func (r *docstoreRepo) Delete(ctx context.Context, id string) error {
	return r.store.DeleteDocument(ctx, collection, id)
}
