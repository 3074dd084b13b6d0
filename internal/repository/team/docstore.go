package team

import (
	"context"

	"vertexit-site/internal/docstore"
	"vertexit-site/internal/domain"
)

const collection = "team"

type docstoreRepo struct {
	store docstore.Client
}

// New builds a Repository over the document store.
func New(store docstore.Client) Repository {
	return &docstoreRepo{store: store}
}

func (r *docstoreRepo) Fetch(ctx context.Context) ([]domain.TeamMember, error) {
	return docstore.List[domain.TeamMember](ctx, r.store, collection)
}

func (r *docstoreRepo) FetchPublished(ctx context.Context) ([]domain.TeamMember, error) {
	return docstore.List[domain.TeamMember](ctx, r.store, collection,
		docstore.Where("status", string(domain.StatusPublished)))
}

func (r *docstoreRepo) Save(ctx context.Context, m domain.TeamMember) (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}
	m.Normalize()
	if m.ID == "" {
		return r.store.CreateDocument(ctx, collection, m, "")
	}
	if err := r.store.UpdateDocument(ctx, collection, m.ID, m); err != nil {
		return "", err
	}
	return m.ID, nil
}

func (r *docstoreRepo) Delete(ctx context.Context, id string) error {
	return r.store.DeleteDocument(ctx, collection, id)
}
