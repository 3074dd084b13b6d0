package settings

import (
	"context"

	"vertexit-site/internal/docstore"
	"vertexit-site/internal/domain"
)

const collection = "settings"

type docstoreRepo struct {
	store docstore.Client
}

// New builds a Repository over the document store.
func New(store docstore.Client) Repository {
	return &docstoreRepo{store: store}
}

func (r *docstoreRepo) Get(ctx context.Context) (*domain.Settings, error) {
	s, ok, err := docstore.Get[domain.Settings](ctx, r.store, collection, domain.SettingsID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

// Save full-replaces the singleton at its fixed id; creating it on first
// save and overwriting it afterwards are the same operation.
func (r *docstoreRepo) Save(ctx context.Context, s domain.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	s.Normalize()
	_, err := r.store.CreateDocument(ctx, collection, s, domain.SettingsID)
	return err
}
