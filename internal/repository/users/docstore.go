package users

import (
	"context"
	"strings"

	"vertexit-site/internal/docstore"
	"vertexit-site/internal/domain"
)

const collection = "users"

type docstoreRepo struct {
	store docstore.Client
}

// New builds a Repository over the document store.
func New(store docstore.Client) Repository {
	return &docstoreRepo{store: store}
}

func (r *docstoreRepo) Get(ctx context.Context, id string) (*domain.User, error) {
	u, ok, err := docstore.Get[domain.User](ctx, r.store, collection, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *docstoreRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	found, err := docstore.List[domain.User](ctx, r.store, collection,
		docstore.Where("email", email))
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, domain.ErrNotFound
	}
	return &found[0], nil
}

func (r *docstoreRepo) Save(ctx context.Context, u domain.User) (string, error) {
	if err := u.Validate(); err != nil {
		return "", err
	}
	u.Normalize()
	if u.ID == "" {
		return r.store.CreateDocument(ctx, collection, u, "")
	}
	if err := r.store.UpdateDocument(ctx, collection, u.ID, u); err != nil {
		return "", err
	}
	return u.ID, nil
}
