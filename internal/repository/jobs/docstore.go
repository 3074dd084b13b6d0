package jobs

import (
	"context"
	"strings"

	"vertexit-site/internal/docstore"
	"vertexit-site/internal/domain"
)

const collection = "jobs"

type docstoreRepo struct {
	store docstore.Client
}

// New builds a Repository over the document store.
func New(store docstore.Client) Repository {
	return &docstoreRepo{store: store}
}

func (r *docstoreRepo) Fetch(ctx context.Context) ([]domain.Job, error) {
	return docstore.List[domain.Job](ctx, r.store, collection)
}

func (r *docstoreRepo) FetchPublished(ctx context.Context) ([]domain.Job, error) {
	return docstore.List[domain.Job](ctx, r.store, collection,
		docstore.Where("status", string(domain.StatusPublished)))
}

func (r *docstoreRepo) GetBySlug(ctx context.Context, slug string) (*domain.Job, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	found, err := docstore.List[domain.Job](ctx, r.store, collection,
		docstore.Where("slug", slug),
		docstore.Where("status", string(domain.StatusPublished)))
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, domain.ErrNotFound
	}
	return &found[0], nil
}

func (r *docstoreRepo) Save(ctx context.Context, j domain.Job) (string, error) {
	if err := j.Validate(); err != nil {
		return "", err
	}
	j.Normalize()
	if j.ID == "" {
		return r.store.CreateDocument(ctx, collection, j, "")
	}
	if err := r.store.UpdateDocument(ctx, collection, j.ID, j); err != nil {
		return "", err
	}
	return j.ID, nil
}

func (r *docstoreRepo) Delete(ctx context.Context, id string) error {
	return r.store.DeleteDocument(ctx, collection, id)
}
