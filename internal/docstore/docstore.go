// Package docstore provides uniform access to the schemaless document
// database backing all site content. Documents are addressed by
// (collection, id) and carry arbitrary JSON payloads; createdAt/updatedAt
// are stamped by the store and merged into the payload on reads.
package docstore

import (
	"context"
	"encoding/json"
)

// Filter narrows GetCollection to documents whose top-level field equals
// the given value.
type Filter struct {
	Field string
	Value string
}

// Where is shorthand for a single equality filter.
func Where(field, value string) Filter {
	return Filter{Field: field, Value: value}
}

// Client is the document store contract. Implementations: Postgres for
// production, Memory for tests and local development.
//
// Error policy: GetDocument returns (nil, nil) for a missing id,
// UpdateDocument fails with domain.ErrNotFound for a missing id, and
// DeleteDocument is an idempotent no-op. Anything else wraps
// domain.ErrUnavailable.
type Client interface {
	// GetCollection returns every document in the collection, optionally
	// narrowed by equality filters. No ordering is guaranteed.
	GetCollection(ctx context.Context, collection string, filters ...Filter) ([]json.RawMessage, error)

	// GetDocument returns a single document, or nil without error when the
	// id does not exist.
	GetDocument(ctx context.Context, collection, id string) (json.RawMessage, error)

	// CreateDocument persists data under the given id, or under a freshly
	// allocated id when id is empty. An explicit id is an idempotent
	// upsert with full-replace semantics. Returns the effective id.
	CreateDocument(ctx context.Context, collection string, data any, id string) (string, error)

	// UpdateDocument merges partial into the existing document, leaving
	// untouched fields as they are.
	UpdateDocument(ctx context.Context, collection, id string, partial any) error

	// DeleteDocument removes the document if present.
	DeleteDocument(ctx context.Context, collection, id string) error
}

// metaFields are managed by the store itself and stripped from incoming
// payloads so a client can never overwrite them.
var metaFields = [...]string{"id", "createdAt", "updatedAt"}

func marshalPayload(data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	for _, f := range metaFields {
		delete(m, f)
	}
	return json.Marshal(m)
}
