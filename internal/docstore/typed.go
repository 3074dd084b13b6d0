package docstore

import (
	"context"
	"encoding/json"
	"fmt"
)

// List fetches and decodes an entire collection.
func List[T any](ctx context.Context, c Client, collection string, filters ...Filter) ([]T, error) {
	docs, err := c.GetCollection(ctx, collection, filters...)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := json.Unmarshal(doc, &v); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", collection, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Get fetches and decodes a single document. The second return value is
// false when the id does not exist.
func Get[T any](ctx context.Context, c Client, collection, id string) (T, bool, error) {
	var v T
	doc, err := c.GetDocument(ctx, collection, id)
	if err != nil {
		return v, false, err
	}
	if doc == nil {
		return v, false, nil
	}
	if err := json.Unmarshal(doc, &v); err != nil {
		return v, false, fmt.Errorf("decode %s document: %w", collection, err)
	}
	return v, true, nil
}
