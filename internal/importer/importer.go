// Package importer loads a JSON content export into the document store.
// The export is a single object keyed by collection name, each value an
// array of documents. Documents carrying an id are upserted under it;
// documents without one get a generated id.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"vertexit-site/internal/docstore"
)

// knownCollections guards against typos in hand-edited exports.
var knownCollections = map[string]bool{
	"services":         true,
	"jobs":             true,
	"job-applications": true,
	"portfolio":        true,
	"pricing":          true,
	"testimonials":     true,
	"partners":         true,
	"team":             true,
	"activities":       true,
	"faqs":             true,
	"settings":         true,
	"users":            true,
}

// JSONImporter writes export documents through the document store.
type JSONImporter struct {
	store docstore.Client
}

func NewJSONImporter(store docstore.Client) *JSONImporter {
	return &JSONImporter{store: store}
}

// Run parses the export and upserts every document. It returns the
// number of documents written; on error the count covers the documents
// written before the failure.
func (i *JSONImporter) Run(ctx context.Context, r io.Reader) (int, error) {
	var export map[string][]map[string]any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&export); err != nil {
		return 0, fmt.Errorf("parse export: %w", err)
	}

	imported := 0
	for collection, docs := range export {
		if !knownCollections[collection] {
			return imported, fmt.Errorf("unknown collection %q", collection)
		}
		for n, doc := range docs {
			id, _ := doc["id"].(string)
			if _, err := i.store.CreateDocument(ctx, collection, doc, id); err != nil {
				return imported, fmt.Errorf("import %s document %d: %w", collection, n, err)
			}
			imported++
		}
	}
	return imported, nil
}
