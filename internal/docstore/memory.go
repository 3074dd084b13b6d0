package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"vertexit-site/internal/domain"
)

type memoryDoc struct {
	data      map[string]json.RawMessage
	createdAt time.Time
	updatedAt time.Time
}

// Memory is an in-memory Client with the same semantics as Postgres. It
// backs unit tests and local development without a database.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]map[string]*memoryDoc
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string]map[string]*memoryDoc)}
}

func (m *Memory) GetCollection(_ context.Context, collection string, filters ...Filter) ([]json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var docs []json.RawMessage
	for id, doc := range m.collections[collection] {
		if !matches(doc.data, filters) {
			continue
		}
		docs = append(docs, render(id, doc))
	}
	return docs, nil
}

func (m *Memory) GetDocument(_ context.Context, collection, id string) (json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.collections[collection][id]
	if !ok {
		return nil, nil
	}
	return render(id, doc), nil
}

func (m *Memory) CreateDocument(_ context.Context, collection string, data any, id string) (string, error) {
	fields, err := payloadFields(data)
	if err != nil {
		return "", err
	}
	if id == "" {
		id = uuid.NewString()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.collections[collection] == nil {
		m.collections[collection] = make(map[string]*memoryDoc)
	}
	now := time.Now().UTC()
	if existing, ok := m.collections[collection][id]; ok {
		existing.data = fields
		existing.updatedAt = now
	} else {
		m.collections[collection][id] = &memoryDoc{data: fields, createdAt: now, updatedAt: now}
	}
	return id, nil
}

func (m *Memory) UpdateDocument(_ context.Context, collection, id string, partial any) error {
	fields, err := payloadFields(partial)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.collections[collection][id]
	if !ok {
		return domain.ErrNotFound
	}
	for k, v := range fields {
		doc.data[k] = v
	}
	doc.updatedAt = time.Now().UTC()
	return nil
}

func (m *Memory) DeleteDocument(_ context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.collections[collection], id)
	return nil
}

func payloadFields(data any) (map[string]json.RawMessage, error) {
	payload, err := marshalPayload(data)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return fields, nil
}

func render(id string, doc *memoryDoc) json.RawMessage {
	merged := make(map[string]json.RawMessage, len(doc.data)+3)
	for k, v := range doc.data {
		merged[k] = v
	}
	merged["id"], _ = json.Marshal(id)
	merged["createdAt"], _ = json.Marshal(doc.createdAt)
	merged["updatedAt"], _ = json.Marshal(doc.updatedAt)
	out, _ := json.Marshal(merged)
	return out
}

func matches(data map[string]json.RawMessage, filters []Filter) bool {
	for _, f := range filters {
		raw, ok := data[f.Field]
		if !ok {
			return false
		}
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			// Non-string fields are compared by their JSON encoding, which
			// mirrors the ->> operator used by the Postgres backend.
			v = string(raw)
		}
		if v != f.Value {
			return false
		}
	}
	return true
}
