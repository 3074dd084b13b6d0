package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vertexit-site/internal/domain"
)

// Postgres stores every collection in a single documents table with a
// jsonb payload column. Store metadata (id, createdAt, updatedAt) lives in
// dedicated columns and is merged into the payload on the way out.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres builds a Client over the given connection pool.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// selectDoc merges the metadata columns over the payload so column values
// always win over anything a caller managed to sneak into data.
const selectDoc = `data || jsonb_build_object(
	'id', id,
	'createdAt', to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD"T"HH24:MI:SS.US"Z"'),
	'updatedAt', to_char(updated_at AT TIME ZONE 'UTC', 'YYYY-MM-DD"T"HH24:MI:SS.US"Z"')
)`

func (p *Postgres) GetCollection(ctx context.Context, collection string, filters ...Filter) ([]json.RawMessage, error) {
	q := `SELECT ` + selectDoc + ` FROM documents WHERE collection = $1`
	args := []any{collection}
	for _, f := range filters {
		q += fmt.Sprintf(` AND data->>$%d = $%d`, len(args)+1, len(args)+2)
		args = append(args, f.Field, f.Value)
	}

	rows, err := p.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, unavailable("query collection %s", collection, err)
	}
	defer rows.Close()

	var docs []json.RawMessage
	for rows.Next() {
		var doc json.RawMessage
		if err := rows.Scan(&doc); err != nil {
			return nil, unavailable("scan collection %s", collection, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("read collection %s", collection, err)
	}
	return docs, nil
}

func (p *Postgres) GetDocument(ctx context.Context, collection, id string) (json.RawMessage, error) {
	const q = `SELECT ` + selectDoc + ` FROM documents WHERE collection = $1 AND id = $2`

	var doc json.RawMessage
	err := p.pool.QueryRow(ctx, q, collection, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, unavailable("get document %s/%s", collection+"/"+id, err)
	}
	return doc, nil
}

func (p *Postgres) CreateDocument(ctx context.Context, collection string, data any, id string) (string, error) {
	payload, err := marshalPayload(data)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	if id == "" {
		id = uuid.NewString()
	}

	const q = `
INSERT INTO documents (collection, id, data)
VALUES ($1, $2, $3)
ON CONFLICT (collection, id) DO UPDATE
SET data = EXCLUDED.data,
    updated_at = now()
`
	if _, err := p.pool.Exec(ctx, q, collection, id, payload); err != nil {
		return "", unavailable("create document %s", collection+"/"+id, err)
	}
	return id, nil
}

func (p *Postgres) UpdateDocument(ctx context.Context, collection, id string, partial any) error {
	payload, err := marshalPayload(partial)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	const q = `
UPDATE documents
SET data = data || $3::jsonb,
    updated_at = now()
WHERE collection = $1 AND id = $2
`
	tag, err := p.pool.Exec(ctx, q, collection, id, payload)
	if err != nil {
		return unavailable("update document %s", collection+"/"+id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (p *Postgres) DeleteDocument(ctx context.Context, collection, id string) error {
	const q = `DELETE FROM documents WHERE collection = $1 AND id = $2`
	if _, err := p.pool.Exec(ctx, q, collection, id); err != nil {
		return unavailable("delete document %s", collection+"/"+id, err)
	}
	return nil
}

func unavailable(format, detail string, err error) error {
	return fmt.Errorf(format+": %w: %v", detail, domain.ErrUnavailable, err)
}
