package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/ledger1-hq/website/backend/internal/store"
)

// Generic, type-discriminated CRUD shared by the five content variants.
// Documents are handled as raw JSON objects so partial updates can shallow
// merge without knowing the variant's fields.

// ListDocuments returns documents of the given type matching every filter as
// an equality conjunction, plus an optional tag-containment filter. Results
// come back in storage order; callers apply their own sort. Filter keys come
// from per-resource whitelists in the handler layer, never from client input.
func (r *Repository) ListDocuments(docType string, filters map[string]string, tag string) ([]map[string]any, error) {
	query := fmt.Sprintf(`SELECT data FROM %s WHERE doc_type = $1`, r.table)
	args := []any{docType}

	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		args = append(args, filters[k])
		query += fmt.Sprintf(` AND data->>'%s' = $%d`, k, len(args))
	}

	if tag != "" {
		args = append(args, tag)
		query += fmt.Sprintf(` AND data->'tags' @> to_jsonb($%d::text)`, len(args))
	}

	ctx, cancel := r.queryCtx()
	defer cancel()

	docs := make([]map[string]any, 0)
	err := store.ReadRetry(ctx, func(ctx context.Context) error {
		rows, err := r.dbpool.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		docs = docs[:0]
		for rows.Next() {
			var raw []byte
			if err := rows.Scan(&raw); err != nil {
				return err
			}
			doc := map[string]any{}
			if err := json.Unmarshal(raw, &doc); err != nil {
				return err
			}
			docs = append(docs, doc)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}

func (r *Repository) GetDocument(docType, id string) (map[string]any, error) {
	query := fmt.Sprintf(`SELECT data FROM %s WHERE doc_type = $1 AND id = $2`, r.table)

	ctx, cancel := r.queryCtx()
	defer cancel()

	var raw []byte
	err := store.ReadRetry(ctx, func(ctx context.Context) error {
		return r.dbpool.QueryRowContext(ctx, query, docType, id).Scan(&raw)
	})
	if err != nil {
		return nil, err
	}

	doc := map[string]any{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// CreateDocument inserts a new document. An existing (doc_type, id) pair is a
// primary-key violation, never a silent overwrite; seeding goes through
// UpsertDocument instead.
func (r *Repository) CreateDocument(docType, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`INSERT INTO %s (doc_type, id, data) VALUES ($1, $2, $3)`, r.table)

	ctx, cancel := r.queryCtx()
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, docType, id, data); err != nil {
		return err
	}

	return nil
}

func (r *Repository) ReplaceDocument(docType, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE %s SET data = $3 WHERE doc_type = $1 AND id = $2`, r.table)

	ctx, cancel := r.queryCtx()
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, docType, id, data)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *Repository) DeleteDocument(docType, id string) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE doc_type = $1 AND id = $2`, r.table)

	ctx, cancel := r.queryCtx()
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, docType, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// UpsertDocument exists for the seeder only; request handlers always use
// CreateDocument so an existing id is reported, not overwritten.
func (r *Repository) UpsertDocument(docType, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`INSERT INTO %s (doc_type, id, data) VALUES ($1, $2, $3) ON CONFLICT (doc_type, id) DO UPDATE SET data = EXCLUDED.data`, r.table)

	ctx, cancel := r.queryCtx()
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, docType, id, data); err != nil {
		return err
	}

	return nil
}
