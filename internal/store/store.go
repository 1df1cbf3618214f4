// Package store bootstraps the document container backing the CMS. Every
// record in the system (users, sessions and the five content types) lives
// in one table keyed by (doc_type, id), mirroring a partitioned document
// database: doc_type is the physical partition key and data holds the
// document body.
package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"
)

// Table returns the sanitized, schema-qualified container identifier used in
// every query.
func Table(schema, container string) string {
	return pgx.Identifier{schema, container}.Sanitize()
}

// Init creates the schema, the container and its indexes when missing. It is
// idempotent and runs once at startup, before any request is served.
func Init(ctx context.Context, db *sql.DB, schema, container string) error {
	table := Table(schema, container)

	stmts := []string{
		fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, pgx.Identifier{schema}.Sanitize()),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (doc_type text NOT NULL, id text NOT NULL, data jsonb NOT NULL, PRIMARY KEY (doc_type, id))`, table),
		// usernames are unique across user documents; the store enforces it,
		// not a check-then-create in application code
		fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s ((data->>'username')) WHERE doc_type = 'user'`,
			pgx.Identifier{container + "_username_key"}.Sanitize(), table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s ((data->>'token')) WHERE doc_type = 'session'`,
			pgx.Identifier{container + "_session_token_idx"}.Sanitize(), table),
		// expiry is stored as UTC RFC3339 text, which orders lexicographically;
		// a timestamptz cast here would not be immutable
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s ((data->>'expiresAt')) WHERE doc_type = 'session'`,
			pgx.Identifier{container + "_session_expiry_idx"}.Sanitize(), table),
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("initialize document container: %w", err)
		}
	}

	return nil
}

// ReadRetry runs fn with bounded exponential backoff on transient store
// failures. Only idempotent operations (reads, deletes) may go through here;
// creates are never retried because the container has no idempotency keys.
func ReadRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(2, retry.NewExponential(100*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			if isTransient(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
}

// isTransient reports whether an error is worth one more attempt. Missing
// rows and constraint violations are final answers, not failures.
func isTransient(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgerrcode.IsConnectionException(pgErr.Code)
	}

	return false
}
