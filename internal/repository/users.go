package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ledger1-hq/website/backend/internal/domain"
	"github.com/ledger1-hq/website/backend/internal/store"
)

// Lookups are exact-match and case-sensitive. Absence surfaces as
// sql.ErrNoRows; handlers translate that to "none" at the API boundary.

func (r *Repository) GetUserByUsername(username string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT data FROM %s WHERE doc_type = $1 AND data->>'username' = $2`, r.table)

	ctx, cancel := r.queryCtx()
	defer cancel()

	var raw []byte
	err := store.ReadRetry(ctx, func(ctx context.Context) error {
		return r.dbpool.QueryRowContext(ctx, query, domain.DocTypeUser, username).Scan(&raw)
	})
	if err != nil {
		return nil, err
	}

	user := &domain.User{}
	if err := json.Unmarshal(raw, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *Repository) GetUserByID(id string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT data FROM %s WHERE doc_type = $1 AND id = $2`, r.table)

	ctx, cancel := r.queryCtx()
	defer cancel()

	var raw []byte
	err := store.ReadRetry(ctx, func(ctx context.Context) error {
		return r.dbpool.QueryRowContext(ctx, query, domain.DocTypeUser, id).Scan(&raw)
	})
	if err != nil {
		return nil, err
	}

	user := &domain.User{}
	if err := json.Unmarshal(raw, user); err != nil {
		return nil, err
	}

	return user, nil
}

// CreateUser inserts the user document. Username uniqueness is enforced by
// the container's partial unique index; a duplicate comes back as a unique
// violation for the caller to classify.
func (r *Repository) CreateUser(user *domain.User) error {
	query := fmt.Sprintf(`INSERT INTO %s (doc_type, id, data) VALUES ($1, $2, $3)`, r.table)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	ctx, cancel := r.queryCtx()
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, domain.DocTypeUser, user.ID, data); err != nil {
		return err
	}

	return nil
}

// UpdateUser replaces the stored document with the given user. Password and
// role changes arrive here as an already-modified User; authorization has
// happened upstream.
func (r *Repository) UpdateUser(user *domain.User) error {
	query := fmt.Sprintf(`UPDATE %s SET data = $3 WHERE doc_type = $1 AND id = $2`, r.table)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	ctx, cancel := r.queryCtx()
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, domain.DocTypeUser, user.ID, data)
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

func (r *Repository) GetAllUsers() ([]*domain.User, error) {
	query := fmt.Sprintf(`SELECT data FROM %s WHERE doc_type = $1`, r.table)

	ctx, cancel := r.queryCtx()
	defer cancel()

	users := make([]*domain.User, 0)
	err := store.ReadRetry(ctx, func(ctx context.Context) error {
		rows, err := r.dbpool.QueryContext(ctx, query, domain.DocTypeUser)
		if err != nil {
			return err
		}
		defer rows.Close()

		users = users[:0]
		for rows.Next() {
			var raw []byte
			if err := rows.Scan(&raw); err != nil {
				return err
			}
			user := &domain.User{}
			if err := json.Unmarshal(raw, user); err != nil {
				return err
			}
			users = append(users, user)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *Repository) DeleteUser(id string) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE doc_type = $1 AND id = $2`, r.table)

	ctx, cancel := r.queryCtx()
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, domain.DocTypeUser, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// CountUsers backs the one-time bootstrap check in cmd/api.
func (r *Repository) CountUsers() (int64, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE doc_type = $1`, r.table)

	ctx, cancel := r.queryCtx()
	defer cancel()

	var count int64
	err := store.ReadRetry(ctx, func(ctx context.Context) error {
		return r.dbpool.QueryRowContext(ctx, query, domain.DocTypeUser).Scan(&count)
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}
