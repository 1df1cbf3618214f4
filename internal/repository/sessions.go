package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ledger1-hq/website/backend/internal/domain"
	"github.com/ledger1-hq/website/backend/internal/store"
	"github.com/ledger1-hq/website/backend/internal/utils"
)

// CreateSession issues a fresh opaque token for the user and persists the
// session document. Lifetime is fixed at creation; validation never slides
// the expiry.
func (r *Repository) CreateSession(userID string) (*domain.Session, error) {
	token, err := utils.GenerateSessionToken()
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:        "session-" + token,
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(time.Duration(r.cfg.Session.Expiration) * time.Second),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`INSERT INTO %s (doc_type, id, data) VALUES ($1, $2, $3)`, r.table)

	ctx, cancel := r.queryCtx()
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, domain.DocTypeSession, session.ID, data); err != nil {
		return nil, err
	}

	return session, nil
}

func (r *Repository) GetSessionByToken(token string) (*domain.Session, error) {
	query := fmt.Sprintf(`SELECT data FROM %s WHERE doc_type = $1 AND data->>'token' = $2`, r.table)

	ctx, cancel := r.queryCtx()
	defer cancel()

	var raw []byte
	err := store.ReadRetry(ctx, func(ctx context.Context) error {
		return r.dbpool.QueryRowContext(ctx, query, domain.DocTypeSession, token).Scan(&raw)
	})
	if err != nil {
		return nil, err
	}

	session := &domain.Session{}
	if err := json.Unmarshal(raw, session); err != nil {
		return nil, err
	}

	return session, nil
}

// DeleteSessionByToken revokes a session. It is idempotent: deleting a token
// that no longer exists reports false without an error.
func (r *Repository) DeleteSessionByToken(token string) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE doc_type = $1 AND data->>'token' = $2`, r.table)

	ctx, cancel := r.queryCtx()
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, domain.DocTypeSession, token)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// DeleteExpiredSessions is the periodic sweep companion to the lazy
// delete-on-read in the auth middleware; it bounds storage growth from
// abandoned sessions.
func (r *Repository) DeleteExpiredSessions() (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE doc_type = $1 AND (data->>'expiresAt')::timestamptz < now()`, r.table)

	ctx, cancel := r.queryCtx()
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, domain.DocTypeSession)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
