package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ledger1-hq/website/backend/internal/config"
	"github.com/ledger1-hq/website/backend/internal/domain"
	"github.com/ledger1-hq/website/backend/internal/repository"
	"github.com/stretchr/testify/require"
)

const testTable = `"cms"."documents"`

func newTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.Store.Schema = "cms"
	cfg.Store.Container = "documents"
	cfg.Store.QueryTimeout = 5
	cfg.Session.Expiration = 86400

	h, err := NewHandler(cfg, repository.NewRepository(cfg, db))
	require.NoError(t, err)
	h.RegisterRoutes()

	return h, mock
}

func doRequest(t *testing.T, h *Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.Mux.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	body := []map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// expectSessionLookup queues the two reads the auth path performs: resolve the
// token to a session, then load the session's user.
func expectSessionLookup(t *testing.T, mock sqlmock.Sqlmock, token string, user *domain.User) {
	t.Helper()

	session := &domain.Session{
		ID:        "session-" + token,
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	rawSession, err := json.Marshal(session)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT data FROM ` + testTable + ` WHERE doc_type = $1 AND data->>'token' = $2`)).
		WithArgs(domain.DocTypeSession, token).
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(rawSession))

	rawUser, err := json.Marshal(user)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT data FROM ` + testTable + ` WHERE doc_type = $1 AND id = $2`)).
		WithArgs(domain.DocTypeUser, user.ID).
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(rawUser))
}

func testAdmin() *domain.User {
	return &domain.User{ID: "user-admin", Username: "root", Role: domain.RoleAdmin, CreatedAt: time.Now().UTC()}
}

func testEditor() *domain.User {
	return &domain.User{ID: "user-editor", Username: "writer", Role: domain.RoleEditor, CreatedAt: time.Now().UTC()}
}
