package handler

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ledger1-hq/website/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersRequiresAdmin(t *testing.T) {
	h, mock := newTestHandler(t)
	expectSessionLookup(t, mock, "tok-editor", testEditor())

	w := doRequest(t, h, http.MethodGet, "/api/cms/users", "tok-editor", nil)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsersRequiresSession(t *testing.T) {
	h, _ := newTestHandler(t)

	w := doRequest(t, h, http.MethodGet, "/api/cms/users", "", nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListUsers(t *testing.T) {
	h, mock := newTestHandler(t)
	expectSessionLookup(t, mock, "tok-admin", testAdmin())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT data FROM ` + testTable + ` WHERE doc_type = $1`)).
		WithArgs(domain.DocTypeUser).
		WillReturnRows(sqlmock.NewRows([]string{"data"}).
			AddRow([]byte(`{"id":"user-1","username":"alice","passwordHash":"h","role":"admin"}`)).
			AddRow([]byte(`{"id":"user-2","username":"bob","passwordHash":"h","role":"editor"}`)))

	w := doRequest(t, h, http.MethodGet, "/api/cms/users", "tok-admin", nil)

	require.Equal(t, http.StatusOK, w.Code)
	users := decodeList(t, w)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0]["username"])
	assert.NotContains(t, users[0], "passwordHash")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserDefaultsToEditor(t *testing.T) {
	h, mock := newTestHandler(t)
	expectSessionLookup(t, mock, "tok-admin", testAdmin())

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ` + testTable + ` (doc_type, id, data) VALUES ($1, $2, $3)`)).
		WithArgs(domain.DocTypeUser, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := doRequest(t, h, http.MethodPost, "/api/cms/users", "tok-admin", map[string]string{
		"username": "bob",
		"password": "hunter2",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeObject(t, w)
	assert.Equal(t, "bob", body["username"])
	assert.Equal(t, "editor", body["role"])
	assert.NotContains(t, body, "passwordHash")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	h, mock := newTestHandler(t)
	expectSessionLookup(t, mock, "tok-admin", testAdmin())

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ` + testTable + ` (doc_type, id, data) VALUES ($1, $2, $3)`)).
		WithArgs(domain.DocTypeUser, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	w := doRequest(t, h, http.MethodPost, "/api/cms/users", "tok-admin", map[string]string{
		"username": "bob",
		"password": "hunter2",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "user already exists", decodeObject(t, w)["error"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserInvalidRole(t *testing.T) {
	h, mock := newTestHandler(t)
	expectSessionLookup(t, mock, "tok-admin", testAdmin())

	w := doRequest(t, h, http.MethodPost, "/api/cms/users", "tok-admin", map[string]string{
		"username": "bob",
		"password": "hunter2",
		"role":     "superuser",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserForbiddenForEditor(t *testing.T) {
	h, mock := newTestHandler(t)
	expectSessionLookup(t, mock, "tok-editor", testEditor())

	w := doRequest(t, h, http.MethodPost, "/api/cms/users", "tok-editor", map[string]string{
		"username": "bob",
		"password": "hunter2",
	})

	require.Equal(t, http.StatusForbidden, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOwnPassword(t *testing.T) {
	h, mock := newTestHandler(t)
	editor := testEditor()
	expectSessionLookup(t, mock, "tok-editor", editor)

	raw, err := json.Marshal(editor)
	require.NoError(t, err)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT data FROM ` + testTable + ` WHERE doc_type = $1 AND id = $2`)).
		WithArgs(domain.DocTypeUser, editor.ID).
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(raw))

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE ` + testTable + ` SET data = $3 WHERE doc_type = $1 AND id = $2`)).
		WithArgs(domain.DocTypeUser, editor.ID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := doRequest(t, h, http.MethodPut, "/api/cms/users", "tok-editor", map[string]string{
		"id":          editor.ID,
		"newPassword": "fresh-password",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, editor.Username, decodeObject(t, w)["username"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOtherUserForbiddenForEditor(t *testing.T) {
	h, mock := newTestHandler(t)
	expectSessionLookup(t, mock, "tok-editor", testEditor())

	other := testAdmin()
	raw, err := json.Marshal(other)
	require.NoError(t, err)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT data FROM ` + testTable + ` WHERE doc_type = $1 AND id = $2`)).
		WithArgs(domain.DocTypeUser, other.ID).
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(raw))

	w := doRequest(t, h, http.MethodPut, "/api/cms/users", "tok-editor", map[string]string{
		"id":          other.ID,
		"newPassword": "hijacked",
	})

	require.Equal(t, http.StatusForbidden, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOwnRoleForbiddenForEditor(t *testing.T) {
	h, mock := newTestHandler(t)
	editor := testEditor()
	expectSessionLookup(t, mock, "tok-editor", editor)

	raw, err := json.Marshal(editor)
	require.NoError(t, err)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT data FROM ` + testTable + ` WHERE doc_type = $1 AND id = $2`)).
		WithArgs(domain.DocTypeUser, editor.ID).
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(raw))

	// editors cannot promote themselves
	w := doRequest(t, h, http.MethodPut, "/api/cms/users", "tok-editor", map[string]string{
		"id":   editor.ID,
		"role": "admin",
	})

	require.Equal(t, http.StatusForbidden, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserRoleAsAdmin(t *testing.T) {
	h, mock := newTestHandler(t)
	expectSessionLookup(t, mock, "tok-admin", testAdmin())

	target := testEditor()
	raw, err := json.Marshal(target)
	require.NoError(t, err)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT data FROM ` + testTable + ` WHERE doc_type = $1 AND id = $2`)).
		WithArgs(domain.DocTypeUser, target.ID).
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(raw))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE ` + testTable + ` SET data = $3 WHERE doc_type = $1 AND id = $2`)).
		WithArgs(domain.DocTypeUser, target.ID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := doRequest(t, h, http.MethodPut, "/api/cms/users", "tok-admin", map[string]string{
		"id":   target.ID,
		"role": "admin",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", decodeObject(t, w)["role"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserMissingIdentifier(t *testing.T) {
	h, mock := newTestHandler(t)
	expectSessionLookup(t, mock, "tok-admin", testAdmin())

	w := doRequest(t, h, http.MethodPut, "/api/cms/users", "tok-admin", map[string]string{
		"newPassword": "whatever",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUser(t *testing.T) {
	h, mock := newTestHandler(t)
	expectSessionLookup(t, mock, "tok-admin", testAdmin())

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM ` + testTable + ` WHERE doc_type = $1 AND id = $2`)).
		WithArgs(domain.DocTypeUser, "user-2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := doRequest(t, h, http.MethodDelete, "/api/cms/users?id=user-2", "tok-admin", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeObject(t, w)["success"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUserAbsent(t *testing.T) {
	h, mock := newTestHandler(t)
	expectSessionLookup(t, mock, "tok-admin", testAdmin())

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM ` + testTable + ` WHERE doc_type = $1 AND id = $2`)).
		WithArgs(domain.DocTypeUser, "user-9").
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := doRequest(t, h, http.MethodDelete, "/api/cms/users?id=user-9", "tok-admin", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
