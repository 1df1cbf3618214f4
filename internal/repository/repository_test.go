package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ledger1-hq/website/backend/internal/config"
	"github.com/stretchr/testify/require"
)

const testTable = `"cms"."documents"`

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.Store.Schema = "cms"
	cfg.Store.Container = "documents"
	cfg.Store.QueryTimeout = 5
	cfg.Session.Expiration = 86400

	return NewRepository(cfg, db), mock
}

func dataRows(raw ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"data"})
	for _, r := range raw {
		rows.AddRow([]byte(r))
	}
	return rows
}
