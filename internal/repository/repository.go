package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/ledger1-hq/website/backend/internal/config"
	"github.com/ledger1-hq/website/backend/internal/store"
)

type Repository struct {
	cfg    *config.Config
	dbpool *sql.DB
	table  string
}

func NewRepository(cfg *config.Config, dbpool *sql.DB) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
		table:  store.Table(cfg.Store.Schema, cfg.Store.Container),
	}
}

func (r *Repository) queryCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(r.cfg.Store.QueryTimeout)*time.Second)
}
