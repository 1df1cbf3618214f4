package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/ledger1-hq/website/backend/internal/config"
	"github.com/ledger1-hq/website/backend/internal/repository"
	"github.com/ledger1-hq/website/backend/internal/seed"
	"github.com/ledger1-hq/website/backend/internal/store"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * configuration
	 **********************************************/
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", "error", err)
		return
	}

	/**********************************************
	 * document store connection
	 **********************************************/
	dbpool, err := sql.Open("pgx", cfg.Store.DSN)
	if err != nil {
		logger.Error("unable to create store connection pool", "error", err)
		return
	}
	defer dbpool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Store.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to reach the document store", "error", err)
		return
	}

	if err := store.Init(ctx, dbpool, cfg.Store.Schema, cfg.Store.Container); err != nil {
		logger.Error("unable to initialize document container", "error", err)
		return
	}

	/**********************************************
	 * seed demo content
	 **********************************************/
	repo := repository.NewRepository(cfg, dbpool)

	if err := seed.Run(repo, logger); err != nil {
		logger.Error("seeding failed", "error", err)
		return
	}
}
