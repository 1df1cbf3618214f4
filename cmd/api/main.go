package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/ledger1-hq/website/backend/internal/config"
	"github.com/ledger1-hq/website/backend/internal/domain"
	"github.com/ledger1-hq/website/backend/internal/handler"
	"github.com/ledger1-hq/website/backend/internal/repository"
	"github.com/ledger1-hq/website/backend/internal/store"
	"github.com/ledger1-hq/website/backend/internal/utils"
	"github.com/robfig/cron/v3"
	"golang.org/x/crypto/bcrypt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
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

	dbpool.SetMaxOpenConns(cfg.Store.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Store.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Store.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Store.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not dial; ping to fail fast on a bad DSN
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to reach the document store", "error", err)
		return
	}

	/**********************************************
	 * document container bootstrap (idempotent)
	 **********************************************/
	if err := store.Init(ctx, dbpool, cfg.Store.Schema, cfg.Store.Container); err != nil {
		logger.Error("unable to initialize document container", "error", err)
		return
	}

	/**********************************************
	 * repository
	 **********************************************/
	repo := repository.NewRepository(cfg, dbpool)

	/**********************************************
	 * optional default admin bootstrap
	 **********************************************/
	if cfg.Bootstrap.Enabled {
		if err := bootstrapAdmin(cfg, repo, logger); err != nil {
			logger.Error("unable to bootstrap default admin", "error", err)
			return
		}
	}

	/**********************************************
	 * periodic session sweep
	 **********************************************/
	sweeper := cron.New()
	if _, err := sweeper.AddFunc(cfg.Session.SweepSchedule, func() {
		swept, err := repo.DeleteExpiredSessions()
		if err != nil {
			logger.Error("session sweep failed", "error", err)
			return
		}
		if swept > 0 {
			logger.Info("swept expired sessions", "count", swept)
		}
	}); err != nil {
		logger.Error("invalid session sweep schedule", "error", err)
		return
	}
	sweeper.Start()
	defer sweeper.Stop()

	/**********************************************
	 * handler
	 **********************************************/
	h, err := handler.NewHandler(cfg, repo)
	if err != nil {
		logger.Error("unable to create handler", "error", err)
		return
	}
	h.RegisterRoutes()

	/**********************************************
	 * HTTP server
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      h.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting server...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("unable to start server", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", slog.String("error", err.Error()))
	}
	logger.Info("server stopped")
}

// bootstrapAdmin creates the default admin account when the store holds no
// users at all. A concurrent start racing on the username unique index is
// treated as success.
func bootstrapAdmin(cfg *config.Config, repo *repository.Repository, logger *slog.Logger) error {
	if cfg.Bootstrap.Password == "" {
		return errors.New("BOOTSTRAP_PASSWORD must be set when BOOTSTRAP_ENABLED is true")
	}

	count, err := repo.CountUsers()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Bootstrap.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		ID:           utils.NewUserID(),
		Username:     cfg.Bootstrap.Username,
		PasswordHash: string(passwordHash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}

	if err := repo.CreateUser(admin); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			// another instance won the race; nothing to do
			return nil
		}
		return err
	}

	logger.Info("default admin user created", "username", admin.Username)
	return nil
}
