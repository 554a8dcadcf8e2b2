package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"gophnotes/internal/app/server/api"
	"gophnotes/internal/app/server/config"
	"gophnotes/internal/domain/note"
	"gophnotes/internal/infrastructure/cache"
	"gophnotes/internal/infrastructure/migration"
	"gophnotes/internal/infrastructure/storage/postgres"
	"gophnotes/internal/infrastructure/storage/sqlite"
	"gophnotes/internal/utils/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeStorage, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	var listCache note.ListCache
	if cfg.Redis.Address != "" {
		c, err := cache.NewNoteListCache(cfg.Redis.Address, log)
		if err != nil {
			return err
		}
		defer c.Close()
		listCache = c
	}

	mux := api.New(repos, listCache, cfg, log)

	srv := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "address", cfg.Server.RunAddress, "driver", cfg.DB.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// openStorage выбирает бекенд хранения по конфигурации.
// Для postgres сначала прогоняются миграции; sqlite создает схему сам.
func openStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (api.Repositories, func(), error) {
	switch cfg.DB.Driver {
	case config.DriverSQLite:
		storage, err := sqlite.New(cfg.DB.DatabaseURI)
		if err != nil {
			return api.Repositories{}, nil, err
		}

		repos := api.Repositories{
			Users:    sqlite.NewUserRepository(storage.DB(), log),
			Sessions: sqlite.NewSessionRepository(storage.DB(), log),
			Notes:    sqlite.NewNoteRepository(storage.DB(), log),
		}
		return repos, func() { _ = storage.Close() }, nil

	default:
		if cfg.DB.Migrations != "" {
			mg := migration.NewMigration(cfg, migration.DefaultEngine)
			if err := mg.Up(); err != nil {
				return api.Repositories{}, nil, err
			}
		}

		storage, err := postgres.New(ctx, cfg.DB.DatabaseURI)
		if err != nil {
			return api.Repositories{}, nil, err
		}

		repos := api.Repositories{
			Users:    postgres.NewUserRepository(storage.Pool(), log),
			Sessions: postgres.NewSessionRepository(storage.Pool(), log),
			Notes:    postgres.NewNoteRepository(storage.Pool(), log),
		}
		return repos, func() { storage.Close() }, nil
	}
}
