package storage

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"receivecopy/internal/config"
	"receivecopy/internal/domain/receive"
	"receivecopy/internal/infrastructure/migration"
	"receivecopy/internal/infrastructure/storage/memory"
	"receivecopy/internal/infrastructure/storage/postgres"
	"receivecopy/internal/infrastructure/storage/sqlite"
)

// Storage - долговременный кэш журнала
type Storage interface {
	receive.Cache
	Close() error
}

// Open создает хранилище по STORAGE_DRIVER
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return memory.New(), nil
	case config.DriverSQLite:
		if err := cfg.EnsureDir(); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		return sqlite.New(cfg.Storage.SQLitePath, log)
	case config.DriverPostgres:
		mg := migration.NewMigration(cfg.Storage.Migrations, cfg.Storage.DatabaseURI, migration.DefaultEngine)
		return postgres.New(ctx, cfg.Storage.DatabaseURI, mg, log)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
