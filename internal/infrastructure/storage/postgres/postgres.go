package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

// Upper - применяет миграции схемы перед работой
type Upper interface {
	Up() error
}

// Storage - слоты кэша в таблице receive_cache
type Storage struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func New(ctx context.Context, databaseURI string, migrator Upper, log *slog.Logger) (*Storage, error) {
	pool, err := pgxpool.New(ctx, databaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if migrator != nil {
		if err := migrator.Up(); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migration error: %w", err)
		}
	}

	return &Storage{
		pool: pool,
		log:  log.With("component", "postgres_cache"),
	}, nil
}

func (s *Storage) Load(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT value FROM receive_cache WHERE key = $1`

	var value []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		s.log.Error("failed to load slot", "key", key, "error", err)
		return nil, fmt.Errorf("load slot %s: %w", key, err)
	}
	return value, nil
}

func (s *Storage) Save(ctx context.Context, key string, data []byte) error {
	const query = `
		INSERT INTO receive_cache (key, value, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	if _, err := s.pool.Exec(ctx, query, key, string(data)); err != nil {
		s.log.Error("failed to save slot", "key", key, "error", err)
		return fmt.Errorf("save slot %s: %w", key, err)
	}
	return nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}
