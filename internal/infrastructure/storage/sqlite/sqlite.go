package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"
)

// Storage - слоты кэша в локальном файле SQLite
type Storage struct {
	db  *sql.DB
	log *slog.Logger
}

func New(path string, log *slog.Logger) (*Storage, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	storage := &Storage{
		db:  db,
		log: log.With("component", "sqlite_cache"),
	}

	// Создаем таблицы
	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init sqlite tables: %w", err)
	}

	return storage, nil
}

func (s *Storage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS receive_cache (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);
	`)
	return err
}

func (s *Storage) Load(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM receive_cache WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		s.log.Error("failed to load slot", "key", key, "error", err)
		return nil, fmt.Errorf("load slot %s: %w", key, err)
	}
	return []byte(value), nil
}

func (s *Storage) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO receive_cache (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		s.log.Error("failed to save slot", "key", key, "error", err)
		return fmt.Errorf("save slot %s: %w", key, err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
