package client

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"receivecopy/internal/config"
	"receivecopy/internal/domain/receive"
	"receivecopy/internal/infrastructure/seed"
	"receivecopy/internal/infrastructure/storage"
	"receivecopy/internal/infrastructure/storage/memory"
)

// App - собранное приложение: хранилище, журнал и сервис поверх них
type App struct {
	config  *config.Config
	log     *slog.Logger
	storage storage.Storage
	store   *receive.Store
	service *receive.Service
	loaded  receive.LoadResult
}

// New открывает хранилище и загружает начальные данные.
// Если SQLite недоступен, журнал живет в памяти до конца процесса.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	st, err := storage.Open(ctx, cfg, log)
	if err != nil {
		if cfg.Storage.Driver != config.DriverSQLite {
			return nil, fmt.Errorf("ошибка инициализации хранилища: %w", err)
		}
		log.Warn("Не удалось инициализировать SQLite, используем память", "error", err)
		st = memory.New()
	}

	return open(ctx, cfg, log, st, seed.Open(cfg.Seed.Source, cfg.Seed.Timeout, log))
}

func open(ctx context.Context, cfg *config.Config, log *slog.Logger, st storage.Storage, src receive.SeedSource) (*App, error) {
	store := receive.NewStore(st, log, receive.WithKey(cfg.Storage.CacheKey))

	loadCtx, cancel := context.WithTimeout(ctx, cfg.Seed.Timeout)
	defer cancel()

	loaded, err := store.LoadInitial(loadCtx, src)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("ошибка загрузки данных: %w", err), st.Close())
	}

	log.Debug("Данные загружены", "source", loaded.Source, "count", loaded.Count)

	return &App{
		config:  cfg,
		log:     log,
		storage: st,
		store:   store,
		service: receive.NewService(store, cfg.PageSize, log),
		loaded:  loaded,
	}, nil
}

// Service возвращает сервис журнала для HTTP и CLI
func (a *App) Service() *receive.Service {
	return a.service
}

func (a *App) Store() *receive.Store {
	return a.store
}

func (a *App) Config() *config.Config {
	return a.config
}

func (a *App) Logger() *slog.Logger {
	return a.log
}

// Loaded - откуда взят список при старте и что показать пользователю
func (a *App) Loaded() receive.LoadResult {
	return a.loaded
}

// Close закрывает хранилище
func (a *App) Close() error {
	if err := a.storage.Close(); err != nil {
		return fmt.Errorf("ошибка закрытия хранилища: %w", err)
	}
	return nil
}
