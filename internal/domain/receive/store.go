package receive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// DefaultCacheKey - имя слота в долговременном кэше
const DefaultCacheKey = "receives"

// Source - откуда при старте взят список записей
type Source string

const (
	SourceCache Source = "cache"
	SourceSeed  Source = "seed"
	SourceEmpty Source = "empty"
)

// LoadResult - итог начальной загрузки
type LoadResult struct {
	Source   Source
	Count    int
	Notice   string
	SeedErr  error
	CacheErr error
}

// Store - единственный источник истины для списка записей.
// Каждая мутация синхронно сохраняется в кэш до возврата.
type Store struct {
	mu       sync.RWMutex
	records  []Record
	cache    Cache
	key      string
	newID    func() string
	required []Field
	log      *slog.Logger
}

type Option func(*Store)

// WithKey задает имя слота в кэше.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithIDGenerator подменяет генератор идентификаторов.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithRequired задает набор обязательных полей при создании.
func WithRequired(fields ...Field) Option {
	return func(s *Store) {
		s.required = fields
	}
}

func NewStore(cache Cache, log *slog.Logger, opts ...Option) *Store {
	s := &Store{
		records:  []Record{},
		cache:    cache,
		key:      DefaultCacheKey,
		newID:    uuid.NewString,
		required: DefaultRequired,
		log:      log.With("component", "receive_store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewID выдает идентификатор, не занятый ни одной записью.
func (s *Store) NewID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uniqueIDLocked()
}

func (s *Store) uniqueIDLocked() string {
	for {
		id := s.newID()
		if id != "" && s.indexLocked(id) < 0 {
			return id
		}
	}
}

// LoadInitial загружает начальные данные.
// Приоритет: локальные правки в кэше > начальный набор > пусто.
// Если кэш не читается, начальный набор показывается, но в кэш не пишется.
func (s *Store) LoadInitial(ctx context.Context, seed SeedSource) (LoadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seeded, seedErr := s.fetchSeed(ctx, seed)
	if seedErr != nil {
		s.log.Warn("seed unavailable", "error", seedErr)
	}

	cached, cacheErr := s.readCacheLocked(ctx)
	if cacheErr != nil {
		if seedErr == nil {
			s.records = seeded
			return LoadResult{
				Source:   SourceSeed,
				Count:    len(seeded),
				Notice:   "Local cache unavailable, showing initial data",
				CacheErr: cacheErr,
			}, nil
		}

		s.records = []Record{}
		return LoadResult{
			Source:   SourceEmpty,
			Notice:   "No initial data found",
			SeedErr:  seedErr,
			CacheErr: cacheErr,
		}, nil
	}

	if seedErr == nil {
		if len(cached) > 0 {
			s.records = cached
			s.log.Info("cache preferred over seed", "count", len(cached))
			return LoadResult{Source: SourceCache, Count: len(cached)}, nil
		}

		s.records = seeded
		if err := s.persistLocked(ctx); err != nil {
			return LoadResult{}, err
		}
		s.log.Info("seed loaded", "source", seed.String(), "count", len(seeded))
		return LoadResult{Source: SourceSeed, Count: len(seeded)}, nil
	}

	if len(cached) > 0 {
		s.records = cached
		return LoadResult{
			Source:  SourceCache,
			Count:   len(cached),
			Notice:  "Loaded data from local cache",
			SeedErr: seedErr,
		}, nil
	}

	s.records = []Record{}
	return LoadResult{
		Source:  SourceEmpty,
		Notice:  "No initial data found",
		SeedErr: seedErr,
	}, nil
}

func (s *Store) fetchSeed(ctx context.Context, seed SeedSource) ([]Record, error) {
	if seed == nil {
		return nil, errors.New("seed source not configured")
	}

	data, err := seed.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch seed %s: %w", seed, err)
	}

	records, err := Decode(data, s.uniqueIDLocked)
	if err != nil {
		return nil, fmt.Errorf("decode seed %s: %w", seed, err)
	}
	return records, nil
}

// All возвращает копию списка в порядке добавления.
func (s *Store) All() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Get возвращает запись по id.
func (s *Store) Get(id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return Record{}, ErrNotFound
	}
	return s.records[i], nil
}

// Add проверяет обязательные поля, присваивает новый id и сохраняет запись.
func (s *Store) Add(ctx context.Context, rec Record) (Record, error) {
	rec = trimRecord(rec)
	if err := Validate(rec, s.required); err != nil {
		return Record{}, err
	}
	if rec.Action == "" {
		rec.Action = ActionPending
	}
	rec.mirror()

	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = s.uniqueIDLocked()

	prev := s.records
	s.records = append(slices.Clone(prev), rec)
	if err := s.persistLocked(ctx); err != nil {
		s.records = prev
		return Record{}, err
	}

	s.log.Info("receive added", "id", rec.ID, "consecutive_no", rec.ConsecutiveNo)
	return rec, nil
}

// Update применяет патч к записи. id и номер не меняются.
// Проверяются только поля из патча.
func (s *Store) Update(ctx context.Context, id string, patch Patch) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return Record{}, ErrNotFound
	}
	if err := ValidatePatch(patch, s.required); err != nil {
		return Record{}, err
	}

	updated := patch.Apply(s.records[i])

	prev := s.records
	s.records = slices.Clone(prev)
	s.records[i] = updated
	if err := s.persistLocked(ctx); err != nil {
		s.records = prev
		return Record{}, err
	}

	s.log.Info("receive updated", "id", id)
	return updated, nil
}

// Clear удаляет все записи.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.records
	s.records = []Record{}
	if err := s.persistLocked(ctx); err != nil {
		s.records = prev
		return err
	}

	s.log.Info("receives cleared", "count", len(prev))
	return nil
}

// ReplaceAll заменяет весь список (импорт). Записи без id получают новый.
func (s *Store) ReplaceAll(ctx context.Context, records []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.records
	s.records = Normalize(records, s.uniqueIDLocked)
	if err := s.persistLocked(ctx); err != nil {
		s.records = prev
		return err
	}

	s.log.Info("receives replaced", "count", len(s.records))
	return nil
}

// Import разбирает JSON-массив и заменяет им весь список.
// При ошибке разбора список не меняется.
func (s *Store) Import(ctx context.Context, data []byte) (int, error) {
	records, err := Decode(data, func() string { return "" })
	if err != nil {
		return 0, err
	}
	if err := s.ReplaceAll(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// Persist сохраняет текущий список в кэш.
func (s *Store) Persist(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persistLocked(ctx)
}

// Restore перечитывает список из кэша. Битые, отсутствующие или
// недоступные данные не считаются ошибкой: возвращается false, список не меняется.
func (s *Store) Restore(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readCacheLocked(ctx)
	if err != nil || records == nil {
		return false
	}
	s.records = records
	return true
}

// Ping читает слот кэша, не меняя список.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := s.cache.Load(ctx, s.key); err != nil {
		return fmt.Errorf("load cache %s: %w", s.key, err)
	}
	return nil
}

func (s *Store) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(s.records)
	if err != nil {
		return fmt.Errorf("marshal receives: %w", err)
	}
	if err := s.cache.Save(ctx, s.key, data); err != nil {
		s.log.Error("failed to persist receives", "key", s.key, "error", err)
		return fmt.Errorf("persist receives: %w", err)
	}
	return nil
}

// readCacheLocked различает недоступный кэш (ошибка) и пустой или битый слот (nil, nil).
func (s *Store) readCacheLocked(ctx context.Context) ([]Record, error) {
	data, err := s.cache.Load(ctx, s.key)
	if err != nil {
		s.log.Warn("cache read failed", "key", s.key, "error", err)
		return nil, fmt.Errorf("load cache %s: %w", s.key, err)
	}
	if data == nil {
		return nil, nil
	}

	records, err := Decode(data, s.uniqueIDLocked)
	if err != nil {
		s.log.Warn("cache holds malformed data", "key", s.key, "error", err)
		return nil, nil
	}
	return records, nil
}

func (s *Store) indexLocked(id string) int {
	return slices.IndexFunc(s.records, func(r Record) bool { return r.ID == id })
}

func trimRecord(r Record) Record {
	for _, f := range []*string{
		&r.ConsecutiveNo, &r.Date, &r.ToWhomAddressed, &r.ShortSubject,
		&r.FileNo, &r.SerialNoOfLetter, &r.CollectionNoTitle, &r.FileNoInCollection,
		&r.ReplyNo, &r.ReplyDate, &r.ReminderNo, &r.ReminderDate,
		&r.StampRs, &r.StampP, &r.Remarks,
	} {
		*f = strings.TrimSpace(*f)
	}
	r.Action = Action(strings.TrimSpace(string(r.Action)))
	return r
}
