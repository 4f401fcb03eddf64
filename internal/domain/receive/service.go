package receive

import (
	"context"

	"golang.org/x/exp/slog"
)

// Service - сценарии работы с журналом для HTTP и CLI
type Service struct {
	store    *Store
	pageSize int
	log      *slog.Logger
}

type Servicer interface {
	List(ctx context.Context, params ListParams) (ListResponse, error)
	Find(ctx context.Context, id string) (Record, error)
	Create(ctx context.Context, rec Record) (CreateResponse, error)
	Update(ctx context.Context, id string, patch Patch) (Record, error)
	Clear(ctx context.Context) error
	Import(ctx context.Context, data []byte) (int, error)
	All(ctx context.Context) []Record
	Stats(ctx context.Context) Stats
	NextNumber(ctx context.Context) string
	Ping(ctx context.Context) error
}

// ListParams - параметры выборки страницы. Page=0 - первая страница,
// PageSize=nil - размер по умолчанию, 0 - все записи.
type ListParams struct {
	Query    Query
	Page     int
	PageSize *int
	LastPage bool
}

type ListResponse struct {
	PageResult
	Stats Stats `json:"stats"`
}

type CreateResponse struct {
	Record Record     `json:"record"`
	Page   PageResult `json:"page"`
}

func NewService(store *Store, pageSize int, log *slog.Logger) *Service {
	if pageSize < 0 {
		pageSize = Unbounded
	}
	return &Service{
		store:    store,
		pageSize: pageSize,
		log:      log.With("component", "receive_service"),
	}
}

// DefaultPageSize - размер страницы, заданный в конфигурации
func (s *Service) DefaultPageSize() int {
	return s.pageSize
}

// Session открывает сессию с параметрами выборки.
// Страница вне диапазона игнорируется, остается первая.
func (s *Service) Session(params ListParams) *Session {
	size := s.pageSize
	if params.PageSize != nil && *params.PageSize >= 0 {
		size = *params.PageSize
	}

	sess := NewSession(s.store, size)
	sess.Search(params.Query)

	switch {
	case params.LastPage:
		sess.Paginator().Last()
	case params.Page > 0:
		if !sess.GoTo(params.Page) {
			s.log.Debug("page out of range", "page", params.Page, "page_count", sess.Paginator().PageCount())
		}
	}
	return sess
}

func (s *Service) List(_ context.Context, params ListParams) (ListResponse, error) {
	sess := s.Session(params)
	return ListResponse{
		PageResult: sess.Page(),
		Stats:      CountStats(s.store.All()),
	}, nil
}

func (s *Service) Find(_ context.Context, id string) (Record, error) {
	return s.store.Get(id)
}

// Create добавляет запись и возвращает последнюю страницу полного списка.
func (s *Service) Create(ctx context.Context, rec Record) (CreateResponse, error) {
	created, err := s.store.Add(ctx, rec)
	if err != nil {
		return CreateResponse{}, err
	}

	sess := NewSession(s.store, s.pageSize)
	sess.AfterAdd()

	return CreateResponse{Record: created, Page: sess.Page()}, nil
}

func (s *Service) Update(ctx context.Context, id string, patch Patch) (Record, error) {
	return s.store.Update(ctx, id, patch)
}

func (s *Service) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func (s *Service) Import(ctx context.Context, data []byte) (int, error) {
	n, err := s.store.Import(ctx, data)
	if err != nil {
		s.log.Warn("import rejected", "error", err)
		return 0, err
	}
	return n, nil
}

func (s *Service) All(_ context.Context) []Record {
	return s.store.All()
}

func (s *Service) Stats(_ context.Context) Stats {
	return CountStats(s.store.All())
}

func (s *Service) NextNumber(_ context.Context) string {
	return NextConsecutiveNo(s.store.All())
}

// Ping проверяет доступность долговременного кэша.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
