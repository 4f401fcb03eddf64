package receive

// Session связывает Store, текущий отбор и пагинатор.
// Не потокобезопасна: HTTP-слой создает свою сессию на каждый запрос.
type Session struct {
	store     *Store
	query     Query
	view      View
	paginator *Paginator
}

func NewSession(store *Store, pageSize int) *Session {
	s := &Session{
		store:     store,
		paginator: NewPaginator(pageSize),
	}
	s.Search(Query{})
	return s
}

// PageResult - одна страница с навигацией
type PageResult struct {
	Records   []Record   `json:"records"`
	Filtered  bool       `json:"filtered"`
	Summary   NavSummary `json:"summary"`
	Strip     []PageItem `json:"strip"`
	Page      int        `json:"page"`
	PageCount int        `json:"pageCount"`
	PageSize  int        `json:"pageSize"`
	Total     int        `json:"total"`
}

// Search пересчитывает отбор и возвращает на первую страницу.
func (s *Session) Search(q Query) {
	s.query = q
	s.view = Filter(s.store.All(), q)
	s.paginator.Reset(s.view.Len())
}

// Refresh пересчитывает отбор после изменения данных, оставаясь на текущей странице.
func (s *Session) Refresh() {
	s.view = Filter(s.store.All(), s.query)
	s.paginator.SetTotal(s.view.Len())
}

// AfterAdd показывает последнюю страницу, где оказалась новая запись.
func (s *Session) AfterAdd() {
	s.Refresh()
	s.paginator.Last()
}

func (s *Session) SetPageSize(n int) {
	s.paginator.SetPageSize(n)
}

func (s *Session) GoTo(page int) bool {
	return s.paginator.GoTo(page)
}

func (s *Session) Query() Query {
	return s.query
}

func (s *Session) View() View {
	return s.view
}

func (s *Session) Paginator() *Paginator {
	return s.paginator
}

func (s *Session) Page() PageResult {
	return PageResult{
		Records:   s.paginator.Slice(s.view.Records),
		Filtered:  s.view.Filtered,
		Summary:   s.paginator.Summary(),
		Strip:     s.paginator.Strip(),
		Page:      s.paginator.CurrentPage(),
		PageCount: s.paginator.PageCount(),
		PageSize:  s.paginator.PageSize(),
		Total:     s.view.Len(),
	}
}
