package receive

import "fmt"

// Unbounded - размер страницы "все записи"
const Unbounded = 0

// stripWidth - сколько номеров страниц видно вокруг текущей
const stripWidth = 5

// Paginator хранит состояние постраничного вывода. Методы никогда не паникуют.
type Paginator struct {
	pageSize    int
	currentPage int
	total       int
}

func NewPaginator(pageSize int) *Paginator {
	if pageSize < 0 {
		pageSize = Unbounded
	}
	return &Paginator{pageSize: pageSize, currentPage: 1}
}

func (p *Paginator) PageSize() int    { return p.pageSize }
func (p *Paginator) CurrentPage() int { return p.currentPage }
func (p *Paginator) Total() int       { return p.total }

// PageCount - число страниц, не меньше 1.
func (p *Paginator) PageCount() int {
	if p.pageSize == Unbounded || p.total == 0 {
		return 1
	}
	return (p.total + p.pageSize - 1) / p.pageSize
}

// Slice возвращает записи текущей страницы.
func (p *Paginator) Slice(records []Record) []Record {
	if p.pageSize == Unbounded {
		return records
	}

	start := (p.currentPage - 1) * p.pageSize
	if start >= len(records) {
		return []Record{}
	}
	end := min(start+p.pageSize, len(records))
	return records[start:end]
}

// GoTo переходит на страницу; вне диапазона ничего не меняет и возвращает false.
func (p *Paginator) GoTo(page int) bool {
	if page < 1 || page > p.PageCount() {
		return false
	}
	p.currentPage = page
	return true
}

func (p *Paginator) First() bool { return p.GoTo(1) }
func (p *Paginator) Prev() bool  { return p.GoTo(p.currentPage - 1) }
func (p *Paginator) Next() bool  { return p.GoTo(p.currentPage + 1) }
func (p *Paginator) Last() bool  { return p.GoTo(p.PageCount()) }

// SetPageSize меняет размер страницы и возвращает на первую.
func (p *Paginator) SetPageSize(n int) {
	if n < 0 {
		return
	}
	p.pageSize = n
	p.currentPage = 1
}

// Reset - новый отбор: новая длина и первая страница.
func (p *Paginator) Reset(total int) {
	p.total = max(total, 0)
	p.currentPage = 1
}

// SetTotal меняет длину, сохраняя страницу в допустимых пределах.
func (p *Paginator) SetTotal(total int) {
	p.total = max(total, 0)
	p.currentPage = min(max(p.currentPage, 1), p.PageCount())
}

// Visible - нужна ли панель навигации.
func (p *Paginator) Visible() bool {
	if p.pageSize == Unbounded {
		return p.total > 0
	}
	return p.total > p.pageSize
}

// NavSummary - строка "Showing S-E of T records"
type NavSummary struct {
	Start int  `json:"start"`
	End   int  `json:"end"`
	Total int  `json:"total"`
	All   bool `json:"all"`
}

func (s NavSummary) String() string {
	switch {
	case s.All:
		return fmt.Sprintf("Showing all %d records", s.Total)
	case s.Total == 0:
		return "Showing 0 records"
	default:
		return fmt.Sprintf("Showing %d-%d of %d records", s.Start, s.End, s.Total)
	}
}

func (p *Paginator) Summary() NavSummary {
	if p.pageSize == Unbounded {
		return NavSummary{Start: min(1, p.total), End: p.total, Total: p.total, All: true}
	}
	if p.total == 0 {
		return NavSummary{}
	}

	start := (p.currentPage-1)*p.pageSize + 1
	end := min(p.currentPage*p.pageSize, p.total)
	return NavSummary{Start: start, End: end, Total: p.total}
}

// PageItem - элемент полосы номеров страниц: номер или многоточие
type PageItem struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Active   bool `json:"active,omitempty"`
}

func (i PageItem) String() string {
	switch {
	case i.Ellipsis:
		return "..."
	case i.Active:
		return fmt.Sprintf("[%d]", i.Page)
	default:
		return fmt.Sprintf("%d", i.Page)
	}
}

// Strip строит полосу номеров: окно из пяти страниц вокруг текущей,
// первая и последняя страницы добавляются, если не попали в окно.
func (p *Paginator) Strip() []PageItem {
	total := p.PageCount()
	if total <= 1 {
		return nil
	}

	cur := p.currentPage
	start := max(1, cur-stripWidth/2)
	end := min(total, start+stripWidth-1)
	if end-start+1 < stripWidth {
		start = max(1, end-stripWidth+1)
	}

	items := make([]PageItem, 0, stripWidth+4)
	if start > 1 {
		items = append(items, PageItem{Page: 1})
		if start > 2 {
			items = append(items, PageItem{Ellipsis: true})
		}
	}
	for i := start; i <= end; i++ {
		items = append(items, PageItem{Page: i, Active: i == cur})
	}
	if end < total {
		if end < total-1 {
			items = append(items, PageItem{Ellipsis: true})
		}
		items = append(items, PageItem{Page: total})
	}
	return items
}
