package receive

import (
	"strings"
	"time"
)

// Query - условия отбора: строка поиска и необязательный диапазон дат.
// Нулевые From/To означают отсутствие границы.
type Query struct {
	Term string
	From time.Time
	To   time.Time
}

// Active сообщает, задано ли хоть одно условие.
func (q Query) Active() bool {
	return strings.TrimSpace(q.Term) != "" || !q.From.IsZero() || !q.To.IsZero()
}

// View - результат отбора. Filtered=false означает "весь список",
// Filtered=true с пустым Records означает "ничего не найдено".
type View struct {
	Filtered bool
	Records  []Record
}

func (v View) Len() int {
	return len(v.Records)
}

// Filter отбирает записи по строке поиска и диапазону дат (условия через AND).
func Filter(records []Record, q Query) View {
	if !q.Active() {
		return View{Records: records}
	}

	term := strings.ToLower(strings.TrimSpace(q.Term))
	hasRange := !q.From.IsZero() || !q.To.IsZero()

	var to time.Time
	if !q.To.IsZero() {
		to = EndOfDay(q.To)
	}

	out := make([]Record, 0, len(records))
	for _, r := range records {
		if term != "" && !strings.Contains(searchText(r), term) {
			continue
		}
		if hasRange && !inRange(r.Date, q.From, to) {
			continue
		}
		out = append(out, r)
	}

	return View{Filtered: true, Records: out}
}

func inRange(date string, from, to time.Time) bool {
	d, ok := ParseDate(date)
	if !ok {
		return false
	}
	if !from.IsZero() && d.Before(from) {
		return false
	}
	if !to.IsZero() && d.After(to) {
		return false
	}
	return true
}

// searchText склеивает непустые поля поиска через пробел в нижнем регистре.
func searchText(r Record) string {
	fields := []string{
		r.ConsecutiveNo,
		r.SlNo,
		r.Subject,
		r.ShortSubject,
		r.ToWhomAddressed,
		string(r.Action),
		r.FileNo,
		r.CollectionNoTitle,
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}
