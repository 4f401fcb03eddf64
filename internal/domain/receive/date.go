package receive

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	ShortDateLayout = "Jan 2, 2006"
	LongDateLayout  = "January 2, 2006"
)

var dateLayouts = []string{DateLayout, time.RFC3339, time.RFC3339Nano}

// ParseDate разбирает дату записи. Пустая или нераспознанная строка - ok=false.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate форматирует дату для вывода; нераспознанное значение возвращается как есть.
func FormatDate(s, layout string) string {
	t, ok := ParseDate(s)
	if !ok {
		return s
	}
	return t.Format(layout)
}

// EndOfDay - последний момент календарного дня t (23:59:59.999).
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// ParseDateRange разбирает границы диапазона из пользовательского ввода.
// Пустая граница остается нулевой.
func ParseDateRange(from, to string) (time.Time, time.Time, error) {
	var lo, hi time.Time

	if strings.TrimSpace(from) != "" {
		t, ok := ParseDate(from)
		if !ok {
			return lo, hi, fmt.Errorf("invalid from date %q", from)
		}
		lo = t
	}
	if strings.TrimSpace(to) != "" {
		t, ok := ParseDate(to)
		if !ok {
			return lo, hi, fmt.Errorf("invalid to date %q", to)
		}
		hi = t
	}

	return lo, hi, nil
}
