package seed

import (
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"receivecopy/internal/domain/receive"
)

// Open выбирает источник начальных данных: http(s):// - URL, иначе путь к файлу.
// Пустая строка - источника нет.
func Open(source string, timeout time.Duration, log *slog.Logger) receive.SeedSource {
	source = strings.TrimSpace(source)
	switch {
	case source == "":
		return nil
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return NewHTTP(source, timeout, log)
	default:
		return NewFile(source)
	}
}
