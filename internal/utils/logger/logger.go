package logger

import (
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"receivecopy/internal/config"
	"receivecopy/internal/utils/logger/handlers/slogpretty"
)

// New создает логгер в stdout по окружению: local - цветной, dev - JSON debug, prod - JSON info
func New(env string) *slog.Logger {
	return NewWithWriter(os.Stdout, env, "")
}

// NewWithWriter позволяет задать вывод и уровень (LOG_LEVEL). Пустой уровень - по окружению.
func NewWithWriter(w io.Writer, env, level string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = prettySlog(w, levelOr(level, slog.LevelDebug))
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: levelOr(level, slog.LevelDebug)}))
	default:
		log = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: levelOr(level, slog.LevelInfo)}))
	}

	return log
}

// Discard - логгер, который ничего не пишет
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func prettySlog(w io.Writer, level slog.Level) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	handler := opts.NewPrettyHandler(w)
	return slog.New(handler)
}

func levelOr(level string, def slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return def
	}
}
