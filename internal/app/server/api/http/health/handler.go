package health

import (
	"context"

	"receivecopy/internal/domain/receive"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const (
	StatusOK       = "OK"
	StatusDegraded = "DEGRADED"

	cacheOK          = "ok"
	cacheUnavailable = "unavailable"
)

// Checker - часть сервиса журнала, нужная проверке состояния
type Checker interface {
	Stats(ctx context.Context) receive.Stats
	Ping(ctx context.Context) error
}

type Handler struct {
	checker    Checker
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(checker Checker, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		checker:    checker,
		log:        log.With("component", "health_handler"),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	resp := Response{
		Status:  StatusOK,
		Records: h.checker.Stats(ctx).Total,
		Cache:   cacheOK,
	}
	if err := h.checker.Ping(ctx); err != nil {
		h.log.Warn("cache is unavailable", "error", err)
		resp.Status = StatusDegraded
		resp.Cache = cacheUnavailable
		resp.Error = err.Error()
	}

	return &Output{Body: resp}, nil
}
