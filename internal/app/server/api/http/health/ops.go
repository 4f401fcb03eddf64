package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/v1/health",
		Summary:     "Состояние журнала",
		Description: "Число записей и доступность кэша. Недоступный кэш не роняет проверку, статус становится DEGRADED.",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
