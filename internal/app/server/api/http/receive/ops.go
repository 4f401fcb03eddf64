package receive

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "receives-list",
		Method:      http.MethodGet,
		Path:        "/api/receives",
		Summary:     "Страница журнала с поиском и фильтром по датам",
		Tags:        []string{"receives"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "receives-find",
		Method:      http.MethodGet,
		Path:        "/api/receives/{id}",
		Summary:     "Получить запись",
		Tags:        []string{"receives"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "receives-create",
		Method:        http.MethodPost,
		Path:          "/api/receives",
		Summary:       "Добавить запись",
		Description:   "Проверяет обязательные поля (consecutiveNo, date, toWhomAddressed, shortSubject) и возвращает последнюю страницу журнала.",
		Tags:          []string{"receives"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "receives-update",
		Method:      http.MethodPut,
		Path:        "/api/receives/{id}",
		Summary:     "Обновить запись",
		Description: "Меняет только переданные поля. id и consecutiveNo не редактируются.",
		Tags:        []string{"receives"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) clearOp() huma.Operation {
	return huma.Operation{
		OperationID:   "receives-clear",
		Method:        http.MethodDelete,
		Path:          "/api/receives",
		Summary:       "Удалить все записи",
		Tags:          []string{"receives"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) importOp() huma.Operation {
	return huma.Operation{
		OperationID: "receives-import",
		Method:      http.MethodPost,
		Path:        "/api/receives/import",
		Summary:     "Импорт JSON",
		Description: "Заменяет весь журнал содержимым JSON-массива. Если верхний уровень не массив, журнал не меняется.",
		Tags:        []string{"receives", "data"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) exportJSONOp() huma.Operation {
	return huma.Operation{
		OperationID: "receives-export-json",
		Method:      http.MethodGet,
		Path:        "/api/receives/export.json",
		Summary:     "Выгрузка журнала в JSON",
		Tags:        []string{"receives", "data"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) exportCSVOp() huma.Operation {
	return huma.Operation{
		OperationID: "receives-export-csv",
		Method:      http.MethodGet,
		Path:        "/api/receives/export.csv",
		Summary:     "Выгрузка журнала в CSV",
		Tags:        []string{"receives", "data"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) printOp() huma.Operation {
	return huma.Operation{
		OperationID: "receives-print",
		Method:      http.MethodGet,
		Path:        "/api/receives/print",
		Summary:     "Печатная форма (HTML или PDF)",
		Tags:        []string{"receives", "data"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) statsOp() huma.Operation {
	return huma.Operation{
		OperationID: "receives-stats",
		Method:      http.MethodGet,
		Path:        "/api/receives/stats",
		Summary:     "Счетчики по статусам",
		Tags:        []string{"receives"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) nextNumberOp() huma.Operation {
	return huma.Operation{
		OperationID: "receives-next-number",
		Method:      http.MethodGet,
		Path:        "/api/receives/next-number",
		Summary:     "Предложить следующий порядковый номер",
		Tags:        []string{"receives"},
		Middlewares: h.middleware,
	}
}
