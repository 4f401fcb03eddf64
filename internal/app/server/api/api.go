// HTTP API журнала входящей корреспонденции.

//GET    /api/v1/health               # Проверка живости
//GET    /api/receives                # Страница журнала (q, from, to, page, page_size, last)
//POST   /api/receives                # Добавить запись
//DELETE /api/receives                # Удалить все записи
//GET    /api/receives/{id}           # Получить запись
//PUT    /api/receives/{id}           # Обновить запись
//POST   /api/receives/import         # Импорт JSON-массива
//GET    /api/receives/export.json    # Выгрузка JSON
//GET    /api/receives/export.csv     # Выгрузка CSV
//GET    /api/receives/print          # Печатная форма HTML/PDF
//GET    /api/receives/stats          # Счетчики
//GET    /api/receives/next-number    # Следующий порядковый номер

package api

import (
	healthAPI "receivecopy/internal/app/server/api/http/health"
	"receivecopy/internal/app/server/api/http/middleware"
	"receivecopy/internal/app/server/api/http/middleware/logger"
	receiveAPI "receivecopy/internal/app/server/api/http/receive"
	"receivecopy/internal/domain/receive"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health  *healthAPI.Handler
	Receive *receiveAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(service receive.Servicer, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.Recoverer)

	config := huma.DefaultConfig("Receive Copy API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(service, log)
	h.Health.SetupRoutes(API)
	h.Receive.SetupRoutes(API)

	return mux
}

func handlers(service receive.Servicer, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(service, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	receiveHandler := receiveAPI.NewHandler(service, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		Receive: receiveHandler,
	}
}
