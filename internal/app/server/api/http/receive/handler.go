package receive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"receivecopy/internal/domain/receive"
	"receivecopy/internal/export"
)

type Handler struct {
	service    receive.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
	now        func() time.Time
}

func NewHandler(service receive.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		service:    service,
		log:        log.With("component", "receive_handler"),
		middleware: mws,
		now:        time.Now,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.clearOp(), h.clear)

	// Статические пути регистрируются до /api/receives/{id}
	huma.Register(api, h.statsOp(), h.stats)
	huma.Register(api, h.nextNumberOp(), h.nextNumber)
	huma.Register(api, h.importOp(), h.importData)
	huma.Register(api, h.exportJSONOp(), h.exportJSON)
	huma.Register(api, h.exportCSVOp(), h.exportCSV)
	huma.Register(api, h.printOp(), h.print)

	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	params, err := input.ListQuery.toDomain()
	if err != nil {
		return nil, err
	}

	resp, err := h.service.List(ctx, params)
	if err != nil {
		return nil, h.toHTTPError(err)
	}

	return &listOutput{Body: resp}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*findOutput, error) {
	rec, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, h.toHTTPError(err)
	}
	return &findOutput{Body: rec}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	resp, err := h.service.Create(ctx, input.Body.record())
	if err != nil {
		return nil, h.toHTTPError(err)
	}
	return &createOutput{Body: resp}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	rec, err := h.service.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, h.toHTTPError(err)
	}
	return &updateOutput{Body: rec}, nil
}

func (h *Handler) clear(ctx context.Context, _ *struct{}) (*struct{}, error) {
	if err := h.service.Clear(ctx); err != nil {
		return nil, h.toHTTPError(err)
	}
	return &struct{}{}, nil
}

func (h *Handler) importData(ctx context.Context, input *importInput) (*importOutput, error) {
	n, err := h.service.Import(ctx, input.RawBody)
	if err != nil {
		return nil, h.toHTTPError(err)
	}
	return &importOutput{Body: importResponse{Imported: n}}, nil
}

func (h *Handler) exportJSON(ctx context.Context, input *exportInput) (*fileOutput, error) {
	data, err := export.JSON(h.service.All(ctx))
	if err != nil {
		return nil, h.toHTTPError(err)
	}
	return h.file(input, data, "application/json", "receives.json")
}

func (h *Handler) exportCSV(ctx context.Context, input *exportInput) (*fileOutput, error) {
	data, err := export.CSV(h.service.All(ctx))
	if err != nil {
		return nil, h.toHTTPError(err)
	}
	return h.file(input, data, "text/csv; charset=utf-8", "receives.csv")
}

func (h *Handler) file(input *exportInput, data []byte, contentType, name string) (*fileOutput, error) {
	etag := export.ETag(data)
	if input.IfNoneMatch == etag {
		return nil, huma.Status304NotModified()
	}

	return &fileOutput{
		ContentType:        contentType,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", name),
		ETag:               etag,
		Body:               data,
	}, nil
}

func (h *Handler) print(ctx context.Context, input *printInput) (*fileOutput, error) {
	params, err := input.ListQuery.toDomain()
	if err != nil {
		return nil, err
	}
	if input.Scope == "all" {
		all := receive.Unbounded
		params.PageSize = &all
		params.Page = 0
		params.LastPage = false
	}

	resp, err := h.service.List(ctx, params)
	if err != nil {
		return nil, h.toHTTPError(err)
	}

	opts := export.PrintOptions{Printed: h.now()}
	if input.Format == "pdf" {
		data, err := export.PDF(resp.Records, opts)
		if err != nil {
			return nil, h.toHTTPError(err)
		}
		return &fileOutput{
			ContentType:        "application/pdf",
			ContentDisposition: `inline; filename="receives.pdf"`,
			Body:               data,
		}, nil
	}

	data, err := export.HTML(resp.Records, opts)
	if err != nil {
		return nil, h.toHTTPError(err)
	}
	return &fileOutput{
		ContentType: "text/html; charset=utf-8",
		Body:        data,
	}, nil
}

func (h *Handler) stats(ctx context.Context, _ *struct{}) (*statsOutput, error) {
	return &statsOutput{Body: h.service.Stats(ctx)}, nil
}

func (h *Handler) nextNumber(ctx context.Context, _ *struct{}) (*nextNumberOutput, error) {
	return &nextNumberOutput{Body: nextNumberResponse{ConsecutiveNo: h.service.NextNumber(ctx)}}, nil
}

func (p ListQuery) toDomain() (receive.ListParams, error) {
	from, to, err := receive.ParseDateRange(p.From, p.To)
	if err != nil {
		return receive.ListParams{}, huma.Error400BadRequest(err.Error())
	}

	params := receive.ListParams{
		Query:    receive.Query{Term: p.Q, From: from, To: to},
		Page:     p.Page,
		LastPage: p.Last,
	}
	if p.PageSize >= 0 {
		size := p.PageSize
		params.PageSize = &size
	}
	return params, nil
}

// toHTTPError переводит доменные ошибки в ответы API
func (h *Handler) toHTTPError(err error) error {
	var verr *receive.ValidationError
	switch {
	case errors.As(err, &verr):
		details := make([]error, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			details = append(details, &huma.ErrorDetail{
				Message:  "required field is missing or invalid",
				Location: "body." + f,
			})
		}
		return huma.Error422UnprocessableEntity(verr.Error(), details...)
	case errors.Is(err, receive.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, receive.ErrMalformedData):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, export.ErrEmpty):
		return huma.Error404NotFound(err.Error())
	default:
		h.log.Error("request failed", "error", err)
		return huma.Error500InternalServerError("internal error")
	}
}
