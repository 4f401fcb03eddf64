package receive

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"receivecopy/internal/domain/receive"
	"receivecopy/internal/infrastructure/storage/memory"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, params receive.ListParams) (receive.ListResponse, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(receive.ListResponse), args.Error(1)
}

func (m *MockService) Find(ctx context.Context, id string) (receive.Record, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(receive.Record), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, rec receive.Record) (receive.CreateResponse, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(receive.CreateResponse), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id string, patch receive.Patch) (receive.Record, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(receive.Record), args.Error(1)
}

func (m *MockService) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockService) Import(ctx context.Context, data []byte) (int, error) {
	args := m.Called(ctx, data)
	return args.Int(0), args.Error(1)
}

func (m *MockService) All(ctx context.Context) []receive.Record {
	args := m.Called(ctx)
	return args.Get(0).([]receive.Record)
}

func (m *MockService) Stats(ctx context.Context) receive.Stats {
	args := m.Called(ctx)
	return args.Get(0).(receive.Stats)
}

func (m *MockService) NextNumber(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

func (m *MockService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// setup поднимает API поверх настоящего сервиса с хранилищем в памяти
func setup(t *testing.T, n int) (humatest.TestAPI, *receive.Store) {
	t.Helper()

	log := slog.Default()
	store := receive.NewStore(memory.New(), log)
	for i := 1; i <= n; i++ {
		no := strconv.Itoa(i)
		_, err := store.Add(context.Background(), receive.Record{
			ConsecutiveNo:   no,
			Date:            "2024-01-" + pad(i%28+1),
			ToWhomAddressed: "Director",
			ShortSubject:    "Letter " + no,
		})
		require.NoError(t, err)
	}

	_, api := humatest.New(t)
	h := NewHandler(receive.NewService(store, 10, log), log, huma.Middlewares{})
	h.now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }
	h.SetupRoutes(api)

	return api, store
}

func pad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}

func TestHandler_List(t *testing.T) {
	api, _ := setup(t, 25)

	t.Run("default page", func(t *testing.T) {
		resp := api.Get("/api/receives")
		require.Equal(t, http.StatusOK, resp.Code)

		body := decode[receive.ListResponse](t, resp.Body.Bytes())
		assert.Len(t, body.Records, 10)
		assert.Equal(t, 3, body.PageCount)
		assert.False(t, body.Filtered)
		assert.Equal(t, 25, body.Stats.Total)
	})

	t.Run("third page", func(t *testing.T) {
		resp := api.Get("/api/receives?page=3")
		require.Equal(t, http.StatusOK, resp.Code)

		body := decode[receive.ListResponse](t, resp.Body.Bytes())
		assert.Len(t, body.Records, 5)
		assert.Equal(t, "21", body.Records[0].ConsecutiveNo)
		assert.Equal(t, receive.NavSummary{Start: 21, End: 25, Total: 25}, body.Summary)
	})

	t.Run("unbounded", func(t *testing.T) {
		resp := api.Get("/api/receives?page_size=0")
		body := decode[receive.ListResponse](t, resp.Body.Bytes())
		assert.Len(t, body.Records, 25)
		assert.True(t, body.Summary.All)
	})

	t.Run("search with no matches", func(t *testing.T) {
		resp := api.Get("/api/receives?q=nothing")
		body := decode[receive.ListResponse](t, resp.Body.Bytes())
		assert.True(t, body.Filtered)
		assert.Empty(t, body.Records)
		assert.Equal(t, 25, body.Stats.Total)
	})

	t.Run("bad date", func(t *testing.T) {
		resp := api.Get("/api/receives?from=yesterday")
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestHandler_Create(t *testing.T) {
	api, store := setup(t, 20)

	t.Run("created on last page", func(t *testing.T) {
		resp := api.Post("/api/receives", map[string]any{
			"consecutiveNo":   "21",
			"date":            "2024-02-01",
			"toWhomAddressed": "HR",
			"shortSubject":    "New letter",
		})
		require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

		body := decode[receive.CreateResponse](t, resp.Body.Bytes())
		assert.NotEmpty(t, body.Record.ID)
		assert.Equal(t, receive.ActionPending, body.Record.Action)
		assert.Equal(t, 3, body.Page.Page)
		assert.Equal(t, 21, store.Len())
	})

	t.Run("missing fields are reported per field", func(t *testing.T) {
		resp := api.Post("/api/receives", map[string]any{
			"consecutiveNo": "22",
			"date":          "2024-02-01",
		})
		require.Equal(t, http.StatusUnprocessableEntity, resp.Code)

		var body huma.ErrorModel
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		locations := make([]string, 0, len(body.Errors))
		for _, e := range body.Errors {
			locations = append(locations, e.Location)
		}
		assert.Equal(t, []string{"body.toWhomAddressed", "body.shortSubject"}, locations)
		assert.Equal(t, 21, store.Len())
	})
}

func TestHandler_FindAndUpdate(t *testing.T) {
	api, store := setup(t, 3)
	id := store.All()[1].ID

	resp := api.Get("/api/receives/" + id)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "2", decode[receive.Record](t, resp.Body.Bytes()).ConsecutiveNo)

	resp = api.Get("/api/receives/unknown")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = api.Put("/api/receives/"+id, map[string]any{"action": "success", "remarks": "done"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	updated := decode[receive.Record](t, resp.Body.Bytes())
	assert.Equal(t, receive.ActionSuccess, updated.Action)
	assert.Equal(t, "done", updated.Remarks)
	assert.Equal(t, "2", updated.ConsecutiveNo)

	resp = api.Put("/api/receives/unknown", map[string]any{"remarks": "x"})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = api.Put("/api/receives/"+id, map[string]any{"shortSubject": " "})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHandler_ImportExportClear(t *testing.T) {
	api, store := setup(t, 2)

	resp := api.Post("/api/receives/import", "Content-Type: application/json", strings.NewReader(`{"not":"array"}`))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, 2, store.Len())

	resp = api.Post("/api/receives/import", "Content-Type: application/json",
		strings.NewReader(`[{"slNo":"7","subject":"Imported"},{"id":"x","consecutiveNo":"8"},{"consecutiveNo":"9"}]`))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Equal(t, 3, decode[importResponse](t, resp.Body.Bytes()).Imported)
	assert.Equal(t, 3, store.Len())

	resp = api.Get("/api/receives/export.csv")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, `attachment; filename="receives.csv"`, resp.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(resp.Body.String(), `"Consecutive No"`))
	assert.Contains(t, resp.Body.String(), `"7","","","Imported"`)

	resp = api.Get("/api/receives/export.json")
	require.Equal(t, http.StatusOK, resp.Code)
	etag := resp.Header().Get("ETag")
	require.NotEmpty(t, etag)
	assert.Len(t, decode[[]receive.Record](t, resp.Body.Bytes()), 3)

	resp = api.Get("/api/receives/export.json", "If-None-Match: "+etag)
	assert.Equal(t, http.StatusNotModified, resp.Code)

	resp = api.Get("/api/receives/next-number")
	assert.Equal(t, "10", decode[nextNumberResponse](t, resp.Body.Bytes()).ConsecutiveNo)

	resp = api.Delete("/api/receives")
	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, 0, store.Len())

	resp = api.Get("/api/receives/export.csv")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandler_Print(t *testing.T) {
	api, _ := setup(t, 15)

	resp := api.Get("/api/receives/print")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header().Get("Content-Type"))
	assert.Contains(t, resp.Body.String(), "Printed: 05/01/2024")
	assert.Equal(t, 10, strings.Count(resp.Body.String(), "<td class=\"left\">Director</td>"))

	resp = api.Get("/api/receives/print?scope=all")
	assert.Equal(t, 15, strings.Count(resp.Body.String(), "<td class=\"left\">Director</td>"))

	resp = api.Get("/api/receives/print?format=pdf&page=2")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/pdf", resp.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(resp.Body.String(), "%PDF-"))

	resp = api.Get("/api/receives/print?q=absent")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandler_Stats(t *testing.T) {
	svc := new(MockService)
	svc.On("Stats", mock.Anything).Return(receive.Stats{Total: 3, Pending: 2, Success: 1})

	_, api := humatest.New(t)
	NewHandler(svc, nil, nil).SetupRoutes(api)

	resp := api.Get("/api/receives/stats")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, receive.Stats{Total: 3, Pending: 2, Success: 1}, decode[receive.Stats](t, resp.Body.Bytes()))
	svc.AssertExpectations(t)
}

func TestHandler_PersistFailureIsInternalError(t *testing.T) {
	svc := new(MockService)
	svc.On("Clear", mock.Anything).Return(errors.New("persist receives: disk full"))

	_, api := humatest.New(t)
	NewHandler(svc, nil, nil).SetupRoutes(api)

	resp := api.Delete("/api/receives")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NotContains(t, resp.Body.String(), "disk full")
}
