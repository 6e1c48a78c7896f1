package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driver-buddy/internal/app/service"
	"driver-buddy/internal/model"
	"driver-buddy/internal/repository"
	"driver-buddy/internal/repository/sqlite"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	now := func() time.Time { return time.Date(2024, 6, 13, 12, 0, 0, 0, time.UTC) }
	settingsRepo := sqlite.NewSqliteSettingsRepo(db)
	store := repository.NewSelector(settingsRepo, sqlite.NewStore(db), nil)
	settings := service.NewSettingsService(settingsRepo)
	pay := service.NewPayService(store, settings)
	pay.Now = now
	timeSvc := service.NewTimeService(store, store)
	timeSvc.Now = now

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(RouterConfig{Env: "test", AllowedOrigins: []string{"*"}}, logger,
		NewSettingsHandler(service.NewDriverService(sqlite.NewSqliteDriverRepo(db)), settings),
		NewTimeHandler(timeSvc),
		NewPayHandler(pay, service.NewExportService(pay)),
	)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func call(t *testing.T, srv *httptest.Server, method, path string, body any) (*http.Response, envelope) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, srv.URL+path, rd)
	require.NoError(t, err)
	req.Header.Set("X-User-ID", "42")
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &env))
	} else {
		env.Data = raw
	}
	return resp, env
}

func TestUserHeaderRequired(t *testing.T) {
	srv := newTestServer(t)
	resp, err := srv.Client().Get(srv.URL + "/api/v1/settings")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSettingsEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, env := call(t, srv, http.MethodGet, "/api/v1/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)

	s := model.DefaultSettings()
	s.WeekStartDay = "Sunday"
	s.EnableNI = true
	resp, env = call(t, srv, http.MethodPut, "/api/v1/settings", s)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var saved model.Settings
	require.NoError(t, json.Unmarshal(env.Data, &saved))
	assert.Equal(t, "sunday", saved.WeekStartDay)

	s.StorageMode = "dropbox"
	resp, env = call(t, srv, http.MethodPut, "/api/v1/settings", s)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)

	s.StorageMode = model.StorageCloud
	resp, _ = call(t, srv, http.MethodPut, "/api/v1/settings", s)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = call(t, srv, http.MethodGet, "/api/v1/pay", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, "cloud mode without a cloud store")
}

func TestPayEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, env := call(t, srv, http.MethodPost, "/api/v1/pay", map[string]any{
		"date": "2024-06-10", "standardHours": 8, "standardRate": 12.5, "notes": "A1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.DailyPay
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, 100.0, created.TotalPay)
	require.NotEmpty(t, created.ID)

	resp, _ = call(t, srv, http.MethodPost, "/api/v1/pay", map[string]any{"date": "10/06/2024"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, env = call(t, srv, http.MethodPut, "/api/v1/pay/"+created.ID, map[string]any{
		"date": "2024-06-11", "standardHours": 10, "standardRate": 12.5,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = call(t, srv, http.MethodGet, "/api/v1/pay?period=week&date=2024-06-13", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var view service.HistoryView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "Mon 10 Jun - 16 Jun", view.Label)
	assert.Equal(t, 1, view.Totals.Count)
	assert.Equal(t, 125.0, view.Totals.Net)

	resp, _ = call(t, srv, http.MethodGet, "/api/v1/pay?date=june", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, env = call(t, srv, http.MethodGet, "/api/v1/pay/export?period=month&date=2024-06-01", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, string(env.Data), "2024-06-11")

	resp, _ = call(t, srv, http.MethodDelete, "/api/v1/pay/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, env = call(t, srv, http.MethodDelete, "/api/v1/pay/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestTimeEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := call(t, srv, http.MethodPost, "/api/v1/entries/submit", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "nothing to submit")

	resp, _ = call(t, srv, http.MethodPost, "/api/v1/entries", map[string]string{"startTime": "25:00", "endTime": "0900"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, env := call(t, srv, http.MethodPost, "/api/v1/entries", map[string]string{"startTime": "0600", "endTime": "1000"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var entry model.TimeEntry
	require.NoError(t, json.Unmarshal(env.Data, &entry))

	resp, env = call(t, srv, http.MethodPost, "/api/v1/entries/submit", map[string]string{"date": "2024-06-12"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var sub model.DailySubmission
	require.NoError(t, json.Unmarshal(env.Data, &sub))
	assert.Equal(t, "2024-06-12", sub.Date)
	assert.Equal(t, 240, sub.TotalMinutes)

	resp, _ = call(t, srv, http.MethodDelete, "/api/v1/entries/"+"abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, env = call(t, srv, http.MethodGet, "/api/v1/compliance", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"violations":[]`)
}

func TestAssistantEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, env := call(t, srv, http.MethodPost, "/api/v1/assistant", map[string]string{"question": "How much national insurance do I pay?"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"topic":"ni"`)

	resp, _ = call(t, srv, http.MethodPost, "/api/v1/assistant", map[string]string{"question": " "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
