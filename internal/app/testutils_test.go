package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anshika-1705/movieapp/api"
	"github.com/anshika-1705/movieapp/internal/auth"
	"github.com/anshika-1705/movieapp/internal/domain"
	"github.com/anshika-1705/movieapp/internal/mailer"
	"github.com/anshika-1705/movieapp/internal/validator"
	"github.com/go-chi/chi/v5"
)

func newTestApplication(t *testing.T, opts ...func(*Application)) *Application {
	t.Helper()

	appMetrics, err := newMetrics()
	if err != nil {
		t.Fatal(err)
	}

	app := &Application{
		config:    Config{Env: "test"},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		validator: validator.NewValidator(),
		tokens:    auth.NewTokenService("test-secret", time.Hour),
		mailer:    mailer.NewMockMailer(),
		metrics:   appMetrics,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

// withURLParam injects a chi route parameter so handlers can be called without
// going through the router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withClaims(app *Application, r *http.Request, userID int, role domain.Role) *http.Request {
	return app.contextSetClaims(r, &auth.Claims{UserID: userID, Role: role})
}

// envelope mirrors api.Response but defers data decoding to the test.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Total   *int            `json:"total"`
	Token   string          `json:"token"`
	User    *api.User       `json:"user"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var resp envelope
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response envelope: %v", err)
	}

	return resp
}

func decodeData[T any](t *testing.T, resp envelope) T {
	t.Helper()

	var data T
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("failed to decode response data: %v", err)
	}

	return data
}
