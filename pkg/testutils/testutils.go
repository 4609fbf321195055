// Package testutils holds helpers for driving the HTTP API in tests.
package testutils

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	repoaccount "github.com/amirasaad/ledger/pkg/repository/account"
	"github.com/gofiber/fiber/v2"
)

// TestConfig returns a configuration with a rate limit high enough that
// ordinary tests never hit it.
func TestConfig() *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 8080},
		Log:    &config.Log{Format: "text", Prefix: "[test]"},
		RateLimit: &config.RateLimit{
			MaxRequests: 10000,
			Window:      time.Minute,
			KeyPrefix:   "test:",
		},
		Ledger: &config.Ledger{Seed: true},
	}
}

// NewTestApp builds an application over a fresh in-memory ledger with logs
// discarded.
func NewTestApp(cfg *config.App) *app.App {
	if cfg == nil {
		cfg = TestConfig()
	}
	return app.New(&app.Deps{
		AccountRepository: repoaccount.NewMemoryRepository(),
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, cfg)
}

// MakeRequest is a helper for making HTTP requests in tests. Bodies that look
// like JSON are sent as application/json, anything else as text/plain.
func MakeRequest(app *fiber.App, method, path, body string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		if strings.HasPrefix(strings.TrimSpace(body), "{") {
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		} else {
			req.Header.Set(fiber.HeaderContentType, fiber.MIMETextPlain)
		}
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err) // For standalone tests, panic on error
	}
	return resp
}

// DecodeJSON decodes the response body into T and closes it.
func DecodeJSON[T any](resp *http.Response) (T, error) {
	defer resp.Body.Close() //nolint: errcheck
	var out T
	err := json.NewDecoder(resp.Body).Decode(&out)
	return out, err
}
