package webapi_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/amirasaad/ledger/webapi"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func TestSetupApp_HealthCheck(t *testing.T) {
	t.Parallel()
	app := webapi.SetupApp(testutils.NewTestApp(nil))

	resp := testutils.MakeRequest(app, fiber.MethodGet, "/", "")
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestSetupApp_UnknownRoute(t *testing.T) {
	t.Parallel()
	app := webapi.SetupApp(testutils.NewTestApp(nil))

	resp := testutils.MakeRequest(app, fiber.MethodGet, "/doesnotexist", "")
	pd, err := testutils.DecodeJSON[common.ProblemDetails](resp)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Empty(t, pd.Kind)
}

func TestSetupApp_RateLimit(t *testing.T) {
	t.Parallel()
	cfg := testutils.TestConfig()
	cfg.RateLimit.MaxRequests = 5
	cfg.RateLimit.Window = time.Second
	app := webapi.SetupApp(testutils.NewTestApp(cfg))

	for i := range 6 {
		resp := testutils.MakeRequest(app, fiber.MethodGet, "/", "")
		resp.Body.Close() //nolint: errcheck
		if i < 5 {
			assert.Equal(t, fiber.StatusOK, resp.StatusCode, "request %d", i+1)
		} else {
			assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode, "request %d", i+1)
		}
	}

	t.Run("forwarded clients have their own budget", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		req.Header.Set(fiber.HeaderXForwardedFor, "203.0.113.7, 10.0.0.1")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close() //nolint: errcheck
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
