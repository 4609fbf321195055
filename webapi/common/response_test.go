package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", account.NotFound(1), fiber.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", account.NotFound(1)), fiber.StatusNotFound},
		{"missing number", account.ErrAccountNumberRequired, fiber.StatusBadRequest},
		{"invalid amount", account.InvalidAmount("abc"), fiber.StatusBadRequest},
		{"insufficient funds", account.ErrInsufficientFunds, fiber.StatusBadRequest},
		{"conflict", account.NumberTaken(1), fiber.StatusConflict},
		{"fiber error", fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed},
		{"unclassified", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorToStatusCode(tt.err))
		})
	}
}

func TestErrorKind(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", ErrorKind(nil))
	assert.Equal(t, "NotFound", ErrorKind(account.NotFound(7)))
	assert.Equal(t, "Conflict", ErrorKind(fmt.Errorf("wrap: %w", account.NumberTaken(7))))
	assert.Equal(t, "", ErrorKind(fiber.ErrNotFound))
	assert.Equal(t, KindInternal, ErrorKind(errors.New("boom")))
}

func TestProblemDetailsJSON(t *testing.T) {
	t.Parallel()
	app := fiber.New()
	app.Get("/missing", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Account not found", account.NotFound(42))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/missing", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))

	var pd ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, "NotFound", pd.Kind)
	assert.Equal(t, "Account with account number 42 not found.", pd.Detail)
	assert.Equal(t, "/missing", pd.Instance)
}

type sample struct {
	Name string `json:"name" validate:"required,max=5"`
}

func TestBindAndValidate(t *testing.T) {
	t.Parallel()
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		input, err := BindAndValidate[sample](c)
		if input == nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "ok", input)
	})

	tests := []struct {
		name string
		body string
		want int
	}{
		{"valid", `{"name":"abc"}`, fiber.StatusOK},
		{"malformed", `{"name":`, fiber.StatusBadRequest},
		{"fails validation", `{"name":"toolongname"}`, fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close() //nolint: errcheck
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
