//go:build unit

package cerror

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(handlerErr error) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: Middleware,
	})
	app.Get("/", func(ctx *fiber.Ctx) error {
		return handlerErr
	})
	return app
}

func TestMiddleware(t *testing.T) {
	t.Run("should map custom error kind to status and message", func(t *testing.T) {
		app := newTestApp(ErrorInvalidCredentials.With(zap.String("email", "test@test.com")))

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.JSONEq(t, `{"message":"invalid email or password"}`, string(body))
	})

	t.Run("should not leak internal error details", func(t *testing.T) {
		app := newTestApp(Internal("error occurred while insert user", errors.New("connection refused")))

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		assert.JSONEq(t, `{"message":"internal server error"}`, string(body))
	})

	t.Run("should keep fiber error status", func(t *testing.T) {
		app := newTestApp(fiber.NewError(fiber.StatusRequestEntityTooLarge, "request entity too large"))

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
	})

	t.Run("when error is unknown should return internal server error", func(t *testing.T) {
		app := newTestApp(errors.New("something went wrong"))

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func TestKind_HttpStatus(t *testing.T) {
	testCases := map[Kind]int{
		KindValidation:          fiber.StatusBadRequest,
		KindMissingRoleFields:   fiber.StatusBadRequest,
		KindDuplicateEmail:      fiber.StatusBadRequest,
		KindInvalidOrExpiredOTP: fiber.StatusBadRequest,
		KindInvalidCredentials:  fiber.StatusUnauthorized,
		KindUnauthenticated:     fiber.StatusUnauthorized,
		KindForbidden:           fiber.StatusForbidden,
		KindNotFound:            fiber.StatusNotFound,
		KindTooManyRequests:     fiber.StatusTooManyRequests,
		KindInternal:            fiber.StatusInternalServerError,
	}

	for kind, status := range testCases {
		assert.Equal(t, status, kind.HttpStatus(), kind.String())
	}
}

func TestCustomError_With(t *testing.T) {
	withField := ErrorForbidden.With(zap.String("key", "value"))

	assert.Len(t, withField.LogFields, 1)
	assert.Empty(t, ErrorForbidden.LogFields)
	assert.True(t, IsKind(withField, KindForbidden))
	assert.False(t, IsKind(errors.New("plain"), KindForbidden))
}
