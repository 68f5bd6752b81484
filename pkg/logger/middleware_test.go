//go:build unit

package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInjectContext(t *testing.T) {
	ctx := context.Background()

	logProd, err := zap.NewProduction()
	require.NoError(t, err)

	log := logProd.Sugar()
	defer log.Sync()

	ctx = InjectContext(ctx, log)

	logFromCtx := ctx.Value(ContextKey).(*zap.SugaredLogger)
	assert.NotNil(t, logFromCtx)
}

func TestFromContext(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		logProd, err := zap.NewProduction()
		require.NoError(t, err)

		log := logProd.Sugar()
		defer log.Sync()

		ctx := InjectContext(context.Background(), log)

		assert.Same(t, log, FromContext(ctx))
	})

	t.Run("when context has no logger should return a fallback logger", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})
}

func TestMiddleware(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Run("should attach logger and generate request id", func(t *testing.T) {
		app := fiber.New()
		app.Use(Middleware(log))
		app.Get("/", func(ctx *fiber.Ctx) error {
			_, isOk := ctx.Context().Value(ContextKey).(*zap.SugaredLogger)
			assert.True(t, isOk)
			return ctx.SendStatus(fiber.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(RequestIdHeader))
	})

	t.Run("should keep incoming request id", func(t *testing.T) {
		app := fiber.New()
		app.Use(Middleware(log))
		app.Get("/", func(ctx *fiber.Ctx) error {
			return ctx.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		req.Header.Set(RequestIdHeader, "request-id")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, "request-id", resp.Header.Get(RequestIdHeader))
	})
}
