package logger

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ContextKey                = "logger"
	RequestIdHeader           = "X-Request-Id"
	EventFinishedSuccessfully = "event successfully finished"
)

// Middleware attaches a request scoped logger to the fiber locals. Handlers read it
// back with FromContext(ctx.Context()) since fasthttp exposes locals through Value.
func Middleware(logger *zap.SugaredLogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		requestId := ctx.Get(RequestIdHeader)
		if requestId == "" {
			requestId = uuid.New().String()
		}
		ctx.Set(RequestIdHeader, requestId)

		ctx.Locals(ContextKey, logger.With(
			zap.String("requestId", requestId),
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.Path()),
		))
		return ctx.Next()
	}
}

func FromContext(ctx context.Context) *zap.SugaredLogger {
	logger, isOk := ctx.Value(ContextKey).(*zap.SugaredLogger)
	if !isOk {
		l, _ := zap.NewProduction()
		logger = l.Sugar()
	}

	return logger
}

// InjectFiberContext replaces the request logger, usually with one carrying more fields.
func InjectFiberContext(ctx *fiber.Ctx, log *zap.SugaredLogger) {
	ctx.Locals(ContextKey, log)
}

func InjectContext(ctx context.Context, log *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ContextKey, log) //nolint:staticcheck
}
