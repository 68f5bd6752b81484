package cerror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"taskly-api/pkg/logger"
)

type Response struct {
	Message string `json:"message"`
}

// Middleware is the fiber ErrorHandler. It logs at the error's own severity and
// writes a {"message": ...} body; internal causes never reach the client.
func Middleware(ctx *fiber.Ctx, err error) error {
	log := logger.FromContext(ctx.Context()).Desugar()

	var cerr *CustomError
	if errors.As(err, &cerr) {
		log.With(cerr.LogFields...).
			With(zap.String("errorKind", cerr.Kind.String())).
			Log(cerr.LogSeverity, cerr.LogMessage)

		return ctx.
			Status(cerr.HttpStatus()).
			JSON(Response{Message: cerr.Message})
	}

	var fiberError *fiber.Error
	if errors.As(err, &fiberError) {
		log.Warn("request failed", zap.Int("status", fiberError.Code), zap.Error(err))

		return ctx.
			Status(fiberError.Code).
			JSON(Response{Message: fiberError.Message})
	}

	log.Error("unexpected error", zap.Error(err))
	return ctx.
		Status(fiber.StatusInternalServerError).
		JSON(Response{Message: KindInternal.DefaultMessage()})
}
