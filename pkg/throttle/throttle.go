package throttle

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"

	"taskly-api/pkg/cerror"
	"taskly-api/pkg/config"
)

// New limits requests per client IP and route. One handler may guard several
// routes: the key includes the path, so each route keeps its own budget.
func New(rateLimitConfig config.RateLimitConfig) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        rateLimitConfig.Max,
		Expiration: rateLimitConfig.Window,
		KeyGenerator: func(ctx *fiber.Ctx) string {
			return ctx.IP() + "|" + ctx.Path()
		},
		LimitReached: func(ctx *fiber.Ctx) error {
			return cerror.ErrorTooManyRequests.With(
				zap.String("ip", ctx.IP()),
				zap.String("path", ctx.Path()),
			)
		},
	})
}
