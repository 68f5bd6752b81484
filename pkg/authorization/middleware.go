// Package authorization gates protected routes behind a valid access token and,
// optionally, a role.
package authorization

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"taskly-api/pkg/cerror"
	"taskly-api/pkg/jwt_generator"
	"taskly-api/pkg/logger"
)

const (
	IdentityContextKey = "identity"
	bearerPrefix       = "Bearer "
)

type Middleware interface {
	Authenticate(ctx *fiber.Ctx) error
	RequireRole(roles ...string) fiber.Handler
}

type middleware struct {
	jwtGenerator jwt_generator.JwtGenerator
}

func NewMiddleware(jwtGenerator jwt_generator.JwtGenerator) Middleware {
	return &middleware{
		jwtGenerator: jwtGenerator,
	}
}

// Authenticate validates the bearer access token and attaches the identity.
// Missing or malformed header is 401, a token that fails verification is 403.
func (m *middleware) Authenticate(ctx *fiber.Ctx) error {
	rawToken, isOk := bearerToken(ctx.Get(fiber.HeaderAuthorization))
	if !isOk {
		return cerror.ErrorUnauthenticated
	}

	identity, err := m.jwtGenerator.VerifyAccessToken(rawToken)
	if err != nil {
		return cerror.ErrorForbidden.With(zap.Error(err))
	}

	if identity.Id == "" {
		return cerror.ErrorForbidden.With(zap.String("reason", "token has no user id"))
	}

	ctx.Locals(IdentityContextKey, identity)
	log := logger.FromContext(ctx.Context()).With(
		zap.String("userId", identity.Id),
		zap.String("role", identity.Role),
	)
	logger.InjectFiberContext(ctx, log)

	return ctx.Next()
}

// RequireRole must run after Authenticate.
func (m *middleware) RequireRole(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		identity, isOk := IdentityFromContext(ctx)
		if !isOk {
			return cerror.ErrorForbidden.With(zap.String("reason", "identity missing"))
		}

		for _, role := range roles {
			if identity.Role == role {
				return ctx.Next()
			}
		}

		return cerror.ErrorForbidden.With(
			zap.String("reason", "role not allowed"),
			zap.Strings("allowedRoles", roles),
		)
	}
}

func IdentityFromContext(ctx *fiber.Ctx) (*jwt_generator.Identity, bool) {
	identity, isOk := ctx.Locals(IdentityContextKey).(*jwt_generator.Identity)
	if !isOk || identity == nil {
		return nil, false
	}
	return identity, true
}

func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" || strings.Contains(token, " ") {
		return "", false
	}

	return token, true
}
