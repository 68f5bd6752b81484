package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"taskly-api/pkg/authorization"
	"taskly-api/pkg/cerror"
	"taskly-api/pkg/config"
	"taskly-api/pkg/logger"
	"taskly-api/pkg/request"
	"taskly-api/pkg/server"
)

type handler struct {
	authService             Service
	authorizationMiddleware authorization.Middleware
	cookieConfig            config.CookieConfig
	throttle                fiber.Handler
}

// NewHandler wires the /auth routes. throttle guards the credential and otp
// endpoints.
func NewHandler(
	authService Service,
	authorizationMiddleware authorization.Middleware,
	cookieConfig config.CookieConfig,
	throttle fiber.Handler,
) server.Handler {
	return &handler{
		authService:             authService,
		authorizationMiddleware: authorizationMiddleware,
		cookieConfig:            cookieConfig,
		throttle:                throttle,
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/auth")
	group.Post("/register", h.Register)
	group.Post("/login", h.throttle, h.Login)
	group.Get("/me", h.authorizationMiddleware.Authenticate, h.Me)
	group.Get("/refresh", h.Refresh)
	group.Post("/logout", h.Logout)
	group.Post("/forgot-password", h.throttle, h.ForgotPassword)
	group.Post("/reset-password", h.throttle, h.ResetPassword)
}

func (h *handler) Register(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "register"))
	logger.InjectFiberContext(ctx, log)

	var payload RegisterPayload
	if err := request.ParseBody(ctx, &payload); err != nil {
		return err
	}

	if err := h.authService.Register(ctx.Context(), &payload); err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusCreated).
		JSON(MessageResponse{Message: "user registered"})
}

func (h *handler) Login(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "login"))
	logger.InjectFiberContext(ctx, log)

	var payload LoginPayload
	if err := request.ParseBody(ctx, &payload); err != nil {
		return err
	}

	session, err := h.authService.Login(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	ctx.Cookie(h.refreshTokenCookie(session.Tokens.RefreshToken, h.cookieConfig.MaxAge))

	log.Infow(logger.EventFinishedSuccessfully, zap.String("userId", session.User.Id))
	return ctx.
		Status(fiber.StatusOK).
		JSON(NewLoginResponse(session))
}

func (h *handler) Me(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "me"))
	logger.InjectFiberContext(ctx, log)

	identity, ok := authorization.IdentityFromContext(ctx)
	if !ok {
		return cerror.ErrorUnauthenticated
	}

	foundUser, err := h.authService.Me(ctx.Context(), identity)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(foundUser)
}

func (h *handler) Refresh(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "refresh"))
	logger.InjectFiberContext(ctx, log)

	refreshToken := ctx.Cookies(RefreshTokenCookieName)
	if refreshToken == "" {
		return cerror.ErrorUnauthenticated.With(zap.String("reason", "refresh cookie missing"))
	}

	accessToken, err := h.authService.Refresh(ctx.Context(), refreshToken)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(TokenResponse{Token: accessToken})
}

// Logout expires the cookie with the same flags it was set with. It holds no
// server state, so repeating it is harmless.
func (h *handler) Logout(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "logout"))

	cookie := h.refreshTokenCookie("", 0)
	cookie.Expires = time.Unix(0, 0)
	ctx.Cookie(cookie)

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(MessageResponse{Message: "logged out"})
}

func (h *handler) ForgotPassword(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "forgotPassword"))
	logger.InjectFiberContext(ctx, log)

	var payload ForgotPasswordPayload
	if err := request.ParseBody(ctx, &payload); err != nil {
		return err
	}

	if err := h.authService.SendOtp(ctx.Context(), payload.Email); err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(MessageResponse{Message: "otp sent"})
}

func (h *handler) ResetPassword(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "resetPassword"))
	logger.InjectFiberContext(ctx, log)

	var payload ResetPasswordPayload
	if err := request.ParseBody(ctx, &payload); err != nil {
		return err
	}

	if err := h.authService.ResetPassword(ctx.Context(), &payload); err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(MessageResponse{Message: "password reset"})
}

func (h *handler) refreshTokenCookie(value string, maxAge time.Duration) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     RefreshTokenCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   h.cookieConfig.Secure,
		HTTPOnly: true,
		SameSite: h.cookieConfig.SameSite,
	}
}
