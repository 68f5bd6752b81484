package user

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"taskly-api/pkg/authorization"
	"taskly-api/pkg/cerror"
	"taskly-api/pkg/logger"
	"taskly-api/pkg/request"
	"taskly-api/pkg/server"
)

type usersQuery struct {
	Role string `validate:"omitempty,oneof=user student employee admin"`
}

type handler struct {
	userService             Service
	authorizationMiddleware authorization.Middleware
}

func NewHandler(userService Service, authorizationMiddleware authorization.Middleware) server.Handler {
	return &handler{
		userService:             userService,
		authorizationMiddleware: authorizationMiddleware,
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	app.Get("/profile", h.authorizationMiddleware.Authenticate, h.GetProfile)
	app.Put("/profile", h.authorizationMiddleware.Authenticate, h.UpdateProfile)

	admin := app.Group(
		"/admin",
		h.authorizationMiddleware.Authenticate,
		h.authorizationMiddleware.RequireRole(RoleAdmin),
	)
	admin.Get("/users", h.GetUsers)
	admin.Get("/users/:userId", h.GetUserDetail)
}

func (h *handler) GetProfile(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getProfile"))
	logger.InjectFiberContext(ctx, log)

	identity, ok := authorization.IdentityFromContext(ctx)
	if !ok {
		return cerror.ErrorUnauthenticated
	}

	profile, err := h.userService.GetProfile(ctx.Context(), identity)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(profile)
}

func (h *handler) UpdateProfile(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "updateProfile"))
	logger.InjectFiberContext(ctx, log)

	identity, ok := authorization.IdentityFromContext(ctx)
	if !ok {
		return cerror.ErrorUnauthenticated
	}

	var payload ProfilePayload
	if err := request.ParseBody(ctx, &payload); err != nil {
		return err
	}

	profile, err := h.userService.UpdateProfile(ctx.Context(), identity, &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(profile)
}

func (h *handler) GetUsers(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getUsers"))
	logger.InjectFiberContext(ctx, log)

	query := usersQuery{Role: ctx.Query("role")}
	if err := request.Validate(&query); err != nil {
		return err
	}

	users, err := h.userService.GetUsers(ctx.Context(), query.Role)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(users)
}

func (h *handler) GetUserDetail(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getUserDetail"))
	logger.InjectFiberContext(ctx, log)

	detail, err := h.userService.GetUserDetail(ctx.Context(), ctx.Params("userId"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(detail)
}
