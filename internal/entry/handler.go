package entry

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"taskly-api/pkg/authorization"
	"taskly-api/pkg/cerror"
	"taskly-api/pkg/logger"
	"taskly-api/pkg/request"
	"taskly-api/pkg/server"
)

type handler struct {
	entryService            Service
	authorizationMiddleware authorization.Middleware
}

func NewHandler(entryService Service, authorizationMiddleware authorization.Middleware) server.Handler {
	return &handler{
		entryService:            entryService,
		authorizationMiddleware: authorizationMiddleware,
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/entries", h.authorizationMiddleware.Authenticate)
	group.Post("/", h.CreateEntry)
	group.Get("/", h.GetEntries)
	group.Get("/:entryId", h.GetEntry)
	group.Put("/:entryId", h.UpdateEntry)
	group.Delete("/:entryId", h.DeleteEntry)
}

func (h *handler) CreateEntry(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "createEntry"))
	logger.InjectFiberContext(ctx, log)

	identity, ok := authorization.IdentityFromContext(ctx)
	if !ok {
		return cerror.ErrorUnauthenticated
	}

	var payload CreateEntryPayload
	if err := request.ParseBody(ctx, &payload); err != nil {
		return err
	}

	entry, err := h.entryService.CreateEntry(ctx.Context(), identity, &payload)
	if err != nil {
		return err
	}

	log.Infow(logger.EventFinishedSuccessfully, zap.String("entryId", entry.Id))
	return ctx.
		Status(fiber.StatusCreated).
		JSON(entry)
}

func (h *handler) GetEntries(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getEntries"))
	logger.InjectFiberContext(ctx, log)

	identity, ok := authorization.IdentityFromContext(ctx)
	if !ok {
		return cerror.ErrorUnauthenticated
	}

	entries, err := h.entryService.GetEntries(ctx.Context(), identity, ctx.Query("all") == "true")
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(entries)
}

func (h *handler) GetEntry(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getEntry"))
	logger.InjectFiberContext(ctx, log)

	identity, ok := authorization.IdentityFromContext(ctx)
	if !ok {
		return cerror.ErrorUnauthenticated
	}

	entry, err := h.entryService.GetEntry(ctx.Context(), identity, ctx.Params("entryId"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(entry)
}

func (h *handler) UpdateEntry(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "updateEntry"))
	logger.InjectFiberContext(ctx, log)

	identity, ok := authorization.IdentityFromContext(ctx)
	if !ok {
		return cerror.ErrorUnauthenticated
	}

	var payload UpdateEntryPayload
	if err := request.ParseBody(ctx, &payload); err != nil {
		return err
	}

	entry, err := h.entryService.UpdateEntry(ctx.Context(), identity, ctx.Params("entryId"), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(entry)
}

func (h *handler) DeleteEntry(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "deleteEntry"))
	logger.InjectFiberContext(ctx, log)

	identity, ok := authorization.IdentityFromContext(ctx)
	if !ok {
		return cerror.ErrorUnauthenticated
	}

	if err := h.entryService.DeleteEntry(ctx.Context(), identity, ctx.Params("entryId")); err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.SendStatus(fiber.StatusNoContent)
}
