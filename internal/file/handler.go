package file

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"taskly-api/pkg/authorization"
	"taskly-api/pkg/cerror"
	"taskly-api/pkg/logger"
	"taskly-api/pkg/server"
)

const formFileField = "file"

type handler struct {
	fileService             Service
	authorizationMiddleware authorization.Middleware
}

func NewHandler(fileService Service, authorizationMiddleware authorization.Middleware) server.Handler {
	return &handler{
		fileService:             fileService,
		authorizationMiddleware: authorizationMiddleware,
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/files", h.authorizationMiddleware.Authenticate)
	group.Post("/", h.UploadFile)
	group.Get("/", h.GetFiles)
	group.Get("/:fileId", h.DownloadFile)
	group.Delete("/:fileId", h.DeleteFile)
}

func (h *handler) UploadFile(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "uploadFile"))
	logger.InjectFiberContext(ctx, log)

	identity, ok := authorization.IdentityFromContext(ctx)
	if !ok {
		return cerror.ErrorUnauthenticated
	}

	header, err := ctx.FormFile(formFileField)
	if err != nil {
		return cerror.ErrorBadRequest.With(zap.Error(err)).SetMessage("multipart field file is required")
	}

	content, err := header.Open()
	if err != nil {
		return cerror.Internal("error occurred while open uploaded file", err)
	}
	defer content.Close() //nolint:errcheck

	file, err := h.fileService.UploadFile(ctx.Context(), identity, &UploadPayload{
		Name:        header.Filename,
		ContentType: header.Header.Get(fiber.HeaderContentType),
		Size:        header.Size,
		Content:     content,
	})
	if err != nil {
		return err
	}

	log.Infow(logger.EventFinishedSuccessfully, zap.String("fileId", file.Id), zap.Int64("size", file.Size))
	return ctx.
		Status(fiber.StatusCreated).
		JSON(file)
}

func (h *handler) GetFiles(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getFiles"))
	logger.InjectFiberContext(ctx, log)

	identity, ok := authorization.IdentityFromContext(ctx)
	if !ok {
		return cerror.ErrorUnauthenticated
	}

	files, err := h.fileService.GetFiles(ctx.Context(), identity, ctx.Query("all") == "true")
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(files)
}

// DownloadFile streams the content; fasthttp closes the reader once sent.
func (h *handler) DownloadFile(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "downloadFile"))
	logger.InjectFiberContext(ctx, log)

	identity, ok := authorization.IdentityFromContext(ctx)
	if !ok {
		return cerror.ErrorUnauthenticated
	}

	file, content, err := h.fileService.DownloadFile(ctx.Context(), identity, ctx.Params("fileId"))
	if err != nil {
		return err
	}

	ctx.Attachment(file.Name)
	ctx.Set(fiber.HeaderContentType, file.ContentType)

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		SendStream(content, int(file.Size))
}

func (h *handler) DeleteFile(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "deleteFile"))
	logger.InjectFiberContext(ctx, log)

	identity, ok := authorization.IdentityFromContext(ctx)
	if !ok {
		return cerror.ErrorUnauthenticated
	}

	if err := h.fileService.DeleteFile(ctx.Context(), identity, ctx.Params("fileId")); err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.SendStatus(fiber.StatusNoContent)
}
