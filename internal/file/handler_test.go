//go:build unit

package file

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskly-api/pkg/authorization"
	"taskly-api/pkg/cerror"
	"taskly-api/pkg/jwt_generator"
	"taskly-api/pkg/server"
)

const TestAccessToken = "abcd.abcd.abcd"

func setupApp(t *testing.T, fileService Service, identity *jwt_generator.Identity) *fiber.App {
	mockController := gomock.NewController(t)
	mockJwtGenerator := jwt_generator.NewMockJwtGenerator(mockController)
	mockJwtGenerator.EXPECT().VerifyAccessToken(TestAccessToken).Return(identity, nil).AnyTimes()

	app := fiber.New(fiber.Config{
		ErrorHandler: cerror.Middleware,
	})
	NewHandler(fileService, authorization.NewMiddleware(mockJwtGenerator)).RegisterRoutes(app)

	return app
}

func newRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+TestAccessToken)
	return req
}

func newMultipartRequest(t *testing.T, field, filename, content string) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/files", body)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+TestAccessToken)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	return req
}

func TestNewHandler(t *testing.T) {
	fileHandler := NewHandler(nil, nil)

	assert.Implements(t, (*server.Handler)(nil), fileHandler)
}

func TestHandler_UploadFile(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockFileService := NewMockService(mockController)
		mockFileService.EXPECT().UploadFile(gomock.Any(), testOwner, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *jwt_generator.Identity, payload *UploadPayload) (*FileDocument, error) {
				content, _ := io.ReadAll(payload.Content)
				assert.Equal(t, "hello", string(content))
				assert.Equal(t, "report.txt", payload.Name)
				assert.Equal(t, int64(5), payload.Size)

				return &FileDocument{Id: "file-id", OwnerId: testOwner.Id, Name: payload.Name, Size: payload.Size}, nil
			},
		)

		app := setupApp(t, mockFileService, testOwner)
		resp, err := app.Test(newMultipartRequest(t, "file", "report.txt", "hello"))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)

		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.Contains(t, string(body), `"id":"file-id"`)
		assert.NotContains(t, string(body), "key")
	})

	t.Run("when file field is missing should return bad request", func(t *testing.T) {
		app := setupApp(t, nil, testOwner)
		resp, err := app.Test(newMultipartRequest(t, "document", "report.txt", "hello"))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_DownloadFile(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockFileService := NewMockService(mockController)
		mockFileService.EXPECT().DownloadFile(gomock.Any(), testOwner, "file-id").Return(
			&FileDocument{Id: "file-id", Name: "report.pdf", ContentType: "application/pdf", Size: 5},
			io.NopCloser(strings.NewReader("%PDF-")),
			nil,
		)

		app := setupApp(t, mockFileService, testOwner)
		resp, err := app.Test(newRequest(fiber.MethodGet, "/files/file-id"))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "%PDF-", string(body))
		assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
		assert.Equal(t, `attachment; filename="report.pdf"`, resp.Header.Get(fiber.HeaderContentDisposition))
	})

	t.Run("when file service return error should return it", func(t *testing.T) {
		mockFileService := NewMockService(mockController)
		mockFileService.EXPECT().DownloadFile(gomock.Any(), testOther, "file-id").Return(nil, nil, cerror.ErrorForbidden)

		app := setupApp(t, mockFileService, testOther)
		resp, err := app.Test(newRequest(fiber.MethodGet, "/files/file-id"))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestHandler_GetFiles(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	mockFileService := NewMockService(mockController)
	mockFileService.EXPECT().GetFiles(gomock.Any(), testOwner, false).Return([]FileDocument{}, nil)

	app := setupApp(t, mockFileService, testOwner)
	resp, err := app.Test(newRequest(fiber.MethodGet, "/files"))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", string(body))
}

func TestHandler_DeleteFile(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	mockFileService := NewMockService(mockController)
	mockFileService.EXPECT().DeleteFile(gomock.Any(), testAdmin, "file-id").Return(nil)

	app := setupApp(t, mockFileService, testAdmin)
	resp, err := app.Test(newRequest(fiber.MethodDelete, "/files/file-id"))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
