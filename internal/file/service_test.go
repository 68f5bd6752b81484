//go:build unit

package file

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskly-api/internal/user"
	"taskly-api/pkg/cerror"
	"taskly-api/pkg/jwt_generator"
)

const TestMaxFileSize = 1024

var (
	testOwner = &jwt_generator.Identity{Id: "owner-id", Email: "owner@test.com", Role: user.RoleStudent}
	testOther = &jwt_generator.Identity{Id: "other-id", Email: "other@test.com", Role: user.RoleStudent}
	testAdmin = &jwt_generator.Identity{Id: "admin-id", Email: "admin@test.com", Role: user.RoleAdmin}
)

func newUploadPayload(content string) *UploadPayload {
	return &UploadPayload{
		Name:        "report.txt",
		ContentType: "text/plain",
		Size:        int64(len(content)),
		Content:     strings.NewReader(content),
	}
}

func TestService_UploadAndDownload(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	ctx := context.Background()
	fileStorage := newMemoryStorage(t)

	var stored *FileDocument
	mockRepository := NewMockRepository(mockController)
	mockRepository.EXPECT().InsertFile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, file *FileDocument) error {
			stored = file
			return nil
		},
	)
	mockRepository.EXPECT().FindFileWithId(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fileId string) (*FileDocument, error) {
			return stored, nil
		},
	).Times(3)
	mockRepository.EXPECT().DeleteFileWithId(gomock.Any(), gomock.Any()).Return(nil)

	fileService := NewService(mockRepository, fileStorage, TestMaxFileSize)

	uploaded, err := fileService.UploadFile(ctx, testOwner, newUploadPayload("hello"))
	require.NoError(t, err)
	assert.Equal(t, testOwner.Id, uploaded.OwnerId)
	assert.Equal(t, "report.txt", uploaded.Name)
	assert.Equal(t, int64(5), uploaded.Size)

	t.Run("happy path", func(t *testing.T) {
		file, content, err := fileService.DownloadFile(ctx, testAdmin, uploaded.Id)
		require.NoError(t, err)
		defer content.Close()

		body, _ := io.ReadAll(content)
		assert.Equal(t, "hello", string(body))
		assert.Equal(t, "text/plain", file.ContentType)
	})

	t.Run("when caller is not the owner should return forbidden", func(t *testing.T) {
		_, _, err := fileService.DownloadFile(ctx, testOther, uploaded.Id)

		assert.True(t, cerror.IsKind(err, cerror.KindForbidden))
	})

	t.Run("should delete blob and metadata", func(t *testing.T) {
		require.NoError(t, fileService.DeleteFile(ctx, testOwner, uploaded.Id))

		_, err := fileStorage.Get(ctx, uploaded.Key)
		assert.True(t, cerror.IsKind(err, cerror.KindNotFound))
	})
}

func TestService_UploadFile(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	ctx := context.Background()

	t.Run("when upload is empty should return bad request", func(t *testing.T) {
		fileService := NewService(NewMockRepository(mockController), NewMockStorage(mockController), TestMaxFileSize)

		_, err := fileService.UploadFile(ctx, testOwner, newUploadPayload(""))

		assert.True(t, cerror.IsKind(err, cerror.KindValidation))
	})

	t.Run("when upload exceeds max size should return bad request", func(t *testing.T) {
		fileService := NewService(NewMockRepository(mockController), NewMockStorage(mockController), 4)

		_, err := fileService.UploadFile(ctx, testOwner, newUploadPayload("hello"))

		assert.True(t, cerror.IsKind(err, cerror.KindValidation))
	})

	t.Run("when metadata insert fails should remove the blob", func(t *testing.T) {
		fileStorage := newMemoryStorage(t)
		mockRepository := NewMockRepository(mockController)
		var key string
		mockRepository.EXPECT().InsertFile(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, file *FileDocument) error {
				key = file.Key
				return cerror.Internal("insert file", errors.New("connection reset"))
			},
		)

		fileService := NewService(mockRepository, fileStorage, TestMaxFileSize)
		_, err := fileService.UploadFile(ctx, testOwner, newUploadPayload("hello"))

		assert.True(t, cerror.IsKind(err, cerror.KindInternal))
		_, err = fileStorage.Get(ctx, key)
		assert.True(t, cerror.IsKind(err, cerror.KindNotFound))
	})
}

func TestService_GetFiles(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockRepository := NewMockRepository(mockController)
		mockRepository.EXPECT().FindFiles(gomock.Any(), testOwner.Id).Return([]FileDocument{}, nil)

		_, err := NewService(mockRepository, nil, TestMaxFileSize).GetFiles(context.Background(), testOwner, false)

		assert.NoError(t, err)
	})

	t.Run("when non admin asks for all should return forbidden", func(t *testing.T) {
		_, err := NewService(NewMockRepository(mockController), nil, TestMaxFileSize).
			GetFiles(context.Background(), testOwner, true)

		assert.True(t, cerror.IsKind(err, cerror.KindForbidden))
	})
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "report.txt", sanitizeName("report.txt"))
	assert.Equal(t, "passwd", sanitizeName("../../etc/passwd"))
	assert.Equal(t, "evil.exe", sanitizeName(`C:\Users\evil.exe`))
	assert.Equal(t, "file", sanitizeName(""))
}
