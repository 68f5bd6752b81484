//go:generate mockgen -source=service.go -destination=mock_service.go -package=file
package file

import (
	"context"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskly-api/internal/user"
	"taskly-api/pkg/cerror"
	"taskly-api/pkg/jwt_generator"
	"taskly-api/pkg/logger"
)

type UploadPayload struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

type Service interface {
	UploadFile(ctx context.Context, identity *jwt_generator.Identity, payload *UploadPayload) (*FileDocument, error)
	GetFiles(ctx context.Context, identity *jwt_generator.Identity, all bool) ([]FileDocument, error)
	DownloadFile(ctx context.Context, identity *jwt_generator.Identity, fileId string) (*FileDocument, io.ReadCloser, error)
	DeleteFile(ctx context.Context, identity *jwt_generator.Identity, fileId string) error
}

type service struct {
	fileRepository Repository
	storage        Storage
	maxFileSize    int64
	now            func() time.Time
}

func NewService(fileRepository Repository, storage Storage, maxFileSize int) Service {
	return &service{
		fileRepository: fileRepository,
		storage:        storage,
		maxFileSize:    int64(maxFileSize),
		now:            time.Now,
	}
}

// UploadFile writes the content first and the metadata second. A failed
// metadata insert removes the orphaned blob.
func (s *service) UploadFile(
	ctx context.Context,
	identity *jwt_generator.Identity,
	payload *UploadPayload,
) (*FileDocument, error) {
	if payload.Size <= 0 {
		return nil, cerror.ErrorBadRequest.With(zap.String("reason", "empty upload")).SetMessage("file is empty")
	}
	if payload.Size > s.maxFileSize {
		return nil, cerror.ErrorBadRequest.With(zap.Int64("size", payload.Size)).SetMessage("file is too large")
	}

	contentType := payload.ContentType
	if contentType == "" {
		contentType = DefaultContentType
	}

	fileId := uuid.New().String()
	file := &FileDocument{
		Id:          fileId,
		OwnerId:     identity.Id,
		Name:        sanitizeName(payload.Name),
		ContentType: contentType,
		Size:        payload.Size,
		Key:         identity.Id + "/" + fileId,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.storage.Put(ctx, file.Key, file.ContentType, payload.Content); err != nil {
		return nil, err
	}

	if err := s.fileRepository.InsertFile(ctx, file); err != nil {
		if deleteErr := s.storage.Delete(ctx, file.Key); deleteErr != nil {
			logger.FromContext(ctx).Errorw("failed to remove orphaned blob",
				zap.String("key", file.Key),
				zap.Error(deleteErr),
			)
		}
		return nil, err
	}

	return file, nil
}

func (s *service) GetFiles(ctx context.Context, identity *jwt_generator.Identity, all bool) ([]FileDocument, error) {
	if !all {
		return s.fileRepository.FindFiles(ctx, identity.Id)
	}

	if identity.Role != user.RoleAdmin {
		return nil, cerror.ErrorForbidden.With(zap.String("reason", "only admins list every file"))
	}

	return s.fileRepository.FindFiles(ctx, "")
}

func (s *service) DownloadFile(
	ctx context.Context,
	identity *jwt_generator.Identity,
	fileId string,
) (*FileDocument, io.ReadCloser, error) {
	file, err := s.findAccessibleFile(ctx, identity, fileId)
	if err != nil {
		return nil, nil, err
	}

	content, err := s.storage.Get(ctx, file.Key)
	if err != nil {
		return nil, nil, err
	}

	return file, content, nil
}

func (s *service) DeleteFile(ctx context.Context, identity *jwt_generator.Identity, fileId string) error {
	file, err := s.findAccessibleFile(ctx, identity, fileId)
	if err != nil {
		return err
	}

	if err = s.storage.Delete(ctx, file.Key); err != nil {
		return err
	}

	return s.fileRepository.DeleteFileWithId(ctx, fileId)
}

func (s *service) findAccessibleFile(
	ctx context.Context,
	identity *jwt_generator.Identity,
	fileId string,
) (*FileDocument, error) {
	file, err := s.fileRepository.FindFileWithId(ctx, fileId)
	if err != nil {
		return nil, err
	}

	if file.OwnerId != identity.Id && identity.Role != user.RoleAdmin {
		return nil, cerror.ErrorForbidden.With(
			zap.String("reason", "not the file owner"),
			zap.String("fileId", fileId),
		)
	}

	return file, nil
}

// sanitizeName keeps the last path element so names never carry directories.
func sanitizeName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" {
		return "file"
	}

	return name
}
