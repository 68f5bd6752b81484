//go:generate mockgen -source=service.go -destination=mock_service.go -package=entry
package entry

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskly-api/internal/user"
	"taskly-api/pkg/cerror"
	"taskly-api/pkg/jwt_generator"
)

type Service interface {
	CreateEntry(ctx context.Context, identity *jwt_generator.Identity, payload *CreateEntryPayload) (*EntryDocument, error)
	GetEntries(ctx context.Context, identity *jwt_generator.Identity, all bool) ([]EntryDocument, error)
	GetEntry(ctx context.Context, identity *jwt_generator.Identity, entryId string) (*EntryDocument, error)
	UpdateEntry(
		ctx context.Context,
		identity *jwt_generator.Identity,
		entryId string,
		payload *UpdateEntryPayload,
	) (*EntryDocument, error)
	DeleteEntry(ctx context.Context, identity *jwt_generator.Identity, entryId string) error
}

type service struct {
	entryRepository Repository
	now             func() time.Time
}

func NewService(entryRepository Repository) Service {
	return &service{
		entryRepository: entryRepository,
		now:             time.Now,
	}
}

func (s *service) CreateEntry(
	ctx context.Context,
	identity *jwt_generator.Identity,
	payload *CreateEntryPayload,
) (*EntryDocument, error) {
	status := payload.Status
	if status == "" {
		status = StatusTodo
	}

	now := s.now().UTC()
	entry := &EntryDocument{
		Id:          uuid.New().String(),
		OwnerId:     identity.Id,
		Title:       payload.Title,
		Description: payload.Description,
		Status:      status,
		DueDate:     payload.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.entryRepository.InsertEntry(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *service) GetEntries(ctx context.Context, identity *jwt_generator.Identity, all bool) ([]EntryDocument, error) {
	if !all {
		return s.entryRepository.FindEntries(ctx, identity.Id)
	}

	if identity.Role != user.RoleAdmin {
		return nil, cerror.ErrorForbidden.With(zap.String("reason", "only admins list every entry"))
	}

	return s.entryRepository.FindEntries(ctx, "")
}

func (s *service) GetEntry(ctx context.Context, identity *jwt_generator.Identity, entryId string) (*EntryDocument, error) {
	entry, err := s.entryRepository.FindEntryWithId(ctx, entryId)
	if err != nil {
		return nil, err
	}

	if err = checkAccess(identity, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *service) UpdateEntry(
	ctx context.Context,
	identity *jwt_generator.Identity,
	entryId string,
	payload *UpdateEntryPayload,
) (*EntryDocument, error) {
	entry, err := s.GetEntry(ctx, identity, entryId)
	if err != nil {
		return nil, err
	}

	payload.apply(entry)
	entry.UpdatedAt = s.now().UTC()

	if err = s.entryRepository.ReplaceEntry(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *service) DeleteEntry(ctx context.Context, identity *jwt_generator.Identity, entryId string) error {
	if _, err := s.GetEntry(ctx, identity, entryId); err != nil {
		return err
	}

	return s.entryRepository.DeleteEntryWithId(ctx, entryId)
}

func checkAccess(identity *jwt_generator.Identity, entry *EntryDocument) error {
	if entry.OwnerId == identity.Id || identity.Role == user.RoleAdmin {
		return nil
	}

	return cerror.ErrorForbidden.With(
		zap.String("reason", "not the entry owner"),
		zap.String("entryId", entry.Id),
	)
}
