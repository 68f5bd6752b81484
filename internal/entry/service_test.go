//go:build unit

package entry

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskly-api/internal/user"
	"taskly-api/pkg/cerror"
	"taskly-api/pkg/jwt_generator"
)

const TestEntryId = "entry-id"

var (
	testOwner = &jwt_generator.Identity{Id: "owner-id", Email: "owner@test.com", Role: user.RoleStudent}
	testOther = &jwt_generator.Identity{Id: "other-id", Email: "other@test.com", Role: user.RoleEmployee}
	testAdmin = &jwt_generator.Identity{Id: "admin-id", Email: "admin@test.com", Role: user.RoleAdmin}
)

func newTestEntry() *EntryDocument {
	return &EntryDocument{
		Id:      TestEntryId,
		OwnerId: testOwner.Id,
		Title:   "Write report",
		Status:  StatusTodo,
	}
}

func TestService_CreateEntry(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	mockRepository := NewMockRepository(mockController)
	mockRepository.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).Return(nil)

	entry, err := NewService(mockRepository).CreateEntry(context.Background(), testOwner, &CreateEntryPayload{
		Title: "Write report",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, entry.Id)
	assert.Equal(t, testOwner.Id, entry.OwnerId)
	assert.Equal(t, StatusTodo, entry.Status)
	assert.Equal(t, entry.CreatedAt, entry.UpdatedAt)
}

func TestService_GetEntries(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockRepository := NewMockRepository(mockController)
		mockRepository.EXPECT().FindEntries(gomock.Any(), testOwner.Id).Return([]EntryDocument{*newTestEntry()}, nil)

		entries, err := NewService(mockRepository).GetEntries(context.Background(), testOwner, false)

		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("when admin asks for all should list every entry", func(t *testing.T) {
		mockRepository := NewMockRepository(mockController)
		mockRepository.EXPECT().FindEntries(gomock.Any(), "").Return([]EntryDocument{}, nil)

		_, err := NewService(mockRepository).GetEntries(context.Background(), testAdmin, true)

		assert.NoError(t, err)
	})

	t.Run("when non admin asks for all should return forbidden", func(t *testing.T) {
		_, err := NewService(NewMockRepository(mockController)).GetEntries(context.Background(), testOwner, true)

		assert.True(t, cerror.IsKind(err, cerror.KindForbidden))
	})
}

func TestService_GetEntry(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	for _, identity := range []*jwt_generator.Identity{testOwner, testAdmin} {
		mockRepository := NewMockRepository(mockController)
		mockRepository.EXPECT().FindEntryWithId(gomock.Any(), TestEntryId).Return(newTestEntry(), nil)

		entry, err := NewService(mockRepository).GetEntry(context.Background(), identity, TestEntryId)

		require.NoError(t, err)
		assert.Equal(t, TestEntryId, entry.Id)
	}

	t.Run("when caller is not the owner should return forbidden", func(t *testing.T) {
		mockRepository := NewMockRepository(mockController)
		mockRepository.EXPECT().FindEntryWithId(gomock.Any(), TestEntryId).Return(newTestEntry(), nil)

		_, err := NewService(mockRepository).GetEntry(context.Background(), testOther, TestEntryId)

		assert.True(t, cerror.IsKind(err, cerror.KindForbidden))
	})

	t.Run("when entry not exists should return not found", func(t *testing.T) {
		mockRepository := NewMockRepository(mockController)
		mockRepository.EXPECT().FindEntryWithId(gomock.Any(), TestEntryId).Return(nil, ErrorEntryNotFound)

		_, err := NewService(mockRepository).GetEntry(context.Background(), testOwner, TestEntryId)

		assert.True(t, cerror.IsKind(err, cerror.KindNotFound))
	})
}

func TestService_UpdateEntry(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockRepository := NewMockRepository(mockController)
		mockRepository.EXPECT().FindEntryWithId(gomock.Any(), TestEntryId).Return(newTestEntry(), nil)
		mockRepository.EXPECT().ReplaceEntry(gomock.Any(), gomock.Any()).Return(nil)

		status := StatusDone
		entry, err := NewService(mockRepository).UpdateEntry(context.Background(), testOwner, TestEntryId, &UpdateEntryPayload{
			Status: &status,
		})

		require.NoError(t, err)
		assert.Equal(t, StatusDone, entry.Status)
		assert.Equal(t, "Write report", entry.Title)
		assert.False(t, entry.UpdatedAt.IsZero())
	})

	t.Run("when caller is not the owner should not replace", func(t *testing.T) {
		mockRepository := NewMockRepository(mockController)
		mockRepository.EXPECT().FindEntryWithId(gomock.Any(), TestEntryId).Return(newTestEntry(), nil)

		_, err := NewService(mockRepository).UpdateEntry(context.Background(), testOther, TestEntryId, &UpdateEntryPayload{})

		assert.True(t, cerror.IsKind(err, cerror.KindForbidden))
	})
}

func TestService_DeleteEntry(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockRepository := NewMockRepository(mockController)
		mockRepository.EXPECT().FindEntryWithId(gomock.Any(), TestEntryId).Return(newTestEntry(), nil)
		mockRepository.EXPECT().DeleteEntryWithId(gomock.Any(), TestEntryId).Return(nil)

		err := NewService(mockRepository).DeleteEntry(context.Background(), testAdmin, TestEntryId)

		assert.NoError(t, err)
	})

	t.Run("when caller is not the owner should return forbidden", func(t *testing.T) {
		mockRepository := NewMockRepository(mockController)
		mockRepository.EXPECT().FindEntryWithId(gomock.Any(), TestEntryId).Return(newTestEntry(), nil)

		err := NewService(mockRepository).DeleteEntry(context.Background(), testOther, TestEntryId)

		assert.True(t, cerror.IsKind(err, cerror.KindForbidden))
	})
}
