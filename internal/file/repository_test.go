//go:build unit

package file

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskly-api/pkg/cerror"
	"taskly-api/pkg/mongotest"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	client, mongodbConfig := mongotest.Setup(t, ctx)
	fileRepository := NewRepository(client, mongodbConfig)
	require.NoError(t, fileRepository.EnsureIndexes(ctx))

	now := time.Now().UTC().Truncate(time.Millisecond)
	document := &FileDocument{
		Id:          "file-id",
		OwnerId:     "owner-id",
		Name:        "report.txt",
		ContentType: "text/plain",
		Size:        5,
		Key:         "owner-id/file-id",
		CreatedAt:   now,
	}

	t.Run("happy path", func(t *testing.T) {
		require.NoError(t, fileRepository.InsertFile(ctx, document))

		found, err := fileRepository.FindFileWithId(ctx, "file-id")
		require.NoError(t, err)
		assert.Equal(t, document, found)

		files, err := fileRepository.FindFiles(ctx, "owner-id")
		require.NoError(t, err)
		assert.Len(t, files, 1)

		files, err = fileRepository.FindFiles(ctx, "other-id")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("should delete file", func(t *testing.T) {
		require.NoError(t, fileRepository.DeleteFileWithId(ctx, "file-id"))

		_, err := fileRepository.FindFileWithId(ctx, "file-id")
		assert.True(t, cerror.IsKind(err, cerror.KindNotFound))
	})
}
