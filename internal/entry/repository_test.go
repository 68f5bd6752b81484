//go:build unit

package entry

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
	entryRepository := NewRepository(client, mongodbConfig)
	require.NoError(t, entryRepository.EnsureIndexes(ctx))

	now := time.Now().UTC().Truncate(time.Millisecond)
	older := &EntryDocument{Id: "older", OwnerId: "owner-id", Title: "first", Status: StatusTodo, CreatedAt: now.Add(-time.Hour)}
	newer := &EntryDocument{Id: "newer", OwnerId: "owner-id", Title: "second", Status: StatusTodo, CreatedAt: now}
	foreign := &EntryDocument{Id: "foreign", OwnerId: "other-id", Title: "third", Status: StatusDone, CreatedAt: now}

	t.Run("happy path", func(t *testing.T) {
		for _, entry := range []*EntryDocument{older, newer, foreign} {
			require.NoError(t, entryRepository.InsertEntry(ctx, entry))
		}

		entries, err := entryRepository.FindEntries(ctx, "owner-id")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "newer", entries[0].Id)
		assert.Equal(t, "older", entries[1].Id)

		all, err := entryRepository.FindEntries(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("should replace entry", func(t *testing.T) {
		updated := *older
		updated.Status = StatusDone
		require.NoError(t, entryRepository.ReplaceEntry(ctx, &updated))

		found, err := entryRepository.FindEntryWithId(ctx, "older")
		require.NoError(t, err)
		assert.Equal(t, StatusDone, found.Status)
	})

	t.Run("should delete entry", func(t *testing.T) {
		require.NoError(t, entryRepository.DeleteEntryWithId(ctx, "foreign"))

		_, err := entryRepository.FindEntryWithId(ctx, "foreign")
		assert.True(t, cerror.IsKind(err, cerror.KindNotFound))

		err = entryRepository.DeleteEntryWithId(ctx, "foreign")
		assert.True(t, cerror.IsKind(err, cerror.KindNotFound))
	})
}
