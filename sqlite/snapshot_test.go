package sqlite_test

import (
	"context"
	"testing"

	"github.com/progscout/progscout"
	"github.com/progscout/progscout/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotService(t *testing.T) {
	t.Parallel()

	t.Run("save derives domain and hash", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewSnapshotService(db)
		ctx := context.Background()

		snap := &progscout.Snapshot{
			URL:     "https://Example.com/courses/go",
			Title:   "Go Course",
			Content: "# Go Course",
		}
		require.NoError(t, s.SaveSnapshot(ctx, snap))

		got, err := s.FindSnapshotByURL(ctx, "https://Example.com/courses/go")
		require.NoError(t, err)
		assert.Equal(t, "example.com", got.Domain)
		assert.Equal(t, "Go Course", got.Title)
		assert.NotEmpty(t, got.ContentHash)
		assert.False(t, got.FetchedAt.IsZero())
	})

	t.Run("re-saving a URL replaces its snapshot", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewSnapshotService(db)
		ctx := context.Background()

		first := &progscout.Snapshot{URL: "https://example.com/a", Content: "old"}
		require.NoError(t, s.SaveSnapshot(ctx, first))

		second := &progscout.Snapshot{URL: "https://example.com/a", Content: "new"}
		require.NoError(t, s.SaveSnapshot(ctx, second))

		got, err := s.FindSnapshotByURL(ctx, "https://example.com/a")
		require.NoError(t, err)
		assert.Equal(t, "new", got.Content)
		assert.NotEqual(t, first.ContentHash, got.ContentHash)
	})

	t.Run("missing URL yields ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewSnapshotService(db)

		_, err := s.FindSnapshotByURL(context.Background(), "https://example.com/none")
		require.Error(t, err)
		assert.Equal(t, progscout.ENOTFOUND, progscout.ErrorCode(err))
	})

	t.Run("finds snapshots filtered by domain", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewSnapshotService(db)
		ctx := context.Background()

		for _, u := range []string{
			"https://a.example.com/1",
			"https://a.example.com/2",
			"https://b.example.com/1",
		} {
			require.NoError(t, s.SaveSnapshot(ctx, &progscout.Snapshot{URL: u, Content: "x"}))
		}

		all, err := s.FindSnapshots(ctx, progscout.SnapshotFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 3)

		domain := "a.example.com"
		filtered, err := s.FindSnapshots(ctx, progscout.SnapshotFilter{Domain: &domain})
		require.NoError(t, err)
		require.Len(t, filtered, 2)
		for _, snap := range filtered {
			assert.Equal(t, "a.example.com", snap.Domain)
		}

		limited, err := s.FindSnapshots(ctx, progscout.SnapshotFilter{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})

	t.Run("counts distinct domains", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewSnapshotService(db)
		ctx := context.Background()

		for _, u := range []string{
			"https://a.example.com/1",
			"https://a.example.com/2",
			"https://b.example.com/1",
		} {
			require.NoError(t, s.SaveSnapshot(ctx, &progscout.Snapshot{URL: u, Content: "x"}))
		}

		count, err := s.CountDomains(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}
