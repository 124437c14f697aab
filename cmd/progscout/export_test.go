package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/progscout/progscout"
	main "github.com/progscout/progscout/cmd/progscout"
	"github.com/progscout/progscout/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes snapshots to the target directory", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			FindSnapshotsFn: func(_ context.Context, filter progscout.SnapshotFilter) ([]*progscout.Snapshot, error) {
				assert.Nil(t, filter.Domain)
				return []*progscout.Snapshot{
					{
						URL:       "https://example.com/courses/welding",
						Title:     "Welding Fundamentals",
						Content:   "# Welding",
						FetchedAt: time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		dir := t.TempDir()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Snapshots = snapshots

		cmd := &main.ExportCmd{Dir: dir}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Exported 1 of 1 snapshots")

		data, err := os.ReadFile(filepath.Join(dir, "example.com", "courses", "welding.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "# Welding")
	})

	t.Run("forwards the domain filter", func(t *testing.T) {
		t.Parallel()

		var received progscout.SnapshotFilter
		snapshots := &mock.SnapshotService{
			FindSnapshotsFn: func(_ context.Context, filter progscout.SnapshotFilter) ([]*progscout.Snapshot, error) {
				received = filter
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Snapshots = snapshots

		cmd := &main.ExportCmd{Dir: t.TempDir(), Domain: "example.com", Limit: 5}

		err := cmd.Run(deps)
		require.NoError(t, err)
		require.NotNil(t, received.Domain)
		assert.Equal(t, "example.com", *received.Domain)
		assert.Equal(t, 5, received.Limit)
		assert.Contains(t, stdout.String(), "No snapshots to export")
	})

	t.Run("skips snapshots that cannot be written", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			FindSnapshotsFn: func(_ context.Context, _ progscout.SnapshotFilter) ([]*progscout.Snapshot, error) {
				return []*progscout.Snapshot{
					{URL: "https://example.com/good", Content: "ok"},
					{URL: "not-a-url", Content: "bad"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Snapshots = snapshots

		cmd := &main.ExportCmd{Dir: t.TempDir()}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Exported 1 of 2 snapshots")
		assert.Contains(t, stderr.String(), "skip not-a-url")
	})

	t.Run("returns error when lookup fails", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			FindSnapshotsFn: func(_ context.Context, _ progscout.SnapshotFilter) ([]*progscout.Snapshot, error) {
				return nil, progscout.Errorf(progscout.EINTERNAL, "database error")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Snapshots = snapshots

		cmd := &main.ExportCmd{Dir: t.TempDir()}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: database error")
	})
}
