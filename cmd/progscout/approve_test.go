package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/progscout/progscout"
	main "github.com/progscout/progscout/cmd/progscout"
	"github.com/progscout/progscout/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproveCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("approves a program", func(t *testing.T) {
		t.Parallel()

		var gotID string
		var gotApproved bool
		programs := &mock.ProgramService{
			SetApprovedFn: func(_ context.Context, id string, approved bool) error {
				gotID, gotApproved = id, approved
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Programs = programs

		cmd := &main.ApproveCmd{ID: "prog-123"}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Equal(t, "prog-123", gotID)
		assert.True(t, gotApproved)
		assert.Contains(t, stdout.String(), "Approved prog-123")
	})

	t.Run("revokes approval with --revoke", func(t *testing.T) {
		t.Parallel()

		var gotApproved bool
		programs := &mock.ProgramService{
			SetApprovedFn: func(_ context.Context, _ string, approved bool) error {
				gotApproved = approved
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Programs = programs

		cmd := &main.ApproveCmd{ID: "prog-123", Revoke: true}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.False(t, gotApproved)
		assert.Contains(t, stdout.String(), "Revoked approval for prog-123")
	})

	t.Run("returns error when program not found", func(t *testing.T) {
		t.Parallel()

		programs := &mock.ProgramService{
			SetApprovedFn: func(_ context.Context, _ string, _ bool) error {
				return progscout.Errorf(progscout.ENOTFOUND, "program not found")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Programs = programs

		cmd := &main.ApproveCmd{ID: "missing"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: program not found")
		assert.Empty(t, stdout.String())
	})
}
