package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/progscout/progscout"
	main "github.com/progscout/progscout/cmd/progscout"
	"github.com/progscout/progscout/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists programs with ID, type, price, and title", func(t *testing.T) {
		t.Parallel()

		programs := &mock.ProgramService{
			FindProgramsFn: func(_ context.Context, _ progscout.ProgramFilter) ([]*progscout.Program, error) {
				return []*progscout.Program{
					{
						ID:       "prog-123",
						Title:    "Welding Fundamentals",
						URL:      "https://example.com/welding",
						Type:     progscout.TypeCourse,
						Mode:     progscout.ModeOnline,
						Price:    floatPtr(450),
						Currency: "AUD",
						Approved: true,
					},
					{
						ID:    "prog-456",
						Title: "Safety Seminar",
						URL:   "https://example.com/safety",
						Type:  progscout.TypeSeminar,
						Mode:  progscout.ModeInPerson,
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Programs = programs

		cmd := &main.ListCmd{Limit: 50}

		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "prog-123")
		assert.Contains(t, output, "Welding Fundamentals")
		assert.Contains(t, output, "450.00 AUD")
		assert.Contains(t, output, "prog-456")
		assert.Contains(t, output, "Safety Seminar")
		assert.Contains(t, output, "-") // priceless program
	})

	t.Run("forwards filter flags as pointers", func(t *testing.T) {
		t.Parallel()

		var received progscout.ProgramFilter
		programs := &mock.ProgramService{
			FindProgramsFn: func(_ context.Context, filter progscout.ProgramFilter) ([]*progscout.Program, error) {
				received = filter
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Programs = programs

		cmd := &main.ListCmd{
			Type:    "Course",
			Cost:    "Paid",
			Country: "australia",
			Limit:   10,
			Offset:  5,
		}

		err := cmd.Run(deps)
		require.NoError(t, err)

		require.NotNil(t, received.Type)
		assert.Equal(t, progscout.TypeCourse, *received.Type)
		require.NotNil(t, received.Cost)
		assert.Equal(t, "Paid", *received.Cost)
		require.NotNil(t, received.CountryContains)
		assert.Equal(t, "australia", *received.CountryContains)
		assert.Nil(t, received.Mode)
		assert.Nil(t, received.CityContains)
		assert.Equal(t, 10, received.Limit)
		assert.Equal(t, 5, received.Offset)
	})

	t.Run("treats Any as no filter", func(t *testing.T) {
		t.Parallel()

		var received progscout.ProgramFilter
		programs := &mock.ProgramService{
			FindProgramsFn: func(_ context.Context, filter progscout.ProgramFilter) ([]*progscout.Program, error) {
				received = filter
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Programs = programs

		cmd := &main.ListCmd{Type: "Any", Mode: "Any", Limit: 50}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Nil(t, received.Type)
		assert.Nil(t, received.Mode)
	})

	t.Run("shows helpful message when no programs exist", func(t *testing.T) {
		t.Parallel()

		programs := &mock.ProgramService{
			FindProgramsFn: func(_ context.Context, _ progscout.ProgramFilter) ([]*progscout.Program, error) {
				return []*progscout.Program{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Programs = programs

		cmd := &main.ListCmd{Limit: 50}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No programs")
	})

	t.Run("returns error when FindPrograms fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")
		programs := &mock.ProgramService{
			FindProgramsFn: func(_ context.Context, _ progscout.ProgramFilter) ([]*progscout.Program, error) {
				return nil, dbErr
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Programs = programs

		cmd := &main.ListCmd{Limit: 50}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
