package mock

import (
	"context"

	"github.com/progscout/progscout"
)

var _ progscout.ProgramService = (*ProgramService)(nil)

// ProgramService is a mock implementation of progscout.ProgramService.
type ProgramService struct {
	CreateProgramsFn  func(ctx context.Context, programs []*progscout.Program) (int, error)
	FindProgramByIDFn func(ctx context.Context, id string) (*progscout.Program, error)
	FindProgramsFn    func(ctx context.Context, filter progscout.ProgramFilter) ([]*progscout.Program, error)
	SetApprovedFn     func(ctx context.Context, id string, approved bool) error
	StatsFn           func(ctx context.Context) (*progscout.Stats, error)
}

func (s *ProgramService) CreatePrograms(ctx context.Context, programs []*progscout.Program) (int, error) {
	return s.CreateProgramsFn(ctx, programs)
}

func (s *ProgramService) FindProgramByID(ctx context.Context, id string) (*progscout.Program, error) {
	return s.FindProgramByIDFn(ctx, id)
}

func (s *ProgramService) FindPrograms(ctx context.Context, filter progscout.ProgramFilter) ([]*progscout.Program, error) {
	return s.FindProgramsFn(ctx, filter)
}

func (s *ProgramService) SetApproved(ctx context.Context, id string, approved bool) error {
	return s.SetApprovedFn(ctx, id, approved)
}

func (s *ProgramService) Stats(ctx context.Context) (*progscout.Stats, error) {
	return s.StatsFn(ctx)
}
