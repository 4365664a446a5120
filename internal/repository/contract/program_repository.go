package contract

import (
	"context"

	"fit-buddy-be/internal/entity"

	"github.com/google/uuid"
)

type ProgramRepository interface {
	// GetActiveProgram returns nil, nil when the user has no active program
	GetActiveProgram(ctx context.Context, userId uuid.UUID) (*entity.Program, error)
	GetProgramById(ctx context.Context, programId uuid.UUID) (*entity.Program, error)
	// CreateProgram persists the program and its sessions atomically and
	// returns the stored program with sessions loaded
	CreateProgram(ctx context.Context, program *entity.Program, sessions []*entity.Session) (*entity.Program, error)
	ArchiveCurrentPrograms(ctx context.Context, userId uuid.UUID) error
}
