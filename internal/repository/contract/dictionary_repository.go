package contract

import (
	"context"

	"fit-buddy-be/internal/entity"
	"fit-buddy-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DictionaryRepository interface {
	GetMachines(ctx context.Context) ([]*entity.Machine, error)
	GetExercises(ctx context.Context, specs ...specification.Specification) ([]*entity.Exercise, error)
	// GetExerciseById returns nil, nil when the exercise does not exist
	GetExerciseById(ctx context.Context, id uuid.UUID) (*entity.Exercise, error)
	// GetExerciseByName does a case-insensitive exact match
	GetExerciseByName(ctx context.Context, name string) (*entity.Exercise, error)
	CreateExercise(ctx context.Context, exercise *entity.Exercise) error
}
