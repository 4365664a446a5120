package contract

import (
	"context"
	"time"

	"fit-buddy-be/internal/entity"

	"github.com/google/uuid"
)

// BestSet is a user's best historical performance on one exercise (max weight).
type BestSet struct {
	WeightKg float64
	Reps     int
	Rpe      *int
	Date     time.Time
}

// ExerciseStat is one progression data point with an estimated 1RM.
type ExerciseStat struct {
	Date         time.Time
	WeightKg     float64
	Reps         int
	OneRepMaxEst float64
}

type SessionRepository interface {
	CreateHistory(ctx context.Context, userId uuid.UUID, sessionId *uuid.UUID) (*entity.SessionHistory, error)
	// GetHistory returns nil, nil when not found; sets are not loaded
	GetHistory(ctx context.Context, historyId uuid.UUID) (*entity.SessionHistory, error)
	// GetFullSession loads the history with all sets
	GetFullSession(ctx context.Context, historyId uuid.UUID) (*entity.SessionHistory, error)
	AddSet(ctx context.Context, set *entity.SetHistory) error
	FinishSession(ctx context.Context, historyId uuid.UUID, notes *string, totalXp int, finishedAt time.Time) (*entity.SessionHistory, error)
	// GetRecentBestSet returns nil, nil when the user has no sets for the exercise
	GetRecentBestSet(ctx context.Context, userId, exerciseId uuid.UUID) (*BestSet, error)
	GetExerciseHistory(ctx context.Context, userId, exerciseId uuid.UUID, limit int) ([]*ExerciseStat, error)
}
