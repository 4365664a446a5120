package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionHistory is one tracked workout (started/finished) for a user.
type SessionHistory struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	SessionId     *uuid.UUID // the planned session this run follows, if any
	StartedAt     time.Time
	FinishedAt    *time.Time
	TotalXp       int
	FeedbackNotes *string
	Sets          []*SetHistory
}

// SetHistory is one logged set, optionally enriched with a sensor snapshot
// fetched from the machine the user worked on.
type SetHistory struct {
	Id               uuid.UUID
	SessionHistoryId uuid.UUID
	ExerciseId       uuid.UUID
	MachineId        *string
	StartTime        time.Time
	EndTime          time.Time
	WeightKg         float64
	RepsCount        int
	Rpe              *int
	SensorSnapshot   map[string]interface{}
}
