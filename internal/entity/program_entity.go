package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProgramStatusActive   = "active"
	ProgramStatusArchived = "archived"
)

// Program is a generated workout plan. One active program per user.
type Program struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Name      string
	Goal      string
	Status    string
	StartDate time.Time
	EndDate   *time.Time
	Sessions  []*Session
}

// Session is one planned workout inside a program.
type Session struct {
	Id            uuid.UUID
	ProgramId     uuid.UUID
	Name          string
	OrderIndex    int // 1-based position inside the program
	ExercisesPlan []ExercisePlanEntry
}

// ExercisePlanEntry is one planned exercise slot. ExerciseId is nil when the
// librarian could not resolve the semantic query to a catalog entry; the name
// then carries the raw query text.
type ExercisePlanEntry struct {
	ExerciseId   *uuid.UUID `json:"exercise_id"`
	ExerciseName string     `json:"exercise_name"`
	TargetSets   int        `json:"target_sets"`
	TargetReps   string     `json:"target_reps"`
	RestSeconds  int        `json:"rest_seconds"`
	Notes        string     `json:"notes,omitempty"`
}
