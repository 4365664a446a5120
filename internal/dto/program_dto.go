package dto

import (
	"time"

	"github.com/google/uuid"

	"fit-buddy-be/internal/entity"
)

const (
	GenerationMethodSmart    = "smart"
	GenerationMethodTemplate = "template"
)

type GenerateProgramRequest struct {
	// Method defaults to smart when empty
	Method     string `json:"method" validate:"omitempty,oneof=smart template"`
	Regenerate bool   `json:"regenerate"`
}

type SessionResponse struct {
	Id            uuid.UUID                  `json:"id"`
	Name          string                     `json:"name"`
	OrderIndex    int                        `json:"order_index"`
	ExercisesPlan []entity.ExercisePlanEntry `json:"exercises_plan"`
}

type ProgramResponse struct {
	Id         uuid.UUID         `json:"id"`
	Name       string            `json:"name"`
	Goal       string            `json:"goal"`
	Status     string            `json:"status"`
	CoachNotes string            `json:"coach_notes,omitempty"`
	Source     string            `json:"source"` // "ai" or "template"
	StartDate  time.Time         `json:"start_date"`
	EndDate    *time.Time        `json:"end_date"`
	Sessions   []SessionResponse `json:"sessions"`
}
