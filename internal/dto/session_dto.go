package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Availability ---

const (
	AlternativeTypeDBLink           = "db_link"
	AlternativeTypeRagSuggestion    = "rag_suggestion"
	AlternativeTypeAIRecommendation = "ai_recommendation"
)

type AlternativeSuggestion struct {
	Type     string     `json:"type"` // db_link, rag_suggestion or ai_recommendation
	Exercise string     `json:"exercise"`
	Id       *uuid.UUID `json:"id"`
	WaitTime int        `json:"wait_time"`
	Reason   string     `json:"reason,omitempty"`
}

type AvailabilityResponse struct {
	Status         string                  `json:"status"` // "available" or "busy"
	WaitTime       int                     `json:"wait_time"`
	Recommendation string                  `json:"recommendation"`
	Alternatives   []AlternativeSuggestion `json:"alternatives"`
	DatasetSource  string                  `json:"dataset_source"`
}

// --- Session lifecycle ---

type StartSessionRequest struct {
	SessionId *uuid.UUID `json:"session_id"`
}

type StartSessionResponse struct {
	HistoryId uuid.UUID `json:"history_id"`
	StartedAt time.Time `json:"started_at"`
}

type LogSetRequest struct {
	HistoryId  uuid.UUID `json:"history_id" validate:"required"`
	ExerciseId uuid.UUID `json:"exercise_id" validate:"required"`
	WeightKg   float64   `json:"weight_kg" validate:"min=0"`
	Reps       int       `json:"reps" validate:"required,min=1"`
	Rpe        *int      `json:"rpe" validate:"omitempty,min=1,max=10"`
	// MachineId is the concrete machine the user scanned; the sensor
	// snapshot is only fetched when it is present
	MachineId       *string `json:"machine_id"`
	DurationSeconds int     `json:"duration_seconds" validate:"omitempty,min=0"`
}

type LogSetResponse struct {
	Id             uuid.UUID              `json:"id"`
	SensorSnapshot map[string]interface{} `json:"sensor_snapshot"`
}

type StopSessionRequest struct {
	HistoryId uuid.UUID `json:"history_id" validate:"required"`
	Notes     string    `json:"notes"`
}

type StopSessionResponse struct {
	HistoryId       uuid.UUID `json:"history_id"`
	TotalXp         int       `json:"total_xp"`
	DurationMinutes int       `json:"duration_minutes"`
	FinishedAt      time.Time `json:"finished_at"`
}

// --- History & stats ---

type SetHistoryResponse struct {
	Id             uuid.UUID              `json:"id"`
	ExerciseId     uuid.UUID              `json:"exercise_id"`
	MachineId      *string                `json:"machine_id"`
	WeightKg       float64                `json:"weight_kg"`
	Reps           int                    `json:"reps"`
	Rpe            *int                   `json:"rpe"`
	StartTime      time.Time              `json:"start_time"`
	EndTime        time.Time              `json:"end_time"`
	SensorSnapshot map[string]interface{} `json:"sensor_snapshot,omitempty"`
}

type SessionHistoryResponse struct {
	Id         uuid.UUID            `json:"id"`
	SessionId  *uuid.UUID           `json:"session_id"`
	StartedAt  time.Time            `json:"started_at"`
	FinishedAt *time.Time           `json:"finished_at"`
	TotalXp    int                  `json:"total_xp"`
	Notes      *string              `json:"notes"`
	Sets       []SetHistoryResponse `json:"sets"`
}

type BestSetResponse struct {
	WeightKg float64   `json:"weight_kg"`
	Reps     int       `json:"reps"`
	Rpe      *int      `json:"rpe"`
	Date     time.Time `json:"date"`
}

type ExerciseStatPoint struct {
	Date         time.Time `json:"date"`
	WeightKg     float64   `json:"weight_kg"`
	Reps         int       `json:"reps"`
	OneRepMaxEst float64   `json:"one_rep_max_est"`
}

type ExerciseStatsResponse struct {
	ExerciseId uuid.UUID           `json:"exercise_id"`
	BestSet    *BestSetResponse    `json:"best_set"`
	History    []ExerciseStatPoint `json:"history"`
}
