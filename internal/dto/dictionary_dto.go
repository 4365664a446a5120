package dto

import (
	"github.com/google/uuid"
)

type MachineResponse struct {
	Id            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	MachineTypeId string     `json:"machine_type_id"`
	SensorId      *uuid.UUID `json:"sensor_id"`
	IsActive      bool       `json:"is_active"`
	Zone          *string    `json:"zone"`
}

type ExerciseResponse struct {
	Id            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	Description   *string     `json:"description"`
	MuscleGroup   string      `json:"muscle_group"`
	MachineTypeId *string     `json:"machine_type_id"`
	Alternatives  []uuid.UUID `json:"alternatives"`
}

type ListExercisesRequest struct {
	MuscleGroup string `query:"muscle_group"`
	MachineType string `query:"machine_type"`
	Page        int    `query:"page"`
	PageSize    int    `query:"page_size"`
}

type CreateExerciseRequest struct {
	Name          string      `json:"name" validate:"required"`
	MuscleGroup   string      `json:"muscle_group" validate:"required"`
	Description   *string     `json:"description"`
	MachineTypeId *string     `json:"machine_type_id"`
	Alternatives  []uuid.UUID `json:"alternatives"`
}

type CreateExerciseResponse struct {
	Id uuid.UUID `json:"id"`
}

// PublishEmbedExerciseMessage is the payload for the async embedding pipeline.
type PublishEmbedExerciseMessage struct {
	ExerciseId uuid.UUID `json:"exercise_id"`
}
