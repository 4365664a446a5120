package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SetHistory struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionHistoryId uuid.UUID `gorm:"type:uuid;not null;index"`
	ExerciseId       uuid.UUID `gorm:"type:uuid;not null;index"`
	MachineId        *string

	StartTime time.Time `gorm:"not null"`
	EndTime   time.Time `gorm:"not null"`

	// User input
	WeightKg  float64 `gorm:"not null"`
	RepsCount int     `gorm:"not null"`
	Rpe       *int    // 1-10

	// Sensor data (golden record from the IoT API)
	SensorSnapshot datatypes.JSONMap
}

func (SetHistory) TableName() string {
	return "sets_history"
}
