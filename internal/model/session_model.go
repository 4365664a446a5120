package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Session struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProgramId uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"not null"`

	// Position inside the program, 1-based
	OrderIndex int `gorm:"not null"`

	// Planned exercise slots, JSONB array of ExercisePlanEntry
	ExercisesPlan datatypes.JSON `gorm:"not null"`
}

func (Session) TableName() string {
	return "sessions"
}
