package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Exercise struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"not null;index"`
	Description *string
	MuscleGroup string `gorm:"not null;index"`

	// Logical link to machines (no FK; machines of a type are interchangeable)
	MachineTypeId *string `gorm:"index"`

	// Curated alternative exercise ids, stored as JSONB
	Alternatives datatypes.JSONSlice[string]
}

func (Exercise) TableName() string {
	return "exercises"
}
