package model

import (
	"github.com/google/uuid"
)

type Machine struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string     `gorm:"not null"`
	MachineTypeId string     `gorm:"not null;index"` // e.g. "DC_BENCH"
	SensorId      *uuid.UUID `gorm:"type:uuid"`
	IsActive      bool       `gorm:"default:true"`
	Zone          *string
}

func (Machine) TableName() string {
	return "machines"
}
