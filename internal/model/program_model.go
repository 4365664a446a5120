package model

import (
	"time"

	"github.com/google/uuid"
)

type Program struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"not null"`
	Goal      string    `gorm:"not null"`
	Status    string    `gorm:"default:active"` // active, archived
	StartDate time.Time
	EndDate   *time.Time

	Sessions []Session `gorm:"foreignKey:ProgramId;constraint:OnDelete:CASCADE"`
}

func (Program) TableName() string {
	return "programs"
}
