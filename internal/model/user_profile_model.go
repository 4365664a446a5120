package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserProfile struct {
	UserId         uuid.UUID         `gorm:"type:uuid;primaryKey"`
	OnboardingData datatypes.JSONMap `gorm:"not null"`
	CurrentStats   datatypes.JSONMap `gorm:"not null"`
	CreatedAt      time.Time         `gorm:"autoCreateTime"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
