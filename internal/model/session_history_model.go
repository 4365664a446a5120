package model

import (
	"time"

	"github.com/google/uuid"
)

type SessionHistory struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID  `gorm:"type:uuid;not null;index"`
	SessionId  *uuid.UUID `gorm:"type:uuid;index"`
	StartedAt  time.Time
	FinishedAt *time.Time

	TotalXp       int `gorm:"default:0"`
	FeedbackNotes *string

	Sets []SetHistory `gorm:"foreignKey:SessionHistoryId;constraint:OnDelete:CASCADE"`
}

func (SessionHistory) TableName() string {
	return "sessions_history"
}
