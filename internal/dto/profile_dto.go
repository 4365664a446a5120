package dto

import (
	"time"
)

type OnboardingRequest struct {
	Goal            string                 `json:"goal" validate:"required"`
	ExperienceLevel string                 `json:"experience_level" validate:"required,oneof=beginner intermediate advanced"`
	DaysPerWeek     int                    `json:"days_per_week" validate:"omitempty,min=1,max=7"`
	Equipment       []string               `json:"equipment"`
	Injuries        []string               `json:"injuries"`
	Extra           map[string]interface{} `json:"extra"`
	CurrentStats    map[string]interface{} `json:"current_stats"`
}

type ProfileResponse struct {
	UserId         string                 `json:"user_id"`
	OnboardingData map[string]interface{} `json:"onboarding_data"`
	CurrentStats   map[string]interface{} `json:"current_stats"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

type UpdateProfileRequest struct {
	OnboardingData map[string]interface{} `json:"onboarding_data"`
	CurrentStats   map[string]interface{} `json:"current_stats"`
}
