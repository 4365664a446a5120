package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile holds onboarding answers and physical stats for one user.
// The user id comes from the external auth service.
type UserProfile struct {
	UserId         uuid.UUID
	OnboardingData map[string]interface{}
	CurrentStats   map[string]interface{}
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Goal returns the onboarding goal, or a default when onboarding is sparse.
func (p *UserProfile) Goal() string {
	if g, ok := p.OnboardingData["goal"].(string); ok && g != "" {
		return g
	}
	return "general_fitness"
}

// ExperienceLevel returns the onboarding experience level, defaulted.
func (p *UserProfile) ExperienceLevel() string {
	if l, ok := p.OnboardingData["experience_level"].(string); ok && l != "" {
		return l
	}
	return "beginner"
}
