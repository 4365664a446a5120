package contract

import (
	"context"

	"fit-buddy-be/internal/entity"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	// GetByUserId returns nil, nil when no profile exists
	GetByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserProfile, error)
	Create(ctx context.Context, profile *entity.UserProfile) error
	Update(ctx context.Context, userId uuid.UUID, onboarding, stats map[string]interface{}) (*entity.UserProfile, error)
}
