package mapper

import (
	"fit-buddy-be/internal/entity"
	"fit-buddy-be/internal/model"

	"gorm.io/datatypes"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.UserProfile) *entity.UserProfile {
	if p == nil {
		return nil
	}
	return &entity.UserProfile{
		UserId:         p.UserId,
		OnboardingData: map[string]interface{}(p.OnboardingData),
		CurrentStats:   map[string]interface{}(p.CurrentStats),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.UserProfile) *model.UserProfile {
	if p == nil {
		return nil
	}
	return &model.UserProfile{
		UserId:         p.UserId,
		OnboardingData: datatypes.JSONMap(p.OnboardingData),
		CurrentStats:   datatypes.JSONMap(p.CurrentStats),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
