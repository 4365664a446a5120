package service

import (
	"context"
	"time"

	"fit-buddy-be/internal/dto"
	"fit-buddy-be/internal/entity"
	"fit-buddy-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProfileService interface {
	Onboard(ctx context.Context, userId uuid.UUID, req *dto.OnboardingRequest) (*dto.ProfileResponse, error)
	Show(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type profileService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory) IProfileService {
	return &profileService{
		uowFactory: uowFactory,
	}
}

func (s *profileService) Onboard(ctx context.Context, userId uuid.UUID, req *dto.OnboardingRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	onboarding := map[string]interface{}{
		"goal":             req.Goal,
		"experience_level": req.ExperienceLevel,
	}
	if req.DaysPerWeek > 0 {
		onboarding["days_per_week"] = req.DaysPerWeek
	}
	if len(req.Equipment) > 0 {
		onboarding["equipment"] = req.Equipment
	}
	if len(req.Injuries) > 0 {
		onboarding["injuries"] = req.Injuries
	}
	for k, v := range req.Extra {
		// explicit answers win over free-form extras
		if _, taken := onboarding[k]; !taken {
			onboarding[k] = v
		}
	}

	stats := req.CurrentStats
	if stats == nil {
		stats = map[string]interface{}{}
	}

	existing, err := uow.ProfileRepository().GetByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	var profile *entity.UserProfile
	if existing == nil {
		profile = &entity.UserProfile{
			UserId:         userId,
			OnboardingData: onboarding,
			CurrentStats:   stats,
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		}
		if err := uow.ProfileRepository().Create(ctx, profile); err != nil {
			return nil, err
		}
	} else {
		// re-onboarding replaces the previous answers wholesale
		profile, err = uow.ProfileRepository().Update(ctx, userId, onboarding, stats)
		if err != nil {
			return nil, err
		}
	}

	return toProfileResponse(profile), nil
}

func (s *profileService) Show(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().GetByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "profile not found, complete onboarding first")
	}

	return toProfileResponse(profile), nil
}

func (s *profileService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ProfileRepository().GetByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "profile not found, complete onboarding first")
	}

	onboarding := existing.OnboardingData
	for k, v := range req.OnboardingData {
		onboarding[k] = v
	}
	stats := existing.CurrentStats
	if stats == nil {
		stats = map[string]interface{}{}
	}
	for k, v := range req.CurrentStats {
		stats[k] = v
	}

	profile, err := uow.ProfileRepository().Update(ctx, userId, onboarding, stats)
	if err != nil {
		return nil, err
	}

	return toProfileResponse(profile), nil
}

func toProfileResponse(profile *entity.UserProfile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		UserId:         profile.UserId.String(),
		OnboardingData: profile.OnboardingData,
		CurrentStats:   profile.CurrentStats,
		CreatedAt:      profile.CreatedAt,
		UpdatedAt:      profile.UpdatedAt,
	}
}
