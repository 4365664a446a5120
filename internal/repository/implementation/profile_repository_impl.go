package implementation

import (
	"context"
	"errors"

	"fit-buddy-be/internal/entity"
	"fit-buddy-be/internal/mapper"
	"fit-buddy-be/internal/model"
	"fit-buddy-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewProfileRepository(db *gorm.DB) contract.ProfileRepository {
	return &ProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *ProfileRepositoryImpl) GetByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserProfile, error) {
	var m model.UserProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *entity.UserProfile) error {
	m := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProfileRepositoryImpl) Update(ctx context.Context, userId uuid.UUID, onboarding, stats map[string]interface{}) (*entity.UserProfile, error) {
	values := map[string]interface{}{}
	if onboarding != nil {
		values["onboarding_data"] = datatypes.JSONMap(onboarding)
	}
	if stats != nil {
		values["current_stats"] = datatypes.JSONMap(stats)
	}

	if len(values) > 0 {
		err := r.db.WithContext(ctx).
			Model(&model.UserProfile{}).
			Where("user_id = ?", userId).
			Updates(values).Error
		if err != nil {
			return nil, err
		}
	}

	return r.GetByUserId(ctx, userId)
}
