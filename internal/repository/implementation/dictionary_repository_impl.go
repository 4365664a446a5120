package implementation

import (
	"context"
	"errors"

	"fit-buddy-be/internal/entity"
	"fit-buddy-be/internal/mapper"
	"fit-buddy-be/internal/model"
	"fit-buddy-be/internal/repository/contract"
	"fit-buddy-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DictionaryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DictionaryMapper
}

func NewDictionaryRepository(db *gorm.DB) contract.DictionaryRepository {
	return &DictionaryRepositoryImpl{
		db:     db,
		mapper: mapper.NewDictionaryMapper(),
	}
}

func (r *DictionaryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DictionaryRepositoryImpl) GetMachines(ctx context.Context) ([]*entity.Machine, error) {
	var machines []*model.Machine
	if err := r.db.WithContext(ctx).Order("name").Find(&machines).Error; err != nil {
		return nil, err
	}
	return r.mapper.MachinesToEntities(machines), nil
}

func (r *DictionaryRepositoryImpl) GetExercises(ctx context.Context, specs ...specification.Specification) ([]*entity.Exercise, error) {
	var exercises []*model.Exercise
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("name").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return r.mapper.ExercisesToEntities(exercises), nil
}

func (r *DictionaryRepositoryImpl) GetExerciseById(ctx context.Context, id uuid.UUID) (*entity.Exercise, error) {
	var m model.Exercise
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ExerciseToEntity(&m), nil
}

func (r *DictionaryRepositoryImpl) GetExerciseByName(ctx context.Context, name string) (*entity.Exercise, error) {
	var m model.Exercise
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByNameInsensitive{Name: name})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ExerciseToEntity(&m), nil
}

func (r *DictionaryRepositoryImpl) CreateExercise(ctx context.Context, exercise *entity.Exercise) error {
	m := r.mapper.ExerciseToModel(exercise)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*exercise = *r.mapper.ExerciseToEntity(m)
	return nil
}
