package implementation

import (
	"context"
	"errors"
	"time"

	"fit-buddy-be/internal/entity"
	"fit-buddy-be/internal/mapper"
	"fit-buddy-be/internal/model"
	"fit-buddy-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgramRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProgramMapper
}

func NewProgramRepository(db *gorm.DB) contract.ProgramRepository {
	return &ProgramRepositoryImpl{
		db:     db,
		mapper: mapper.NewProgramMapper(),
	}
}

func (r *ProgramRepositoryImpl) GetActiveProgram(ctx context.Context, userId uuid.UUID) (*entity.Program, error) {
	var m model.Program
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userId, entity.ProgramStatusActive).
		Preload("Sessions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProgramRepositoryImpl) GetProgramById(ctx context.Context, programId uuid.UUID) (*entity.Program, error) {
	var m model.Program
	err := r.db.WithContext(ctx).
		Where("id = ?", programId).
		Preload("Sessions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProgramRepositoryImpl) CreateProgram(ctx context.Context, program *entity.Program, sessions []*entity.Session) (*entity.Program, error) {
	programModel := r.mapper.ToModel(program)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(programModel).Error; err != nil {
			return err
		}
		for _, s := range sessions {
			s.ProgramId = programModel.Id
			sessionModel, err := r.mapper.SessionToModel(s)
			if err != nil {
				return err
			}
			if err := tx.Create(sessionModel).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetProgramById(ctx, programModel.Id)
}

func (r *ProgramRepositoryImpl) ArchiveCurrentPrograms(ctx context.Context, userId uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&model.Program{}).
		Where("user_id = ? AND status = ?", userId, entity.ProgramStatusActive).
		Updates(map[string]interface{}{
			"status":   entity.ProgramStatusArchived,
			"end_date": now,
		}).Error
}
