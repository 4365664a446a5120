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

type SessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionHistoryMapper
}

func NewSessionRepository(db *gorm.DB) contract.SessionRepository {
	return &SessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionHistoryMapper(),
	}
}

func (r *SessionRepositoryImpl) CreateHistory(ctx context.Context, userId uuid.UUID, sessionId *uuid.UUID) (*entity.SessionHistory, error) {
	m := &model.SessionHistory{
		Id:        uuid.New(),
		UserId:    userId,
		SessionId: sessionId,
		StartedAt: time.Now().UTC(),
		TotalXp:   0,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *SessionRepositoryImpl) GetHistory(ctx context.Context, historyId uuid.UUID) (*entity.SessionHistory, error) {
	var m model.SessionHistory
	if err := r.db.WithContext(ctx).Where("id = ?", historyId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SessionRepositoryImpl) GetFullSession(ctx context.Context, historyId uuid.UUID) (*entity.SessionHistory, error) {
	var m model.SessionHistory
	err := r.db.WithContext(ctx).
		Where("id = ?", historyId).
		Preload("Sets", func(db *gorm.DB) *gorm.DB {
			return db.Order("end_time ASC")
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

func (r *SessionRepositoryImpl) AddSet(ctx context.Context, set *entity.SetHistory) error {
	if set.Id == uuid.Nil {
		set.Id = uuid.New()
	}
	m := r.mapper.SetToModel(set)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*set = *r.mapper.SetToEntity(m)
	return nil
}

func (r *SessionRepositoryImpl) FinishSession(ctx context.Context, historyId uuid.UUID, notes *string, totalXp int, finishedAt time.Time) (*entity.SessionHistory, error) {
	err := r.db.WithContext(ctx).
		Model(&model.SessionHistory{}).
		Where("id = ?", historyId).
		Updates(map[string]interface{}{
			"finished_at":    finishedAt,
			"feedback_notes": notes,
			"total_xp":       totalXp,
		}).Error
	if err != nil {
		return nil, err
	}
	return r.GetHistory(ctx, historyId)
}

func (r *SessionRepositoryImpl) GetRecentBestSet(ctx context.Context, userId, exerciseId uuid.UUID) (*contract.BestSet, error) {
	type row struct {
		WeightKg  float64
		RepsCount int
		Rpe       *int
		StartedAt time.Time
	}
	var res row

	// Join to sessions_history to filter by owner; max weight wins
	err := r.db.WithContext(ctx).
		Table("sets_history").
		Select("sets_history.weight_kg, sets_history.reps_count, sets_history.rpe, sessions_history.started_at").
		Joins("JOIN sessions_history ON sets_history.session_history_id = sessions_history.id").
		Where("sessions_history.user_id = ?", userId).
		Where("sets_history.exercise_id = ?", exerciseId).
		Order("sets_history.weight_kg DESC").
		Limit(1).
		Scan(&res).Error
	if err != nil {
		return nil, err
	}
	if res.StartedAt.IsZero() && res.WeightKg == 0 && res.RepsCount == 0 {
		return nil, nil
	}

	return &contract.BestSet{
		WeightKg: res.WeightKg,
		Reps:     res.RepsCount,
		Rpe:      res.Rpe,
		Date:     res.StartedAt,
	}, nil
}

func (r *SessionRepositoryImpl) GetExerciseHistory(ctx context.Context, userId, exerciseId uuid.UUID, limit int) ([]*contract.ExerciseStat, error) {
	if limit <= 0 {
		limit = 20
	}

	type row struct {
		WeightKg  float64
		RepsCount int
		StartedAt time.Time
	}
	var rows []row

	err := r.db.WithContext(ctx).
		Table("sets_history").
		Select("sets_history.weight_kg, sets_history.reps_count, sessions_history.started_at").
		Joins("JOIN sessions_history ON sets_history.session_history_id = sessions_history.id").
		Where("sessions_history.user_id = ?", userId).
		Where("sets_history.exercise_id = ?", exerciseId).
		Order("sessions_history.started_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := make([]*contract.ExerciseStat, len(rows))
	for i, rw := range rows {
		// Epley formula for estimated 1RM
		e1rm := rw.WeightKg * (1 + float64(rw.RepsCount)/30.0)
		stats[i] = &contract.ExerciseStat{
			Date:         rw.StartedAt,
			WeightKg:     rw.WeightKg,
			Reps:         rw.RepsCount,
			OneRepMaxEst: float64(int(e1rm*10+0.5)) / 10, // round to 1 decimal
		}
	}
	return stats, nil
}
