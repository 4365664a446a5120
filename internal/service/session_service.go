package service

import (
	"context"
	"time"

	"fit-buddy-be/internal/dto"
	"fit-buddy-be/internal/entity"
	"fit-buddy-be/internal/repository/unitofwork"
	"fit-buddy-be/pkg/sensor"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// XP economy: a flat completion bonus plus a per-minute rate.
	xpPerMinute       = 10
	xpCompletionBonus = 50

	statsHistoryLimit = 30
)

type ISessionService interface {
	Start(ctx context.Context, userId uuid.UUID, req *dto.StartSessionRequest) (*dto.StartSessionResponse, error)
	LogSet(ctx context.Context, userId uuid.UUID, req *dto.LogSetRequest) (*dto.LogSetResponse, error)
	Stop(ctx context.Context, userId uuid.UUID, req *dto.StopSessionRequest) (*dto.StopSessionResponse, error)
	History(ctx context.Context, userId uuid.UUID, historyId uuid.UUID) (*dto.SessionHistoryResponse, error)
	Stats(ctx context.Context, userId uuid.UUID, exerciseId uuid.UUID) (*dto.ExerciseStatsResponse, error)
}

type sessionService struct {
	uowFactory unitofwork.RepositoryFactory
	sensors    sensor.SnapshotProvider
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	sensors sensor.SnapshotProvider,
) ISessionService {
	return &sessionService{
		uowFactory: uowFactory,
		sensors:    sensors,
	}
}

func (s *sessionService) Start(ctx context.Context, userId uuid.UUID, req *dto.StartSessionRequest) (*dto.StartSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	history, err := uow.SessionRepository().CreateHistory(ctx, userId, req.SessionId)
	if err != nil {
		return nil, err
	}

	return &dto.StartSessionResponse{
		HistoryId: history.Id,
		StartedAt: history.StartedAt,
	}, nil
}

func (s *sessionService) LogSet(ctx context.Context, userId uuid.UUID, req *dto.LogSetRequest) (*dto.LogSetResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	history, err := s.ownedHistory(ctx, uow, userId, req.HistoryId)
	if err != nil {
		return nil, err
	}
	if history.FinishedAt != nil {
		return nil, fiber.NewError(fiber.StatusConflict, "session is already finished")
	}

	exercise, err := uow.DictionaryRepository().GetExerciseById(ctx, req.ExerciseId)
	if err != nil {
		return nil, err
	}
	if exercise == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "exercise not found")
	}

	now := time.Now()
	start := now
	if req.DurationSeconds > 0 {
		start = now.Add(-time.Duration(req.DurationSeconds) * time.Second)
	}

	// the snapshot is scoped to the scanned machine and the set's time
	// window; without a machine id there is nothing to sync against
	snapshot := map[string]interface{}{}
	if req.MachineId != nil && *req.MachineId != "" {
		// best effort, an empty map means the sensor feed was down
		snapshot = s.sensors.Snapshot(ctx, *req.MachineId, start, now)
	}

	set := entity.SetHistory{
		Id:               uuid.New(),
		SessionHistoryId: history.Id,
		ExerciseId:       exercise.Id,
		MachineId:        req.MachineId,
		StartTime:        start,
		EndTime:          now,
		WeightKg:         req.WeightKg,
		RepsCount:        req.Reps,
		Rpe:              req.Rpe,
		SensorSnapshot:   snapshot,
	}

	if err := uow.SessionRepository().AddSet(ctx, &set); err != nil {
		return nil, err
	}

	return &dto.LogSetResponse{
		Id:             set.Id,
		SensorSnapshot: snapshot,
	}, nil
}

func (s *sessionService) Stop(ctx context.Context, userId uuid.UUID, req *dto.StopSessionRequest) (*dto.StopSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	history, err := s.ownedHistory(ctx, uow, userId, req.HistoryId)
	if err != nil {
		return nil, err
	}
	if history.FinishedAt != nil {
		return nil, fiber.NewError(fiber.StatusConflict, "session is already finished")
	}

	finishedAt := time.Now()
	durationMinutes := int(finishedAt.Sub(history.StartedAt).Minutes())
	if durationMinutes < 0 {
		durationMinutes = 0
	}
	totalXp := durationMinutes*xpPerMinute + xpCompletionBonus

	var notes *string
	if req.Notes != "" {
		notes = &req.Notes
	}

	finished, err := uow.SessionRepository().FinishSession(ctx, history.Id, notes, totalXp, finishedAt)
	if err != nil {
		return nil, err
	}

	return &dto.StopSessionResponse{
		HistoryId:       finished.Id,
		TotalXp:         finished.TotalXp,
		DurationMinutes: durationMinutes,
		FinishedAt:      finishedAt,
	}, nil
}

func (s *sessionService) History(ctx context.Context, userId uuid.UUID, historyId uuid.UUID) (*dto.SessionHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	history, err := uow.SessionRepository().GetFullSession(ctx, historyId)
	if err != nil {
		return nil, err
	}
	if history == nil || history.UserId != userId {
		return nil, fiber.NewError(fiber.StatusNotFound, "session history not found")
	}

	sets := make([]dto.SetHistoryResponse, 0, len(history.Sets))
	for _, set := range history.Sets {
		sets = append(sets, dto.SetHistoryResponse{
			Id:             set.Id,
			ExerciseId:     set.ExerciseId,
			MachineId:      set.MachineId,
			WeightKg:       set.WeightKg,
			Reps:           set.RepsCount,
			Rpe:            set.Rpe,
			StartTime:      set.StartTime,
			EndTime:        set.EndTime,
			SensorSnapshot: set.SensorSnapshot,
		})
	}

	return &dto.SessionHistoryResponse{
		Id:         history.Id,
		SessionId:  history.SessionId,
		StartedAt:  history.StartedAt,
		FinishedAt: history.FinishedAt,
		TotalXp:    history.TotalXp,
		Notes:      history.FeedbackNotes,
		Sets:       sets,
	}, nil
}

func (s *sessionService) Stats(ctx context.Context, userId uuid.UUID, exerciseId uuid.UUID) (*dto.ExerciseStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	best, err := uow.SessionRepository().GetRecentBestSet(ctx, userId, exerciseId)
	if err != nil {
		return nil, err
	}

	points, err := uow.SessionRepository().GetExerciseHistory(ctx, userId, exerciseId, statsHistoryLimit)
	if err != nil {
		return nil, err
	}

	res := dto.ExerciseStatsResponse{
		ExerciseId: exerciseId,
		History:    make([]dto.ExerciseStatPoint, 0, len(points)),
	}
	if best != nil {
		res.BestSet = &dto.BestSetResponse{
			WeightKg: best.WeightKg,
			Reps:     best.Reps,
			Rpe:      best.Rpe,
			Date:     best.Date,
		}
	}
	for _, p := range points {
		res.History = append(res.History, dto.ExerciseStatPoint{
			Date:         p.Date,
			WeightKg:     p.WeightKg,
			Reps:         p.Reps,
			OneRepMaxEst: p.OneRepMaxEst,
		})
	}

	return &res, nil
}

func (s *sessionService) ownedHistory(ctx context.Context, uow unitofwork.UnitOfWork, userId, historyId uuid.UUID) (*entity.SessionHistory, error) {
	history, err := uow.SessionRepository().GetHistory(ctx, historyId)
	if err != nil {
		return nil, err
	}
	if history == nil || history.UserId != userId {
		return nil, fiber.NewError(fiber.StatusNotFound, "session history not found")
	}
	return history, nil
}
