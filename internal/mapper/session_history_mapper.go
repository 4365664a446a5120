package mapper

import (
	"fit-buddy-be/internal/entity"
	"fit-buddy-be/internal/model"

	"gorm.io/datatypes"
)

type SessionHistoryMapper struct{}

func NewSessionHistoryMapper() *SessionHistoryMapper {
	return &SessionHistoryMapper{}
}

func (m *SessionHistoryMapper) ToEntity(h *model.SessionHistory) *entity.SessionHistory {
	if h == nil {
		return nil
	}

	sets := make([]*entity.SetHistory, len(h.Sets))
	for i := range h.Sets {
		sets[i] = m.SetToEntity(&h.Sets[i])
	}

	return &entity.SessionHistory{
		Id:            h.Id,
		UserId:        h.UserId,
		SessionId:     h.SessionId,
		StartedAt:     h.StartedAt,
		FinishedAt:    h.FinishedAt,
		TotalXp:       h.TotalXp,
		FeedbackNotes: h.FeedbackNotes,
		Sets:          sets,
	}
}

func (m *SessionHistoryMapper) ToModel(h *entity.SessionHistory) *model.SessionHistory {
	if h == nil {
		return nil
	}
	return &model.SessionHistory{
		Id:            h.Id,
		UserId:        h.UserId,
		SessionId:     h.SessionId,
		StartedAt:     h.StartedAt,
		FinishedAt:    h.FinishedAt,
		TotalXp:       h.TotalXp,
		FeedbackNotes: h.FeedbackNotes,
	}
}

func (m *SessionHistoryMapper) SetToEntity(s *model.SetHistory) *entity.SetHistory {
	if s == nil {
		return nil
	}
	return &entity.SetHistory{
		Id:               s.Id,
		SessionHistoryId: s.SessionHistoryId,
		ExerciseId:       s.ExerciseId,
		MachineId:        s.MachineId,
		StartTime:        s.StartTime,
		EndTime:          s.EndTime,
		WeightKg:         s.WeightKg,
		RepsCount:        s.RepsCount,
		Rpe:              s.Rpe,
		SensorSnapshot:   map[string]interface{}(s.SensorSnapshot),
	}
}

func (m *SessionHistoryMapper) SetToModel(s *entity.SetHistory) *model.SetHistory {
	if s == nil {
		return nil
	}
	return &model.SetHistory{
		Id:               s.Id,
		SessionHistoryId: s.SessionHistoryId,
		ExerciseId:       s.ExerciseId,
		MachineId:        s.MachineId,
		StartTime:        s.StartTime,
		EndTime:          s.EndTime,
		WeightKg:         s.WeightKg,
		RepsCount:        s.RepsCount,
		Rpe:              s.Rpe,
		SensorSnapshot:   datatypes.JSONMap(s.SensorSnapshot),
	}
}
