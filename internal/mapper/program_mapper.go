package mapper

import (
	"encoding/json"

	"fit-buddy-be/internal/entity"
	"fit-buddy-be/internal/model"

	"gorm.io/datatypes"
)

type ProgramMapper struct{}

func NewProgramMapper() *ProgramMapper {
	return &ProgramMapper{}
}

func (m *ProgramMapper) ToEntity(p *model.Program) *entity.Program {
	if p == nil {
		return nil
	}

	sessions := make([]*entity.Session, len(p.Sessions))
	for i := range p.Sessions {
		sessions[i] = m.SessionToEntity(&p.Sessions[i])
	}

	return &entity.Program{
		Id:        p.Id,
		UserId:    p.UserId,
		Name:      p.Name,
		Goal:      p.Goal,
		Status:    p.Status,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Sessions:  sessions,
	}
}

func (m *ProgramMapper) ToModel(p *entity.Program) *model.Program {
	if p == nil {
		return nil
	}
	return &model.Program{
		Id:        p.Id,
		UserId:    p.UserId,
		Name:      p.Name,
		Goal:      p.Goal,
		Status:    p.Status,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
	}
}

func (m *ProgramMapper) SessionToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}

	// Tolerate malformed plan JSON: an unreadable plan becomes an empty slot list
	var plan []entity.ExercisePlanEntry
	if len(s.ExercisesPlan) > 0 {
		_ = json.Unmarshal(s.ExercisesPlan, &plan)
	}

	return &entity.Session{
		Id:            s.Id,
		ProgramId:     s.ProgramId,
		Name:          s.Name,
		OrderIndex:    s.OrderIndex,
		ExercisesPlan: plan,
	}
}

func (m *ProgramMapper) SessionToModel(s *entity.Session) (*model.Session, error) {
	if s == nil {
		return nil, nil
	}

	plan, err := json.Marshal(s.ExercisesPlan)
	if err != nil {
		return nil, err
	}

	return &model.Session{
		Id:            s.Id,
		ProgramId:     s.ProgramId,
		Name:          s.Name,
		OrderIndex:    s.OrderIndex,
		ExercisesPlan: datatypes.JSON(plan),
	}, nil
}
