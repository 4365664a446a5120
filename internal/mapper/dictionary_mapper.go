package mapper

import (
	"fit-buddy-be/internal/entity"
	"fit-buddy-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DictionaryMapper struct{}

func NewDictionaryMapper() *DictionaryMapper {
	return &DictionaryMapper{}
}

func (m *DictionaryMapper) MachineToEntity(e *model.Machine) *entity.Machine {
	if e == nil {
		return nil
	}
	return &entity.Machine{
		Id:            e.Id,
		Name:          e.Name,
		MachineTypeId: e.MachineTypeId,
		SensorId:      e.SensorId,
		IsActive:      e.IsActive,
		Zone:          e.Zone,
	}
}

func (m *DictionaryMapper) MachinesToEntities(machines []*model.Machine) []*entity.Machine {
	entities := make([]*entity.Machine, len(machines))
	for i, mm := range machines {
		entities[i] = m.MachineToEntity(mm)
	}
	return entities
}

func (m *DictionaryMapper) ExerciseToEntity(e *model.Exercise) *entity.Exercise {
	if e == nil {
		return nil
	}

	// Alternatives are stored as JSONB strings; skip anything unparsable
	alternatives := make([]uuid.UUID, 0, len(e.Alternatives))
	for _, raw := range e.Alternatives {
		if id, err := uuid.Parse(raw); err == nil {
			alternatives = append(alternatives, id)
		}
	}

	return &entity.Exercise{
		Id:            e.Id,
		Name:          e.Name,
		Description:   e.Description,
		MuscleGroup:   e.MuscleGroup,
		MachineTypeId: e.MachineTypeId,
		Alternatives:  alternatives,
	}
}

func (m *DictionaryMapper) ExercisesToEntities(exercises []*model.Exercise) []*entity.Exercise {
	entities := make([]*entity.Exercise, len(exercises))
	for i, e := range exercises {
		entities[i] = m.ExerciseToEntity(e)
	}
	return entities
}

func (m *DictionaryMapper) ExerciseToModel(e *entity.Exercise) *model.Exercise {
	if e == nil {
		return nil
	}

	alternatives := make([]string, len(e.Alternatives))
	for i, id := range e.Alternatives {
		alternatives[i] = id.String()
	}

	return &model.Exercise{
		Id:            e.Id,
		Name:          e.Name,
		Description:   e.Description,
		MuscleGroup:   e.MuscleGroup,
		MachineTypeId: e.MachineTypeId,
		Alternatives:  datatypes.NewJSONSlice(alternatives),
	}
}
