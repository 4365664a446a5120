package entity

import (
	"github.com/google/uuid"
)

// Machine is a physical piece of gym equipment with optional sensor pairing.
type Machine struct {
	Id            uuid.UUID
	Name          string
	MachineTypeId string // logical type, e.g. "DC_BENCH"
	SensorId      *uuid.UUID
	IsActive      bool
	Zone          *string
}

// Exercise is a catalog entry. Alternatives are curated swap candidates.
type Exercise struct {
	Id            uuid.UUID
	Name          string
	Description   *string
	MuscleGroup   string
	MachineTypeId *string
	Alternatives  []uuid.UUID
}
