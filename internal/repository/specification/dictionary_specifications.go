package specification

import "gorm.io/gorm"

// ByMuscleGroup filters exercises by muscle group
type ByMuscleGroup struct {
	MuscleGroup string
}

func (s ByMuscleGroup) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("muscle_group = ?", s.MuscleGroup)
}

// ByMachineType filters exercises by logical machine type
type ByMachineType struct {
	MachineTypeId string
}

func (s ByMachineType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("machine_type_id = ?", s.MachineTypeId)
}

// ByNameInsensitive matches a name exactly, ignoring case
type ByNameInsensitive struct {
	Name string
}

func (s ByNameInsensitive) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(name) = LOWER(?)", s.Name)
}
