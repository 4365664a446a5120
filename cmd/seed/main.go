package main

import (
	"log"
	"os"

	"fit-buddy-be/internal/model"
	"fit-buddy-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

func strPtr(s string) *string { return &s }

type seedExercise struct {
	name        string
	muscleGroup string
	machineType *string
	description string
}

var seedMachines = []model.Machine{
	{Name: "Bench Press Station 1", MachineTypeId: "BENCH_PRESS", IsActive: true, Zone: strPtr("free-weights")},
	{Name: "Bench Press Station 2", MachineTypeId: "BENCH_PRESS", IsActive: true, Zone: strPtr("free-weights")},
	{Name: "Squat Rack 1", MachineTypeId: "SQUAT_RACK", IsActive: true, Zone: strPtr("free-weights")},
	{Name: "Squat Rack 2", MachineTypeId: "SQUAT_RACK", IsActive: true, Zone: strPtr("free-weights")},
	{Name: "Leg Press", MachineTypeId: "LEG_PRESS", IsActive: true, Zone: strPtr("machines")},
	{Name: "Lat Pulldown", MachineTypeId: "LAT_PULLDOWN", IsActive: true, Zone: strPtr("machines")},
	{Name: "Cable Row", MachineTypeId: "CABLE_ROW", IsActive: true, Zone: strPtr("machines")},
	{Name: "Leg Curl", MachineTypeId: "LEG_CURL", IsActive: true, Zone: strPtr("machines")},
	{Name: "Cable Station", MachineTypeId: "CABLE_STATION", IsActive: true, Zone: strPtr("machines")},
	{Name: "Treadmill 1", MachineTypeId: "TREADMILL", IsActive: true, Zone: strPtr("cardio")},
	{Name: "Treadmill 2", MachineTypeId: "TREADMILL", IsActive: true, Zone: strPtr("cardio")},
	{Name: "Rowing Machine", MachineTypeId: "ROWER", IsActive: true, Zone: strPtr("cardio")},
	{Name: "Stationary Bike", MachineTypeId: "BIKE", IsActive: true, Zone: strPtr("cardio")},
}

var seedExercises = []seedExercise{
	{"Bench Press", "chest", strPtr("BENCH_PRESS"), "Barbell press on a flat bench, the main horizontal push."},
	{"Incline Dumbbell Press", "chest", strPtr("BENCH_PRESS"), "Dumbbell press on an incline bench, upper chest emphasis."},
	{"Push Up", "chest", nil, "Bodyweight horizontal push, scalable anywhere."},
	{"Barbell Squat", "quadriceps", strPtr("SQUAT_RACK"), "Back squat with a barbell, the core lower body lift."},
	{"Goblet Squat", "quadriceps", nil, "Squat holding a dumbbell at the chest, beginner friendly."},
	{"Leg Press", "quadriceps", strPtr("LEG_PRESS"), "Machine press, quad dominant with low technique demand."},
	{"Dumbbell Lunge", "quadriceps", nil, "Walking or stationary lunge holding dumbbells."},
	{"Romanian Deadlift", "hamstrings", strPtr("SQUAT_RACK"), "Hip hinge with a barbell, hamstring and glute focus."},
	{"Leg Curl", "hamstrings", strPtr("LEG_CURL"), "Machine curl isolating the hamstrings."},
	{"Lat Pulldown", "back", strPtr("LAT_PULLDOWN"), "Vertical pull on the cable stack, lat focus."},
	{"Seated Cable Row", "back", strPtr("CABLE_ROW"), "Horizontal cable pull for mid back thickness."},
	{"Barbell Row", "back", strPtr("SQUAT_RACK"), "Bent over barbell pull, heavy horizontal row."},
	{"Dumbbell Row", "back", nil, "One arm row braced on a bench."},
	{"Overhead Press", "shoulders", strPtr("SQUAT_RACK"), "Standing barbell press, the main vertical push."},
	{"Lateral Raise", "shoulders", nil, "Dumbbell raise isolating the side delts."},
	{"Bicep Curl", "arms", nil, "Dumbbell or barbell curl for the biceps."},
	{"Tricep Pushdown", "arms", strPtr("CABLE_STATION"), "Cable extension isolating the triceps."},
	{"Plank", "core", nil, "Isometric hold for trunk stability."},
	{"Standing Calf Raise", "calves", nil, "Raise on a step or machine for the calves."},
	{"Treadmill", "cardio", strPtr("TREADMILL"), "Walking or running for conditioning."},
	{"Rowing Machine", "cardio", strPtr("ROWER"), "Full body cardio on the erg."},
	{"Stationary Bike", "cardio", strPtr("BIKE"), "Low impact cycling for conditioning."},
}

// Curated alternatives by exercise name, resolved to ids after insert.
var seedAlternatives = map[string][]string{
	"Bench Press":       {"Incline Dumbbell Press", "Push Up"},
	"Barbell Squat":     {"Leg Press", "Goblet Squat"},
	"Leg Press":         {"Barbell Squat", "Dumbbell Lunge"},
	"Lat Pulldown":      {"Barbell Row", "Dumbbell Row"},
	"Seated Cable Row":  {"Barbell Row", "Dumbbell Row"},
	"Romanian Deadlift": {"Leg Curl"},
	"Overhead Press":    {"Lateral Raise"},
	"Treadmill":         {"Stationary Bike", "Rowing Machine"},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding machines...")
	for i := range seedMachines {
		err := db.Clauses(clause.OnConflict{DoNothing: true}).
			Where(model.Machine{Name: seedMachines[i].Name}).
			FirstOrCreate(&seedMachines[i]).Error
		if err != nil {
			log.Fatalf("Error: Failed to seed machine %q: %v", seedMachines[i].Name, err)
		}
	}

	log.Println("Seeding exercises...")
	inserted := make(map[string]*model.Exercise)
	for _, e := range seedExercises {
		row := model.Exercise{
			Name:          e.name,
			MuscleGroup:   e.muscleGroup,
			MachineTypeId: e.machineType,
			Description:   strPtr(e.description),
		}
		err := db.Where(model.Exercise{Name: e.name}).FirstOrCreate(&row).Error
		if err != nil {
			log.Fatalf("Error: Failed to seed exercise %q: %v", e.name, err)
		}
		rowCopy := row
		inserted[e.name] = &rowCopy
	}

	log.Println("Linking curated alternatives...")
	for name, altNames := range seedAlternatives {
		exercise, ok := inserted[name]
		if !ok {
			continue
		}
		var altIds []string
		for _, altName := range altNames {
			if alt, ok := inserted[altName]; ok {
				altIds = append(altIds, alt.Id.String())
			}
		}
		err := db.Model(&model.Exercise{}).
			Where("id = ?", exercise.Id).
			Update("alternatives", datatypes.NewJSONSlice(altIds)).Error
		if err != nil {
			log.Fatalf("Error: Failed to link alternatives for %q: %v", name, err)
		}
	}

	var machineCount, exerciseCount int64
	db.Model(&model.Machine{}).Count(&machineCount)
	db.Model(&model.Exercise{}).Count(&exerciseCount)
	log.Printf("Seed complete: %d machines, %d exercises", machineCount, exerciseCount)
}
