package templates

import (
	"fmt"
	"strings"

	"fit-buddy-be/internal/entity"
)

// TemplateSession is one pre-built workout inside a template program.
type TemplateSession struct {
	Title     string
	Exercises []entity.ExercisePlanEntry
}

// ProgramTemplate is a hand-curated program used when AI generation is
// unavailable. Exercise slots carry names only; ids get resolved against the
// catalog at apply time when possible.
type ProgramTemplate struct {
	Name        string
	Description string
	Sessions    []TemplateSession
}

const fallbackKey = "MUSCLE_GAIN_BEGINNER"

// ForProfile picks the template matching the goal and experience level,
// falling back to the beginner muscle gain template.
func ForProfile(goal, level string) ProgramTemplate {
	key := fmt.Sprintf("%s_%s",
		strings.ToUpper(strings.TrimSpace(goal)),
		strings.ToUpper(strings.TrimSpace(level)),
	)
	if t, ok := catalog[key]; ok {
		return t
	}
	return catalog[fallbackKey]
}

var catalog = map[string]ProgramTemplate{
	"MUSCLE_GAIN_BEGINNER": {
		Name:        "Foundation Builder",
		Description: "A three-day full body program building strength and muscle with the fundamental compound lifts.",
		Sessions: []TemplateSession{
			{
				Title: "Full Body A",
				Exercises: []entity.ExercisePlanEntry{
					{ExerciseName: "Barbell Squat", TargetSets: 3, TargetReps: "8-10", RestSeconds: 120},
					{ExerciseName: "Bench Press", TargetSets: 3, TargetReps: "8-10", RestSeconds: 120},
					{ExerciseName: "Seated Cable Row", TargetSets: 3, TargetReps: "10-12", RestSeconds: 90},
					{ExerciseName: "Plank", TargetSets: 3, TargetReps: "30-60s", RestSeconds: 60},
				},
			},
			{
				Title: "Full Body B",
				Exercises: []entity.ExercisePlanEntry{
					{ExerciseName: "Romanian Deadlift", TargetSets: 3, TargetReps: "8-10", RestSeconds: 120},
					{ExerciseName: "Overhead Press", TargetSets: 3, TargetReps: "8-10", RestSeconds: 120},
					{ExerciseName: "Lat Pulldown", TargetSets: 3, TargetReps: "10-12", RestSeconds: 90},
					{ExerciseName: "Dumbbell Lunge", TargetSets: 3, TargetReps: "10-12", RestSeconds: 90},
				},
			},
			{
				Title: "Full Body C",
				Exercises: []entity.ExercisePlanEntry{
					{ExerciseName: "Leg Press", TargetSets: 3, TargetReps: "10-12", RestSeconds: 120},
					{ExerciseName: "Incline Dumbbell Press", TargetSets: 3, TargetReps: "10-12", RestSeconds: 90},
					{ExerciseName: "Dumbbell Row", TargetSets: 3, TargetReps: "10-12", RestSeconds: 90},
					{ExerciseName: "Bicep Curl", TargetSets: 2, TargetReps: "12-15", RestSeconds: 60},
				},
			},
		},
	},
	"MUSCLE_GAIN_INTERMEDIATE": {
		Name:        "Upper Lower Split",
		Description: "A four-day upper/lower split for lifters past the beginner stage, mixing heavy and volume days.",
		Sessions: []TemplateSession{
			{
				Title: "Upper Heavy",
				Exercises: []entity.ExercisePlanEntry{
					{ExerciseName: "Bench Press", TargetSets: 4, TargetReps: "5-6", RestSeconds: 180},
					{ExerciseName: "Barbell Row", TargetSets: 4, TargetReps: "5-6", RestSeconds: 180},
					{ExerciseName: "Overhead Press", TargetSets: 3, TargetReps: "6-8", RestSeconds: 120},
					{ExerciseName: "Lat Pulldown", TargetSets: 3, TargetReps: "8-10", RestSeconds: 90},
				},
			},
			{
				Title: "Lower Heavy",
				Exercises: []entity.ExercisePlanEntry{
					{ExerciseName: "Barbell Squat", TargetSets: 4, TargetReps: "5-6", RestSeconds: 180},
					{ExerciseName: "Romanian Deadlift", TargetSets: 3, TargetReps: "6-8", RestSeconds: 150},
					{ExerciseName: "Leg Press", TargetSets: 3, TargetReps: "8-10", RestSeconds: 120},
					{ExerciseName: "Standing Calf Raise", TargetSets: 4, TargetReps: "10-12", RestSeconds: 60},
				},
			},
			{
				Title: "Upper Volume",
				Exercises: []entity.ExercisePlanEntry{
					{ExerciseName: "Incline Dumbbell Press", TargetSets: 4, TargetReps: "10-12", RestSeconds: 90},
					{ExerciseName: "Seated Cable Row", TargetSets: 4, TargetReps: "10-12", RestSeconds: 90},
					{ExerciseName: "Lateral Raise", TargetSets: 3, TargetReps: "12-15", RestSeconds: 60},
					{ExerciseName: "Bicep Curl", TargetSets: 3, TargetReps: "12-15", RestSeconds: 60},
					{ExerciseName: "Tricep Pushdown", TargetSets: 3, TargetReps: "12-15", RestSeconds: 60},
				},
			},
			{
				Title: "Lower Volume",
				Exercises: []entity.ExercisePlanEntry{
					{ExerciseName: "Leg Press", TargetSets: 4, TargetReps: "10-12", RestSeconds: 120},
					{ExerciseName: "Dumbbell Lunge", TargetSets: 3, TargetReps: "10-12", RestSeconds: 90},
					{ExerciseName: "Leg Curl", TargetSets: 3, TargetReps: "12-15", RestSeconds: 60},
					{ExerciseName: "Plank", TargetSets: 3, TargetReps: "45-60s", RestSeconds: 60},
				},
			},
		},
	},
	"FAT_LOSS_BEGINNER": {
		Name:        "Lean Start Circuit",
		Description: "A three-day full body circuit with short rests to keep the heart rate up while preserving muscle.",
		Sessions: []TemplateSession{
			{
				Title: "Circuit A",
				Exercises: []entity.ExercisePlanEntry{
					{ExerciseName: "Goblet Squat", TargetSets: 3, TargetReps: "12-15", RestSeconds: 45},
					{ExerciseName: "Push Up", TargetSets: 3, TargetReps: "10-15", RestSeconds: 45},
					{ExerciseName: "Seated Cable Row", TargetSets: 3, TargetReps: "12-15", RestSeconds: 45},
					{ExerciseName: "Treadmill", TargetSets: 1, TargetReps: "15min", RestSeconds: 0, Notes: "Steady pace finisher"},
				},
			},
			{
				Title: "Circuit B",
				Exercises: []entity.ExercisePlanEntry{
					{ExerciseName: "Dumbbell Lunge", TargetSets: 3, TargetReps: "12-15", RestSeconds: 45},
					{ExerciseName: "Lat Pulldown", TargetSets: 3, TargetReps: "12-15", RestSeconds: 45},
					{ExerciseName: "Overhead Press", TargetSets: 3, TargetReps: "10-12", RestSeconds: 45},
					{ExerciseName: "Rowing Machine", TargetSets: 1, TargetReps: "10min", RestSeconds: 0, Notes: "Intervals, 1min hard / 1min easy"},
				},
			},
			{
				Title: "Circuit C",
				Exercises: []entity.ExercisePlanEntry{
					{ExerciseName: "Leg Press", TargetSets: 3, TargetReps: "12-15", RestSeconds: 45},
					{ExerciseName: "Incline Dumbbell Press", TargetSets: 3, TargetReps: "12-15", RestSeconds: 45},
					{ExerciseName: "Plank", TargetSets: 3, TargetReps: "30-45s", RestSeconds: 45},
					{ExerciseName: "Stationary Bike", TargetSets: 1, TargetReps: "15min", RestSeconds: 0},
				},
			},
		},
	},
	"GENERAL_FITNESS_BEGINNER": {
		Name:        "Everyday Athlete",
		Description: "A balanced two-day program covering strength, mobility and light conditioning.",
		Sessions: []TemplateSession{
			{
				Title: "Strength Day",
				Exercises: []entity.ExercisePlanEntry{
					{ExerciseName: "Goblet Squat", TargetSets: 3, TargetReps: "10-12", RestSeconds: 90},
					{ExerciseName: "Push Up", TargetSets: 3, TargetReps: "8-12", RestSeconds: 90},
					{ExerciseName: "Dumbbell Row", TargetSets: 3, TargetReps: "10-12", RestSeconds: 90},
					{ExerciseName: "Plank", TargetSets: 3, TargetReps: "30s", RestSeconds: 60},
				},
			},
			{
				Title: "Conditioning Day",
				Exercises: []entity.ExercisePlanEntry{
					{ExerciseName: "Treadmill", TargetSets: 1, TargetReps: "20min", RestSeconds: 0, Notes: "Brisk incline walk"},
					{ExerciseName: "Dumbbell Lunge", TargetSets: 3, TargetReps: "10-12", RestSeconds: 60},
					{ExerciseName: "Lat Pulldown", TargetSets: 3, TargetReps: "10-12", RestSeconds: 60},
					{ExerciseName: "Rowing Machine", TargetSets: 1, TargetReps: "10min", RestSeconds: 0},
				},
			},
		},
	},
}
