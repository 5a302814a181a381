package schedule

import (
	"fmt"

	"github.com/2beens/gymsplit/internal/exercises"

	"github.com/google/uuid"
)

type Prescription struct {
	ExerciseID   uuid.UUID `json:"exerciseId"`
	ExerciseName string    `json:"exerciseName"`
	Sets         int       `json:"sets"`
	RepRangeMin  int       `json:"repRangeMin"`
	RepRangeMax  int       `json:"repRangeMax"`
	IsWarmup     bool      `json:"isWarmup"`
	// OriginalExerciseID is set when a user customization replaced the templated exercise.
	OriginalExerciseID *uuid.UUID `json:"originalExerciseId,omitempty"`
}

// Overrides maps an original exercise id to the exercise replacing it.
type Overrides map[uuid.UUID]exercises.Exercise

// Templates is the single workout-name to prescriptions table shared by plan
// assembly and session start. It is immutable after construction.
type Templates struct {
	byWorkout map[string][]Prescription
}

type TemplateEntry struct {
	ExerciseName string
	Sets         int
	RepRangeMin  int
	RepRangeMax  int
	IsWarmup     bool
}

// NewTemplates builds templates from entries referencing catalog exercises by name.
func NewTemplates(catalog []exercises.Exercise, entries map[string][]TemplateEntry) (*Templates, error) {
	byName := make(map[string]exercises.Exercise, len(catalog))
	for _, e := range catalog {
		byName[e.Name] = e
	}

	byWorkout := make(map[string][]Prescription, len(entries))
	for workoutName, workoutEntries := range entries {
		prescriptions := make([]Prescription, 0, len(workoutEntries))
		for _, entry := range workoutEntries {
			e, ok := byName[entry.ExerciseName]
			if !ok {
				return nil, fmt.Errorf("workout [%s]: exercise [%s] not in catalog", workoutName, entry.ExerciseName)
			}
			if entry.Sets <= 0 || entry.RepRangeMin <= 0 || entry.RepRangeMin > entry.RepRangeMax {
				return nil, fmt.Errorf("workout [%s]: invalid prescription for [%s]", workoutName, entry.ExerciseName)
			}
			prescriptions = append(prescriptions, Prescription{
				ExerciseID:   e.ID,
				ExerciseName: e.Name,
				Sets:         entry.Sets,
				RepRangeMin:  entry.RepRangeMin,
				RepRangeMax:  entry.RepRangeMax,
				IsWarmup:     entry.IsWarmup,
			})
		}
		byWorkout[workoutName] = prescriptions
	}

	return &Templates{byWorkout: byWorkout}, nil
}

// DefaultTemplates returns the built-in templates for the six workout days.
func DefaultTemplates() *Templates {
	templates, err := NewTemplates(exercises.Catalog(), defaultTemplateEntries)
	if err != nil {
		// the default entries are static and covered by tests
		panic(err)
	}
	return templates
}

// Resolve returns the prescriptions for a workout day. Unknown names yield an empty list.
func (t *Templates) Resolve(workoutName string) []Prescription {
	prescriptions := t.byWorkout[workoutName]
	resolved := make([]Prescription, len(prescriptions))
	copy(resolved, prescriptions)
	return resolved
}

// ResolveFor resolves a workout day and applies the user's exercise replacements.
func (t *Templates) ResolveFor(workoutName string, overrides Overrides) []Prescription {
	resolved := t.Resolve(workoutName)
	for i, p := range resolved {
		replacement, ok := overrides[p.ExerciseID]
		if !ok {
			continue
		}
		originalID := p.ExerciseID
		resolved[i].ExerciseID = replacement.ID
		resolved[i].ExerciseName = replacement.Name
		resolved[i].OriginalExerciseID = &originalID
	}
	return resolved
}

// WorkoutNames lists the workout days with a template.
func (t *Templates) WorkoutNames() []string {
	names := make([]string, 0, len(t.byWorkout))
	for name := range t.byWorkout {
		names = append(names, name)
	}
	return names
}

var defaultTemplateEntries = map[string][]TemplateEntry{
	WorkoutPush: {
		{ExerciseName: "Barbell Bench Press", Sets: 4, RepRangeMin: 6, RepRangeMax: 8},
		{ExerciseName: "Incline Barbell Bench Press", Sets: 3, RepRangeMin: 8, RepRangeMax: 10},
		{ExerciseName: "Dumbbell Bench Press", Sets: 3, RepRangeMin: 10, RepRangeMax: 12},
	},
	WorkoutPull: {
		{ExerciseName: "Barbell Bent Over Row", Sets: 4, RepRangeMin: 6, RepRangeMax: 8},
		{ExerciseName: "Lat Pulldown", Sets: 3, RepRangeMin: 8, RepRangeMax: 10},
		{ExerciseName: "Dumbbell Row", Sets: 3, RepRangeMin: 10, RepRangeMax: 12},
	},
	WorkoutUpper: {
		{ExerciseName: "Barbell Bench Press", Sets: 4, RepRangeMin: 6, RepRangeMax: 8},
		{ExerciseName: "Barbell Bent Over Row", Sets: 3, RepRangeMin: 8, RepRangeMax: 10},
		{ExerciseName: "Lat Pulldown", Sets: 3, RepRangeMin: 10, RepRangeMax: 12},
	},
	WorkoutLegs: {
		{ExerciseName: "Barbell Back Squat", Sets: 4, RepRangeMin: 6, RepRangeMax: 8},
		{ExerciseName: "Barbell Leg Press", Sets: 3, RepRangeMin: 8, RepRangeMax: 10},
		{ExerciseName: "Leg Curl", Sets: 3, RepRangeMin: 12, RepRangeMax: 15},
	},
	WorkoutLegsA: {
		{ExerciseName: "Barbell Back Squat", Sets: 4, RepRangeMin: 6, RepRangeMax: 8},
		{ExerciseName: "Barbell Leg Press", Sets: 3, RepRangeMin: 8, RepRangeMax: 10},
	},
	WorkoutLegsB: {
		{ExerciseName: "Barbell Romanian Deadlift", Sets: 4, RepRangeMin: 6, RepRangeMax: 8},
		{ExerciseName: "Leg Curl", Sets: 3, RepRangeMin: 12, RepRangeMax: 15},
	},
}
