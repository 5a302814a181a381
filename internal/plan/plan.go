// Package plan assembles the user's current week: the split days of the
// current phase and week, each resolved into its prescribed exercises.
package plan

import (
	"github.com/2beens/gymsplit/internal/schedule"

	"github.com/google/uuid"
)

type Workout struct {
	ID          uuid.UUID               `json:"id"`
	DayNumber   int                     `json:"dayNumber"`
	WorkoutName string                  `json:"workoutName"`
	Exercises   []schedule.Prescription `json:"exercises"`
}

type Plan struct {
	CurrentPhase int                `json:"currentPhase"`
	CurrentWeek  int                `json:"currentWeek"`
	SplitType    schedule.SplitType `json:"splitType"`
	Workouts     []Workout          `json:"workouts"`
}
