// Package schedule generates the per-user split calendar and resolves workout
// days into their prescribed exercises.
package schedule

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const (
	// WeeksPerPhase is the length of one training phase.
	WeeksPerPhase = 8
	FirstPhase    = 1
)

const (
	WorkoutPush  = "Push"
	WorkoutPull  = "Pull"
	WorkoutUpper = "Upper"
	WorkoutLegs  = "Legs"
	WorkoutLegsA = "Legs A"
	WorkoutLegsB = "Legs B"
)

var ErrInvalidSplitType = errors.New("split type must be 3, 4, or 5")

// SplitType is the number of distinct workout days per week.
type SplitType int

var rotations = map[SplitType][]string{
	3: {WorkoutPush, WorkoutPull, WorkoutLegs},
	4: {WorkoutPush, WorkoutPull, WorkoutUpper, WorkoutLegs},
	5: {WorkoutPush, WorkoutPull, WorkoutLegsA, WorkoutUpper, WorkoutLegsB},
}

func (s SplitType) IsValid() bool {
	_, ok := rotations[s]
	return ok
}

// Rotation returns the ordered workout names of one week, indexed by dayNumber-1.
func (s SplitType) Rotation() ([]string, error) {
	rotation, ok := rotations[s]
	if !ok {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSplitType, s)
	}
	return append([]string(nil), rotation...), nil
}

// SplitDay is one row of a user's calendar.
type SplitDay struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Phase       int       `json:"phase"`
	Week        int       `json:"week"`
	DayNumber   int       `json:"dayNumber"`
	WorkoutName string    `json:"workoutName"`
}

// GeneratePhase1 emits the full rotation for every week of phase 1, ordered
// by week and then by dayNumber. Rows carry no ids; the store assigns them.
func GeneratePhase1(splitType SplitType) ([]SplitDay, error) {
	rotation, err := splitType.Rotation()
	if err != nil {
		return nil, err
	}

	days := make([]SplitDay, 0, WeeksPerPhase*len(rotation))
	for week := 1; week <= WeeksPerPhase; week++ {
		for i, workoutName := range rotation {
			days = append(days, SplitDay{
				Phase:       FirstPhase,
				Week:        week,
				DayNumber:   i + 1,
				WorkoutName: workoutName,
			})
		}
	}

	return days, nil
}
