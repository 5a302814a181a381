// Package workouts tracks workout sessions: a session is started on one split
// day, collects set records while in progress and is completed exactly once.
package workouts

import (
	"time"

	"github.com/2beens/gymsplit/internal/schedule"

	"github.com/google/uuid"
)

// Status can be one of:
//   - in_progress
//   - completed
//
// There is no transition from completed back to in_progress.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

type Session struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"userId"`
	UserWorkoutSplitID uuid.UUID  `json:"userWorkoutSplitId"`
	StartedAt          time.Time  `json:"startedAt"`
	CompletedAt        *time.Time `json:"completedAt"`
	Status             Status     `json:"status"`
	Notes              *string    `json:"notes"`

	// set when the session is started
	WorkoutName string                  `json:"workoutName,omitempty"`
	Exercises   []schedule.Prescription `json:"exercises,omitempty"`

	SetRecords []SetRecord `json:"setRecords"`
}

// SetRecord is append-only. Records of a session are returned in insertion order.
type SetRecord struct {
	ID            uuid.UUID `json:"id"`
	SessionID     uuid.UUID `json:"sessionId"`
	ExerciseID    uuid.UUID `json:"exerciseId"`
	SetNumber     int       `json:"setNumber"`
	RepsCompleted int       `json:"repsCompleted"`
	WeightUsed    float64   `json:"weightUsed"`
	RPE           *float64  `json:"rpe"`
	CreatedAt     time.Time `json:"createdAt"`
}
