package customizations

import (
	"time"

	"github.com/2beens/gymsplit/internal/exercises"

	"github.com/google/uuid"
)

// Customization replaces OriginalExerciseID with ReplacementExerciseID wherever
// the owning user's workout templates prescribe it.
type Customization struct {
	ID                    uuid.UUID `json:"id"`
	UserID                uuid.UUID `json:"userId"`
	OriginalExerciseID    uuid.UUID `json:"originalExerciseId"`
	ReplacementExerciseID uuid.UUID `json:"replacementExerciseId"`
	CreatedAt             time.Time `json:"createdAt"`

	// ReplacementExercise is filled on list, from the catalog.
	ReplacementExercise *exercises.Exercise `json:"replacementExercise,omitempty"`
}
