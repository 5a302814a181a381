package users

import (
	"time"

	"github.com/2beens/gymsplit/internal/schedule"

	"github.com/google/uuid"
)

// User carries the progression pointer (CurrentPhase, CurrentWeek). Nothing in
// this service advances it; both start at 1 on signup.
type User struct {
	ID           uuid.UUID          `json:"id"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"-"`
	FirstName    string             `json:"firstName"`
	LastName     string             `json:"lastName"`
	SplitType    schedule.SplitType `json:"splitType"`
	CurrentPhase int                `json:"currentPhase"`
	CurrentWeek  int                `json:"currentWeek"`
	CreatedAt    time.Time          `json:"createdAt"`
}
