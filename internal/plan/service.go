package plan

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=plan_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymsplit/internal/apperr"
	"github.com/2beens/gymsplit/internal/schedule"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"
	"github.com/2beens/gymsplit/internal/users"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type usersGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*users.User, error)
}

type splitDaysRepo interface {
	ListForWeek(ctx context.Context, userID uuid.UUID, phase, week int) ([]schedule.SplitDay, error)
}

type overridesProvider interface {
	Overrides(ctx context.Context, userID uuid.UUID) (schedule.Overrides, error)
}

type Service struct {
	users     usersGetter
	splitDays splitDaysRepo
	overrides overridesProvider
	templates *schedule.Templates
}

func NewService(
	usersRepo usersGetter,
	splitDays splitDaysRepo,
	overrides overridesProvider,
	templates *schedule.Templates,
) *Service {
	return &Service{
		users:     usersRepo,
		splitDays: splitDays,
		overrides: overrides,
		templates: templates,
	}
}

// Plan returns the workouts of the user's current phase and week, ordered by
// dayNumber, with the user's exercise replacements applied.
func (s *Service) Plan(ctx context.Context, userID uuid.UUID) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plan.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal(fmt.Errorf("get user: %w", err))
	}

	days, err := s.splitDays.ListForWeek(ctx, userID, user.CurrentPhase, user.CurrentWeek)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("list split days: %w", err))
	}

	overrides, err := s.overrides.Overrides(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("get overrides: %w", err))
	}

	workouts := make([]Workout, 0, len(days))
	for _, day := range days {
		workouts = append(workouts, Workout{
			ID:          day.ID,
			DayNumber:   day.DayNumber,
			WorkoutName: day.WorkoutName,
			Exercises:   s.templates.ResolveFor(day.WorkoutName, overrides),
		})
	}

	return &Plan{
		CurrentPhase: user.CurrentPhase,
		CurrentWeek:  user.CurrentWeek,
		SplitType:    user.SplitType,
		Workouts:     workouts,
	}, nil
}
