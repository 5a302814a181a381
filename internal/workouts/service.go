package workouts

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/2beens/gymsplit/internal/apperr"
	"github.com/2beens/gymsplit/internal/schedule"
	"github.com/2beens/gymsplit/internal/telemetry/metrics"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const maxRPE = 10

type sessionsRepo interface {
	CreateSession(ctx context.Context, session Session) (*Session, error)
	GetSession(ctx context.Context, id, userID uuid.UUID) (*Session, error)
	ListSetRecords(ctx context.Context, sessionID uuid.UUID) ([]SetRecord, error)
	AddSetRecord(ctx context.Context, userID uuid.UUID, rec SetRecord) (*SetRecord, error)
	CompleteSession(ctx context.Context, id, userID uuid.UUID, notes *string, completedAt time.Time) (*Session, bool, error)
}

type splitDaysGetter interface {
	Get(ctx context.Context, id, userID uuid.UUID) (*schedule.SplitDay, error)
}

type overridesProvider interface {
	Overrides(ctx context.Context, userID uuid.UUID) (schedule.Overrides, error)
}

type StartParams struct {
	UserWorkoutSplitID string `json:"userWorkoutSplitId"`
}

// RecordSetParams uses pointers so that absent fields can be told apart from zero values.
type RecordSetParams struct {
	ExerciseID    *string  `json:"exerciseId"`
	SetNumber     *int     `json:"setNumber"`
	RepsCompleted *int     `json:"repsCompleted"`
	WeightUsed    *float64 `json:"weightUsed"`
	RPE           *float64 `json:"rpe"`
}

type CompleteParams struct {
	Notes *string `json:"notes"`
}

type Service struct {
	repo           sessionsRepo
	splitDays      splitDaysGetter
	overrides      overridesProvider
	templates      *schedule.Templates
	metricsManager *metrics.Manager

	NowFunc func() time.Time
}

func NewService(
	repo sessionsRepo,
	splitDays splitDaysGetter,
	overrides overridesProvider,
	templates *schedule.Templates,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		splitDays:      splitDays,
		overrides:      overrides,
		templates:      templates,
		metricsManager: metricsManager,
		NowFunc:        time.Now,
	}
}

// Start opens an in-progress session on one of the user's split days and
// returns it with the day's resolved exercises.
func (s *Service) Start(ctx context.Context, userID uuid.UUID, params StartParams) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	splitIDRaw := strings.TrimSpace(params.UserWorkoutSplitID)
	if splitIDRaw == "" {
		return nil, apperr.Validation("userWorkoutSplitId required")
	}
	splitID, err := uuid.Parse(splitIDRaw)
	if err != nil {
		return nil, apperr.Validation("userWorkoutSplitId is not a valid id")
	}

	day, err := s.splitDays.Get(ctx, splitID, userID)
	if err != nil {
		if errors.Is(err, schedule.ErrSplitDayNotFound) {
			return nil, apperr.NotFound("Workout split not found")
		}
		return nil, apperr.Internal(fmt.Errorf("get split day %s: %w", splitID, err))
	}

	overrides, err := s.overrides.Overrides(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("get overrides: %w", err))
	}

	session, err := s.repo.CreateSession(ctx, Session{
		ID:                 uuid.New(),
		UserID:             userID,
		UserWorkoutSplitID: day.ID,
		StartedAt:          s.NowFunc().UTC(),
		Status:             StatusInProgress,
	})
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("create session: %w", err))
	}

	session.WorkoutName = day.WorkoutName
	session.Exercises = s.templates.ResolveFor(day.WorkoutName, overrides)
	session.SetRecords = []SetRecord{}

	if s.metricsManager != nil {
		s.metricsManager.CounterSessionsStarted.Inc()
	}
	log.Debugf("workout session %s started: user %s, day %s [%s]", session.ID, userID, day.ID, day.WorkoutName)

	return session, nil
}

func (s *Service) RecordSet(ctx context.Context, userID, sessionID uuid.UUID, params RecordSetParams) (_ *SetRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.recordSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID.String()))

	if params.ExerciseID == nil || strings.TrimSpace(*params.ExerciseID) == "" ||
		params.SetNumber == nil || params.RepsCompleted == nil || params.WeightUsed == nil {
		return nil, apperr.Validation("exerciseId, setNumber, repsCompleted, weightUsed required")
	}
	exerciseID, err := uuid.Parse(strings.TrimSpace(*params.ExerciseID))
	if err != nil {
		return nil, apperr.Validation("exerciseId is not a valid id")
	}
	// both are INTEGER columns
	if *params.SetNumber <= 0 || *params.SetNumber > math.MaxInt32 {
		return nil, apperr.Validation("setNumber must be a positive integer")
	}
	if *params.RepsCompleted <= 0 || *params.RepsCompleted > math.MaxInt32 {
		return nil, apperr.Validation("repsCompleted must be a positive integer")
	}
	if *params.WeightUsed < 0 {
		return nil, apperr.Validation("weightUsed must not be negative")
	}
	if params.RPE != nil && (*params.RPE < 0 || *params.RPE > maxRPE) {
		return nil, apperr.Validation("rpe must be between 0 and 10")
	}

	rec, err := s.repo.AddSetRecord(ctx, userID, SetRecord{
		ID:            uuid.New(),
		SessionID:     sessionID,
		ExerciseID:    exerciseID,
		SetNumber:     *params.SetNumber,
		RepsCompleted: *params.RepsCompleted,
		WeightUsed:    *params.WeightUsed,
		RPE:           params.RPE,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			return nil, apperr.NotFound("Workout session not found")
		case errors.Is(err, ErrSessionCompleted):
			return nil, apperr.Conflict(apperr.CodeSessionCompleted, "Workout session already completed")
		case errors.Is(err, ErrUnknownExercise):
			return nil, apperr.Validation("Unknown exercise id")
		default:
			return nil, apperr.Internal(fmt.Errorf("add set record: %w", err))
		}
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterSetsRecorded.Inc()
	}

	return rec, nil
}

// Complete is idempotent: completing a completed session returns it as stored.
func (s *Service) Complete(ctx context.Context, userID, sessionID uuid.UUID, params CompleteParams) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID.String()))

	session, completedNow, err := s.repo.CompleteSession(ctx, sessionID, userID, params.Notes, s.NowFunc().UTC())
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, apperr.NotFound("Workout session not found")
		}
		return nil, apperr.Internal(fmt.Errorf("complete session: %w", err))
	}

	if completedNow {
		if s.metricsManager != nil {
			s.metricsManager.CounterSessionsCompleted.Inc()
		}
	} else {
		log.Tracef("workout session %s already completed at %s", sessionID, session.CompletedAt)
	}

	return session, nil
}

// Get returns the session with all of its set records in the order they were recorded.
func (s *Service) Get(ctx context.Context, userID, sessionID uuid.UUID) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID.String()))

	session, err := s.repo.GetSession(ctx, sessionID, userID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, apperr.NotFound("Workout session not found")
		}
		return nil, apperr.Internal(fmt.Errorf("get session: %w", err))
	}

	records, err := s.repo.ListSetRecords(ctx, session.ID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("list set records: %w", err))
	}
	session.SetRecords = records

	return session, nil
}
