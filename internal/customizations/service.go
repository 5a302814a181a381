package customizations

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=customizations_test

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/gymsplit/internal/apperr"
	"github.com/2beens/gymsplit/internal/schedule"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type customizationsRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]Customization, error)
	Upsert(ctx context.Context, c Customization) (*Customization, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	Overrides(ctx context.Context, userID uuid.UUID) (schedule.Overrides, error)
}

type CreateParams struct {
	OriginalExerciseID    string `json:"originalExerciseId"`
	ReplacementExerciseID string `json:"replacementExerciseId"`
}

type Service struct {
	repo customizationsRepo
}

func NewService(repo customizationsRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Customization, error) {
	customizations, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("list customizations: %w", err))
	}
	return customizations, nil
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (_ *Customization, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.customizations.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	originalRaw := strings.TrimSpace(params.OriginalExerciseID)
	replacementRaw := strings.TrimSpace(params.ReplacementExerciseID)
	if originalRaw == "" || replacementRaw == "" {
		return nil, apperr.Validation("originalExerciseId and replacementExerciseId required")
	}

	originalID, err := uuid.Parse(originalRaw)
	if err != nil {
		return nil, apperr.Validation("originalExerciseId is not a valid id")
	}
	replacementID, err := uuid.Parse(replacementRaw)
	if err != nil {
		return nil, apperr.Validation("replacementExerciseId is not a valid id")
	}
	if originalID == replacementID {
		return nil, apperr.Validation("Replacement exercise must differ from the original exercise")
	}
	span.SetAttributes(
		attribute.String("exercise.original", originalID.String()),
		attribute.String("exercise.replacement", replacementID.String()),
	)

	created, err := s.repo.Upsert(ctx, Customization{
		ID:                    uuid.New(),
		UserID:                userID,
		OriginalExerciseID:    originalID,
		ReplacementExerciseID: replacementID,
	})
	if err != nil {
		if errors.Is(err, ErrUnknownExercise) {
			return nil, apperr.Validation("Unknown exercise id")
		}
		return nil, apperr.Internal(fmt.Errorf("upsert customization: %w", err))
	}

	return created, nil
}

func (s *Service) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, ErrCustomizationNotFound) {
			return apperr.NotFound("Customization not found")
		}
		return apperr.Internal(fmt.Errorf("delete customization %s: %w", id, err))
	}
	return nil
}

// Overrides is consulted when a workout day is resolved for the user.
func (s *Service) Overrides(ctx context.Context, userID uuid.UUID) (schedule.Overrides, error) {
	overrides, err := s.repo.Overrides(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("get overrides: %w", err))
	}
	return overrides, nil
}
