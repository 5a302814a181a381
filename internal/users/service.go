package users

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=users_test

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/gymsplit/internal/apperr"
	"github.com/2beens/gymsplit/internal/schedule"
	"github.com/2beens/gymsplit/internal/telemetry/metrics"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"
	"github.com/2beens/gymsplit/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type usersRepo interface {
	CreateWithSchedule(ctx context.Context, user User, days []schedule.SplitDay) (*User, error)
	Get(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type tokenService interface {
	Issue(ctx context.Context, userID uuid.UUID) (string, error)
	Revoke(ctx context.Context, token string) error
}

type SignupParams struct {
	Email     string             `json:"email"`
	Password  string             `json:"password"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName"`
	SplitType schedule.SplitType `json:"splitType"`
}

type LoginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Service struct {
	repo           usersRepo
	tokens         tokenService
	metricsManager *metrics.Manager

	// injectable for tests, bcrypt is slow on purpose
	HashPasswordFunc  func(password string) (string, error)
	CheckPasswordFunc func(password, hash string) bool
}

func NewService(repo usersRepo, tokens tokenService, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:              repo,
		tokens:            tokens,
		metricsManager:    metricsManager,
		HashPasswordFunc:  pkg.HashPassword,
		CheckPasswordFunc: pkg.CheckPasswordHash,
	}
}

// Signup creates the user together with the phase 1 calendar and logs them in.
func (s *Service) Signup(ctx context.Context, params SignupParams) (_ *User, _ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.signup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	params.Email = normalizeEmail(params.Email)
	params.FirstName = strings.TrimSpace(params.FirstName)
	params.LastName = strings.TrimSpace(params.LastName)
	if params.Email == "" || params.Password == "" || params.FirstName == "" || params.LastName == "" || params.SplitType == 0 {
		return nil, "", apperr.Validation("Missing required fields: email, password, firstName, lastName, splitType")
	}
	if !params.SplitType.IsValid() {
		return nil, "", apperr.Validation("Split type must be 3, 4, or 5")
	}
	span.SetAttributes(attribute.Int("split.type", int(params.SplitType)))

	days, err := schedule.GeneratePhase1(params.SplitType)
	if err != nil {
		return nil, "", apperr.Validation("Split type must be 3, 4, or 5")
	}

	passwordHash, err := s.HashPasswordFunc(params.Password)
	if err != nil {
		return nil, "", apperr.Internal(fmt.Errorf("hash password: %w", err))
	}

	user := User{
		ID:           uuid.New(),
		Email:        params.Email,
		PasswordHash: passwordHash,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		SplitType:    params.SplitType,
		CurrentPhase: schedule.FirstPhase,
		CurrentWeek:  1,
	}
	for i := range days {
		days[i].ID = uuid.New()
		days[i].UserID = user.ID
	}

	created, err := s.repo.CreateWithSchedule(ctx, user, days)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			return nil, "", apperr.Conflict(apperr.CodeEmailExists, "Email already registered")
		}
		return nil, "", apperr.Internal(fmt.Errorf("create user: %w", err))
	}

	token, err := s.tokens.Issue(ctx, created.ID)
	if err != nil {
		return nil, "", apperr.Internal(fmt.Errorf("issue token: %w", err))
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterSignups.Inc()
	}
	log.Debugf("new user %s signed up with a %d day split", created.ID, created.SplitType)

	return created, token, nil
}

func (s *Service) Login(ctx context.Context, params LoginParams) (_ *User, _ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	email := normalizeEmail(params.Email)
	if email == "" || params.Password == "" {
		return nil, "", apperr.Validation("Email and password required")
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.countLogin("invalid_credentials")
			return nil, "", apperr.Auth(apperr.CodeInvalidCredentials, "Invalid credentials")
		}
		return nil, "", apperr.Internal(fmt.Errorf("get user by email: %w", err))
	}

	if !s.CheckPasswordFunc(params.Password, user.PasswordHash) {
		s.countLogin("invalid_credentials")
		return nil, "", apperr.Auth(apperr.CodeInvalidCredentials, "Invalid credentials")
	}

	token, err := s.tokens.Issue(ctx, user.ID)
	if err != nil {
		return nil, "", apperr.Internal(fmt.Errorf("issue token: %w", err))
	}

	s.countLogin("ok")
	return user, token, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.tokens.Revoke(ctx, token); err != nil {
		return apperr.Internal(fmt.Errorf("revoke token: %w", err))
	}
	return nil
}

func (s *Service) Me(ctx context.Context, userID uuid.UUID) (*User, error) {
	user, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal(fmt.Errorf("get user %s: %w", userID, err))
	}
	return user, nil
}

func (s *Service) countLogin(result string) {
	if s.metricsManager != nil {
		s.metricsManager.CounterLogins.WithLabelValues(result).Inc()
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
