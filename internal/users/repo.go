package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymsplit/internal/schedule"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"
	"github.com/2beens/gymsplit/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already registered")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// CreateWithSchedule stores the user and the whole split calendar in one
// transaction, so a failed signup leaves neither behind.
func (r *Repo) CreateWithSchedule(ctx context.Context, user User, days []schedule.SplitDay) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.createWithSchedule")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", user.ID.String()))
	span.SetAttributes(attribute.Int("split.days", len(days)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			log.Errorf("create user %s, rollback: %s", user.ID, rollbackErr)
		}
	}()

	if err := tx.QueryRow(
		ctx,
		`INSERT INTO users
				(id, email, password_hash, first_name, last_name, split_type, current_phase, current_week)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING created_at;`,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		int(user.SplitType), user.CurrentPhase, user.CurrentWeek,
	).Scan(&user.CreatedAt); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	copied, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"user_workout_splits"},
		[]string{"id", "user_id", "phase", "week", "day_number", "workout_name"},
		pgx.CopyFromSlice(len(days), func(i int) ([]any, error) {
			d := days[i]
			return []any{d.ID, user.ID, d.Phase, d.Week, d.DayNumber, d.WorkoutName}, nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("insert workout splits: %w", err)
	}
	if int(copied) != len(days) {
		return nil, fmt.Errorf("insert workout splits: copied %d of %d rows", copied, len(days))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return &user, nil
}

func (r *Repo) Get(ctx context.Context, id uuid.UUID) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", id.String()))

	return r.getBy(ctx, `WHERE id = $1`, id)
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.getBy(ctx, `WHERE email = $1`, email)
}

func (r *Repo) getBy(ctx context.Context, where string, arg any) (*User, error) {
	var (
		u         User
		splitType int
	)
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, email, password_hash, first_name, last_name, split_type, current_phase, current_week, created_at
			FROM users `+where+`;`,
		arg,
	).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&splitType, &u.CurrentPhase, &u.CurrentWeek, &u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	u.SplitType = schedule.SplitType(splitType)

	return &u, nil
}
