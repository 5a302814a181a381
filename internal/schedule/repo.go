package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymsplit/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSplitDayNotFound = errors.New("workout split not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// ListForWeek returns the user's days of the given phase and week, ordered by dayNumber.
func (r *Repo) ListForWeek(ctx context.Context, userID uuid.UUID, phase, week int) (_ []SplitDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.listForWeek")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.Int("phase", phase))
	span.SetAttributes(attribute.Int("week", week))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, phase, week, day_number, workout_name
			FROM user_workout_splits
			WHERE user_id = $1 AND phase = $2 AND week = $3
			ORDER BY day_number;`,
		userID, phase, week,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make([]SplitDay, 0)
	for rows.Next() {
		var d SplitDay
		if err := rows.Scan(&d.ID, &d.UserID, &d.Phase, &d.Week, &d.DayNumber, &d.WorkoutName); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return days, nil
}

// Get returns the split day only if it belongs to userID.
func (r *Repo) Get(ctx context.Context, id, userID uuid.UUID) (_ *SplitDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	var d SplitDay
	if err := r.db.QueryRow(
		ctx,
		`
			SELECT id, user_id, phase, week, day_number, workout_name
			FROM user_workout_splits
			WHERE id = $1 AND user_id = $2;`,
		id, userID,
	).Scan(&d.ID, &d.UserID, &d.Phase, &d.Week, &d.DayNumber, &d.WorkoutName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSplitDayNotFound
		}
		return nil, err
	}

	return &d, nil
}
