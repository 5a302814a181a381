package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymsplit/internal/telemetry/tracing"
	"github.com/2beens/gymsplit/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrSessionNotFound  = errors.New("workout session not found")
	ErrSessionCompleted = errors.New("workout session already completed")
	ErrUnknownExercise  = errors.New("unknown exercise")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) CreateSession(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.createSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", session.UserID.String()))

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO workout_sessions
				(id, user_id, user_workout_split_id, started_at, status)
				VALUES ($1, $2, $3, $4, $5);`,
		session.ID, session.UserID, session.UserWorkoutSplitID, session.StartedAt, session.Status,
	); err != nil {
		return nil, err
	}

	return &session, nil
}

// GetSession returns the session only if it belongs to userID. Set records are not loaded.
func (r *Repo) GetSession(ctx context.Context, id, userID uuid.UUID) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	session, err := scanSession(r.db.QueryRow(
		ctx,
		`
			SELECT id, user_id, user_workout_split_id, started_at, completed_at, status, notes
			FROM workout_sessions
			WHERE id = $1 AND user_id = $2;`,
		id, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return session, nil
}

func (r *Repo) ListSetRecords(ctx context.Context, sessionID uuid.UUID) (_ []SetRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listSetRecords")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID.String()))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, session_id, exercise_id, set_number, reps_completed, weight_used, rpe, created_at
			FROM set_records
			WHERE session_id = $1
			ORDER BY seq;`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]SetRecord, 0)
	for rows.Next() {
		var rec SetRecord
		if err := rows.Scan(
			&rec.ID, &rec.SessionID, &rec.ExerciseID, &rec.SetNumber,
			&rec.RepsCompleted, &rec.WeightUsed, &rec.RPE, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// AddSetRecord appends the record in a single statement that checks ownership
// and that the session is still in progress. The session row is share-locked,
// so a concurrent completion is either seen or waits for the insert.
func (r *Repo) AddSetRecord(ctx context.Context, userID uuid.UUID, rec SetRecord) (_ *SetRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addSetRecord")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", rec.SessionID.String()))

	var (
		status    Status
		createdAt *time.Time
	)
	if err := r.db.QueryRow(
		ctx,
		`
			WITH s AS (
				SELECT id, status FROM workout_sessions
				WHERE id = $2 AND user_id = $3
				FOR SHARE
			), ins AS (
				INSERT INTO set_records
					(id, session_id, exercise_id, set_number, reps_completed, weight_used, rpe)
				SELECT $1, s.id, $4, $5, $6, $7, $8 FROM s WHERE s.status = 'in_progress'
				RETURNING created_at
			)
			SELECT s.status, (SELECT created_at FROM ins) FROM s;`,
		rec.ID, rec.SessionID, userID, rec.ExerciseID, rec.SetNumber, rec.RepsCompleted, rec.WeightUsed, rec.RPE,
	).Scan(&status, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrUnknownExercise
		}
		return nil, err
	}

	if status != StatusInProgress || createdAt == nil {
		return nil, ErrSessionCompleted
	}

	rec.CreatedAt = *createdAt
	return &rec, nil
}

// CompleteSession moves an in-progress session to completed. The bool result
// reports whether this call did the transition; completing an already
// completed session returns it unchanged.
func (r *Repo) CompleteSession(
	ctx context.Context,
	id, userID uuid.UUID,
	notes *string,
	completedAt time.Time,
) (_ *Session, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.completeSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	session, err := scanSession(r.db.QueryRow(
		ctx,
		`
			UPDATE workout_sessions
			SET status = 'completed', completed_at = $3, notes = $4
			WHERE id = $1 AND user_id = $2 AND status = 'in_progress'
			RETURNING id, user_id, user_workout_split_id, started_at, completed_at, status, notes;`,
		id, userID, completedAt, notes,
	))
	if err == nil {
		return session, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	// either missing, not owned, or already completed
	session, err = r.GetSession(ctx, id, userID)
	if err != nil {
		return nil, false, err
	}
	return session, false, nil
}

func scanSession(row pgx.Row) (*Session, error) {
	var s Session
	if err := row.Scan(
		&s.ID, &s.UserID, &s.UserWorkoutSplitID, &s.StartedAt, &s.CompletedAt, &s.Status, &s.Notes,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
