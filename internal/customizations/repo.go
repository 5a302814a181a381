package customizations

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymsplit/internal/exercises"
	"github.com/2beens/gymsplit/internal/schedule"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"
	"github.com/2beens/gymsplit/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrCustomizationNotFound = errors.New("customization not found")
	ErrUnknownExercise       = errors.New("unknown exercise")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, userID uuid.UUID) (_ []Customization, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.customizations.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				c.id, c.user_id, c.original_exercise_id, c.replacement_exercise_id, c.created_at,
				e.id, e.name, e.category, e.type
			FROM user_exercise_customizations c
			LEFT JOIN exercises e ON e.id = c.replacement_exercise_id
			WHERE c.user_id = $1
			ORDER BY c.created_at, c.id;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customizations := make([]Customization, 0)
	for rows.Next() {
		var (
			c          Customization
			exID       *uuid.UUID
			exName     *string
			exCategory *string
			exType     *string
		)
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.OriginalExerciseID, &c.ReplacementExerciseID, &c.CreatedAt,
			&exID, &exName, &exCategory, &exType,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if exID != nil && exName != nil && exCategory != nil && exType != nil {
			c.ReplacementExercise = &exercises.Exercise{
				ID:       *exID,
				Name:     *exName,
				Category: exercises.Category(*exCategory),
				Type:     exercises.Type(*exType),
			}
		}
		customizations = append(customizations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return customizations, nil
}

// Upsert stores the mapping; a second mapping for the same original exercise
// replaces the first one. Unknown exercise ids give ErrUnknownExercise.
func (r *Repo) Upsert(ctx context.Context, c Customization) (_ *Customization, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.customizations.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", c.UserID.String()))

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO user_exercise_customizations
				(id, user_id, original_exercise_id, replacement_exercise_id)
				VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, original_exercise_id)
				DO UPDATE SET replacement_exercise_id = EXCLUDED.replacement_exercise_id
			RETURNING id, created_at;`,
		c.ID, c.UserID, c.OriginalExerciseID, c.ReplacementExerciseID,
	).Scan(&c.ID, &c.CreatedAt); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrUnknownExercise
		}
		return nil, err
	}

	return &c, nil
}

// Delete removes the customization only if it belongs to userID.
func (r *Repo) Delete(ctx context.Context, id, userID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.customizations.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM user_exercise_customizations WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCustomizationNotFound
	}
	return nil
}

// Overrides returns the user's replacements keyed by the original exercise id.
func (r *Repo) Overrides(ctx context.Context, userID uuid.UUID) (_ schedule.Overrides, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.customizations.overrides")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT c.original_exercise_id, e.id, e.name, e.category, e.type
			FROM user_exercise_customizations c
			JOIN exercises e ON e.id = c.replacement_exercise_id
			WHERE c.user_id = $1;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overrides := schedule.Overrides{}
	for rows.Next() {
		var (
			originalID  uuid.UUID
			replacement exercises.Exercise
		)
		if err := rows.Scan(
			&originalID, &replacement.ID, &replacement.Name, &replacement.Category, &replacement.Type,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		overrides[originalID] = replacement
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return overrides, nil
}
