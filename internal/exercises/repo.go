package exercises

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

var ErrExerciseNotFound = errors.New("exercise not found")

type ListParams struct {
	Category Category
	Type     Type
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("category", string(params.Category)))
	span.SetAttributes(attribute.String("type", string(params.Type)))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, name, category, type
			FROM exercises
			WHERE ($1::text = '' OR category = $1)
				AND ($2::text = '' OR type = $2)
			ORDER BY category, type, name;`,
		string(params.Category), string(params.Type),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2exercises(rows)
}

func (r *Repo) Get(ctx context.Context, id uuid.UUID) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	var e Exercise
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, name, category, type FROM exercises WHERE id = $1;`,
		id,
	).Scan(&e.ID, &e.Name, &e.Category, &e.Type); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	return &e, nil
}

// Seed inserts the given exercises, skipping names already present.
// Returns the number of newly inserted rows.
func (r *Repo) Seed(ctx context.Context, exercises []Exercise) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.seed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))

	batch := &pgx.Batch{}
	for _, e := range exercises {
		batch.Queue(
			`INSERT INTO exercises (id, name, category, type)
				VALUES ($1, $2, $3, $4)
			ON CONFLICT (name) DO NOTHING;`,
			e.ID, e.Name, string(e.Category), string(e.Type),
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer func() {
		if closeErr := results.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close batch: %w", closeErr)
		}
	}()

	inserted := 0
	for _, e := range exercises {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("insert exercise [%s]: %w", e.Name, err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

func rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	exercises := make([]Exercise, 0)
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.Type); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return exercises, nil
}
