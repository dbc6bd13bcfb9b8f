package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-training-log/internal/models"
)

// ExerciseWriteRepository appends exercise entries.
type ExerciseWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewExerciseWriteRepository(db *sqlx.DB, txGetter TxGetter) *ExerciseWriteRepository {
	return &ExerciseWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts one exercise entry and returns its id.
func (r *ExerciseWriteRepository) Save(ctx context.Context, entry models.ExerciseEntry) (int64, error) {
	const query = `
		INSERT INTO exercise_entries (username, entry_date, exercise, muscle_group, load, reps)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	args := []any{entry.Username, entry.Date, entry.Exercise, entry.MuscleGroup, entry.Load, entry.Reps}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	logQuery(query, args, id, err)

	return id, err
}

// ExerciseReadRepository reads exercise entries of a user.
type ExerciseReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewExerciseReadRepository(db *sqlx.DB, txGetter TxGetter) *ExerciseReadRepository {
	return &ExerciseReadRepository{db: db, txGetter: txGetter}
}

// Latest returns the most recently inserted entry of the user, or nil when there is none.
func (r *ExerciseReadRepository) Latest(ctx context.Context, username string) (*models.ExerciseEntry, error) {
	const query = `
		SELECT id, username, entry_date, exercise, muscle_group, load, reps
		FROM exercise_entries
		WHERE username = $1
		ORDER BY id DESC
		LIMIT 1
	`

	var entry models.ExerciseEntry
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &entry, query, username)

	logQuery(query, []any{username}, entry, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByUser returns every entry of the user in insertion order.
func (r *ExerciseReadRepository) ListByUser(ctx context.Context, username string) ([]models.ExerciseEntry, error) {
	const query = `
		SELECT id, username, entry_date, exercise, muscle_group, load, reps
		FROM exercise_entries
		WHERE username = $1
		ORDER BY id
	`

	var entries []models.ExerciseEntry
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &entries, query, username)

	logQuery(query, []any{username}, len(entries), err)

	return entries, err
}
