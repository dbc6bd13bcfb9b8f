package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-training-log/internal/models"
)

// MeasurementWriteRepository appends body measurements.
type MeasurementWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewMeasurementWriteRepository(db *sqlx.DB, txGetter TxGetter) *MeasurementWriteRepository {
	return &MeasurementWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts one measurement and returns its id.
func (r *MeasurementWriteRepository) Save(ctx context.Context, entry models.MeasurementEntry) (int64, error) {
	const query = `
		INSERT INTO measurement_entries (username, entry_date, muscle_group, measurement, side)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	args := []any{entry.Username, entry.Date, entry.MuscleGroup, entry.Measurement, string(entry.Side)}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	logQuery(query, args, id, err)

	return id, err
}

// MeasurementReadRepository reads body measurements of a user.
type MeasurementReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewMeasurementReadRepository(db *sqlx.DB, txGetter TxGetter) *MeasurementReadRepository {
	return &MeasurementReadRepository{db: db, txGetter: txGetter}
}

// Latest returns the most recently inserted entry of the user, or nil when there is none.
func (r *MeasurementReadRepository) Latest(ctx context.Context, username string) (*models.MeasurementEntry, error) {
	const query = `
		SELECT id, username, entry_date, muscle_group, measurement, side
		FROM measurement_entries
		WHERE username = $1
		ORDER BY id DESC
		LIMIT 1
	`

	var entry models.MeasurementEntry
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
func (r *MeasurementReadRepository) ListByUser(ctx context.Context, username string) ([]models.MeasurementEntry, error) {
	const query = `
		SELECT id, username, entry_date, muscle_group, measurement, side
		FROM measurement_entries
		WHERE username = $1
		ORDER BY id
	`

	var entries []models.MeasurementEntry
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &entries, query, username)

	logQuery(query, []any{username}, len(entries), err)

	return entries, err
}
