package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-training-log/internal/models"
)

// NutritionWriteRepository appends nutrition entries.
type NutritionWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewNutritionWriteRepository(db *sqlx.DB, txGetter TxGetter) *NutritionWriteRepository {
	return &NutritionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts one nutrition entry and returns its id.
func (r *NutritionWriteRepository) Save(ctx context.Context, entry models.NutritionEntry) (int64, error) {
	const query = `
		INSERT INTO nutrition_entries (username, entry_date, vitamins, creatine, protein, protein_source)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	args := []any{entry.Username, entry.Date, entry.Vitamins, entry.Creatine, entry.Protein, entry.ProteinSource}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	logQuery(query, args, id, err)

	return id, err
}

// NutritionReadRepository reads nutrition entries of a user.
type NutritionReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewNutritionReadRepository(db *sqlx.DB, txGetter TxGetter) *NutritionReadRepository {
	return &NutritionReadRepository{db: db, txGetter: txGetter}
}

// Latest returns the most recently inserted entry of the user, or nil when there is none.
func (r *NutritionReadRepository) Latest(ctx context.Context, username string) (*models.NutritionEntry, error) {
	const query = `
		SELECT id, username, entry_date, vitamins, creatine, protein, protein_source
		FROM nutrition_entries
		WHERE username = $1
		ORDER BY id DESC
		LIMIT 1
	`

	var entry models.NutritionEntry
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
func (r *NutritionReadRepository) ListByUser(ctx context.Context, username string) ([]models.NutritionEntry, error) {
	const query = `
		SELECT id, username, entry_date, vitamins, creatine, protein, protein_source
		FROM nutrition_entries
		WHERE username = $1
		ORDER BY id
	`

	var entries []models.NutritionEntry
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &entries, query, username)

	logQuery(query, []any{username}, len(entries), err)

	return entries, err
}
