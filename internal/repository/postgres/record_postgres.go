package postgres

import (
	"context"
	"database/sql"

	"filedepot/internal/model"
	"filedepot/internal/repository"
)

// RecordPostgres is a PostgreSQL implementation of repository.RecordRepository
// over the demonstration table.
type RecordPostgres struct {
	db *sql.DB
}

// NewRecordPostgres creates a new RecordPostgres repository.
func NewRecordPostgres(db *sql.DB) *RecordPostgres {
	return &RecordPostgres{db: db}
}

var _ repository.RecordRepository = (*RecordPostgres)(nil)

// Create inserts a row and returns the generated id.
func (r *RecordPostgres) Create(ctx context.Context, name string) (int64, error) {
	const q = `INSERT INTO test_table (name) VALUES ($1) RETURNING id`
	var id int64
	if err := r.db.QueryRowContext(ctx, q, name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// FindByID fetches a single record by id.
func (r *RecordPostgres) FindByID(ctx context.Context, id int64) (*model.Record, error) {
	const q = `SELECT id, name FROM test_table WHERE id = $1`
	var rec model.Record
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&rec.ID, &rec.Name); err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns all records.
func (r *RecordPostgres) List(ctx context.Context) ([]model.Record, error) {
	const q = `SELECT id, name FROM test_table ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Record, 0)
	for rows.Next() {
		var rec model.Record
		if err := rows.Scan(&rec.ID, &rec.Name); err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update sets the name of a record. Rows affected is ignored: updating a
// missing id reports success.
func (r *RecordPostgres) Update(ctx context.Context, id int64, name string) error {
	const q = `UPDATE test_table SET name = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, q, name, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// Delete removes a record. Rows affected is ignored: deleting a missing id
// reports success.
func (r *RecordPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM test_table WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
