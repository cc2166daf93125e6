package postgres

import (
	"context"
	"database/sql"

	"filedepot/internal/model"
	"filedepot/internal/repository"
)

// FileMetadataPostgres is a PostgreSQL implementation of
// repository.FileMetadataRepository.
type FileMetadataPostgres struct {
	db *sql.DB
}

// NewFileMetadataPostgres creates a new FileMetadataPostgres repository.
func NewFileMetadataPostgres(db *sql.DB) *FileMetadataPostgres {
	return &FileMetadataPostgres{db: db}
}

var _ repository.FileMetadataRepository = (*FileMetadataPostgres)(nil)

// Create inserts a metadata row. ID and UploadDate come back from the database.
func (r *FileMetadataPostgres) Create(ctx context.Context, fm *model.FileMetadata) (*model.FileMetadata, error) {
	const q = `
		INSERT INTO file_metadata (filename, filesize, filetype)
		VALUES ($1, $2, $3)
		RETURNING id, filename, filesize, filetype, upload_date
	`
	row := r.db.QueryRowContext(ctx, q, fm.Filename, fm.Filesize, fm.Filetype)

	var out model.FileMetadata
	if err := row.Scan(
		&out.ID,
		&out.Filename,
		&out.Filesize,
		&out.Filetype,
		&out.UploadDate,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns all metadata rows, newest first.
func (r *FileMetadataPostgres) List(ctx context.Context) ([]model.FileMetadata, error) {
	const q = `
		SELECT id, filename, filesize, filetype, upload_date
		FROM file_metadata
		ORDER BY upload_date DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.FileMetadata, 0)
	for rows.Next() {
		var fm model.FileMetadata
		if err := rows.Scan(
			&fm.ID,
			&fm.Filename,
			&fm.Filesize,
			&fm.Filetype,
			&fm.UploadDate,
		); err != nil {
			return nil, err
		}
		items = append(items, fm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteByFilename removes metadata rows for a filename. Missing rows are not
// an error.
func (r *FileMetadataPostgres) DeleteByFilename(ctx context.Context, filename string) error {
	const q = `DELETE FROM file_metadata WHERE filename = $1`
	res, err := r.db.ExecContext(ctx, q, filename)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
