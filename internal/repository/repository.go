package repository

import (
	"context"

	"filedepot/internal/model"
)

// Repositories expose strictly persistence operations built on parameterized
// SQL. No business logic here.

// FileMetadataRepository defines data access for uploaded-file metadata rows.
type FileMetadataRepository interface {
	// Create inserts a metadata row; the database assigns ID and UploadDate.
	Create(ctx context.Context, fm *model.FileMetadata) (*model.FileMetadata, error)

	// List returns every metadata row.
	List(ctx context.Context) ([]model.FileMetadata, error)

	// DeleteByFilename removes all rows for the filename. It returns nil when
	// no rows matched.
	DeleteByFilename(ctx context.Context, filename string) error
}

// RecordRepository defines data access for the demonstration table.
type RecordRepository interface {
	// Create inserts a row and returns the database-assigned id.
	Create(ctx context.Context, name string) (int64, error)

	// FindByID returns a record by its id; sql.ErrNoRows when absent.
	FindByID(ctx context.Context, id int64) (*model.Record, error)

	// List returns every record.
	List(ctx context.Context) ([]model.Record, error)

	// Update sets the name of the record. It returns nil even when the id
	// does not exist.
	Update(ctx context.Context, id int64, name string) error

	// Delete removes the record. It returns nil even when the id does not exist.
	Delete(ctx context.Context, id int64) error
}
