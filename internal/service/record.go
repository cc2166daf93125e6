package service

import (
	"context"
	"database/sql"
	"errors"

	"filedepot/internal/model"
	"filedepot/internal/repository"
)

var (
	ErrNameRequired = errors.New("name is required")
	ErrNotFound     = errors.New("record not found")
)

// RecordService defines the use cases for the demonstration table.
type RecordService interface {
	// Create inserts a record and returns its generated id.
	Create(ctx context.Context, name string) (int64, error)

	// Get returns a record by id; ErrNotFound when absent.
	Get(ctx context.Context, id int64) (*model.Record, error)

	// List returns every record.
	List(ctx context.Context) ([]model.Record, error)

	// Update renames a record. Updating a missing id reports success.
	Update(ctx context.Context, id int64, name string) error

	// Delete removes a record. Deleting a missing id reports success.
	Delete(ctx context.Context, id int64) error
}

type recordService struct {
	repo repository.RecordRepository
}

// NewRecordService constructs a new RecordService.
func NewRecordService(repo repository.RecordRepository) RecordService {
	return &recordService{repo: repo}
}

func (s *recordService) Create(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, ErrNameRequired
	}
	return s.repo.Create(ctx, name)
}

func (s *recordService) Get(ctx context.Context, id int64) (*model.Record, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *recordService) List(ctx context.Context) ([]model.Record, error) {
	return s.repo.List(ctx)
}

func (s *recordService) Update(ctx context.Context, id int64, name string) error {
	if name == "" {
		return ErrNameRequired
	}
	return s.repo.Update(ctx, id, name)
}

func (s *recordService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
