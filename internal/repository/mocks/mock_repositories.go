package mocks

import (
	"context"

	"filedepot/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockFileMetadataRepository struct {
	mock.Mock
}

func (m *MockFileMetadataRepository) Create(ctx context.Context, fm *model.FileMetadata) (*model.FileMetadata, error) {
	args := m.Called(ctx, fm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileMetadata), args.Error(1)
}

func (m *MockFileMetadataRepository) List(ctx context.Context) ([]model.FileMetadata, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FileMetadata), args.Error(1)
}

func (m *MockFileMetadataRepository) DeleteByFilename(ctx context.Context, filename string) error {
	args := m.Called(ctx, filename)
	return args.Error(0)
}

type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) Create(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecordRepository) FindByID(ctx context.Context, id int64) (*model.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Record), args.Error(1)
}

func (m *MockRecordRepository) List(ctx context.Context) ([]model.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockRecordRepository) Update(ctx context.Context, id int64, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockRecordRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
