package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"filedepot/internal/model"
	"filedepot/internal/repository"
	"filedepot/internal/storage"
)

var (
	ErrFilenameRequired = errors.New("filename is required")
	ErrReaderNil        = errors.New("reader is nil")
)

// FileService defines the use cases for stored files. The object store owns
// the bytes under the filename as key; the metadata table is correlated by
// filename only.
type FileService interface {
	// ListFiles enumerates the keys of every object in the container.
	ListFiles(ctx context.Context) ([]string, error)

	// DownloadURL issues a read-only, time-limited URL for the file.
	DownloadURL(ctx context.Context, filename string) (string, error)

	// Upload writes the blob under filename and records a metadata row,
	// returning the generated row id. The blob is removed again if the
	// metadata insert fails.
	Upload(ctx context.Context, r io.Reader, filename, contentType string, size int64) (int64, error)

	// Delete removes the blob and the metadata rows for filename. The two
	// steps are not transactional; a partial failure reports which side
	// failed.
	Delete(ctx context.Context, filename string) error

	// ListMetadata returns every recorded metadata row.
	ListMetadata(ctx context.Context) ([]model.FileMetadata, error)
}

type fileService struct {
	store         storage.Storage
	repo          repository.FileMetadataRepository
	presignExpiry time.Duration
}

// NewFileService constructs a FileService. presignExpiry bounds the lifetime
// of issued download URLs.
func NewFileService(store storage.Storage, repo repository.FileMetadataRepository, presignExpiry time.Duration) FileService {
	if presignExpiry <= 0 {
		presignExpiry = time.Hour
	}
	return &fileService{store: store, repo: repo, presignExpiry: presignExpiry}
}

func (s *fileService) ListFiles(ctx context.Context) ([]string, error) {
	return s.store.List(ctx)
}

func (s *fileService) DownloadURL(ctx context.Context, filename string) (string, error) {
	if filename == "" {
		return "", ErrFilenameRequired
	}
	return s.store.PresignGet(ctx, filename, s.presignExpiry)
}

func (s *fileService) Upload(ctx context.Context, r io.Reader, filename, contentType string, size int64) (int64, error) {
	if r == nil {
		return 0, ErrReaderNil
	}
	if filename == "" {
		return 0, ErrFilenameRequired
	}

	// The filename is the object key; a repeat upload overwrites the blob.
	_, err := s.store.Put(ctx, filename, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
	})
	if err != nil {
		return 0, fmt.Errorf("upload to storage: %w", err)
	}

	stored, err := s.repo.Create(ctx, &model.FileMetadata{
		Filename: filename,
		Filesize: size,
		Filetype: contentType,
	})
	if err != nil {
		// Rollback: remove the blob so store and table stay correlated.
		if delErr := s.store.Delete(ctx, filename); delErr != nil {
			return 0, fmt.Errorf("metadata save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return 0, fmt.Errorf("metadata save failed: %w", err)
	}
	return stored.ID, nil
}

func (s *fileService) Delete(ctx context.Context, filename string) error {
	if filename == "" {
		return ErrFilenameRequired
	}

	// Best effort on both sides: the blob and the row are independent, so a
	// failure on one does not stop the other. The error names which side
	// failed so the caller knows what state remains.
	blobErr := s.store.Delete(ctx, filename)
	rowErr := s.repo.DeleteByFilename(ctx, filename)

	switch {
	case blobErr != nil && rowErr != nil:
		return fmt.Errorf("delete blob: %v; delete metadata: %v", blobErr, rowErr)
	case blobErr != nil:
		return fmt.Errorf("metadata removed but blob delete failed: %w", blobErr)
	case rowErr != nil:
		return fmt.Errorf("blob removed but metadata delete failed: %w", rowErr)
	}
	return nil
}

func (s *fileService) ListMetadata(ctx context.Context) ([]model.FileMetadata, error) {
	return s.repo.List(ctx)
}
