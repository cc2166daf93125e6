package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// unavailableStorage stands in for the object store when bootstrap could not
// construct a real client and was configured to continue anyway. Every
// operation fails with the original initialization error.
type unavailableStorage struct {
	err error
}

// Unavailable returns a Storage whose operations all fail with err.
func Unavailable(err error) Storage {
	return &unavailableStorage{err: fmt.Errorf("object storage unavailable: %w", err)}
}

func (u *unavailableStorage) Put(context.Context, string, io.Reader, PutObjectOptions) (ObjectInfo, error) {
	return ObjectInfo{}, u.err
}

func (u *unavailableStorage) List(context.Context) ([]string, error) {
	return nil, u.err
}

func (u *unavailableStorage) Delete(context.Context, string) error {
	return u.err
}

func (u *unavailableStorage) PresignGet(context.Context, string, time.Duration) (string, error) {
	return "", u.err
}
