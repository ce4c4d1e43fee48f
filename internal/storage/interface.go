package storage

import (
	"context"
	"io"
	"time"
)

// Storage defines the interface for object storage operations.
type Storage interface {
	// PresignGet generates a pre-signed URL for downloading an object.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	// PresignPut generates a pre-signed URL for uploading an object.
	PresignPut(ctx context.Context, key string, expiry time.Duration) (string, error)
	// PutObject uploads an object to storage.
	PutObject(ctx context.Context, key string, body io.Reader, contentType string) error
}

// Ensure S3Client implements Storage interface
var _ Storage = (*S3Client)(nil)
