// Package objectstore writes and removes media objects by key.
package objectstore

import (
	"context"
	"errors"
	"io"
)

// Store is the object storage the media endpoints talk to.
type Store interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
}

var ErrEmptyKey = errors.New("objectstore: empty key")

// Config selects and configures a Store.
type Config struct {
	Driver    string // "s3" (default) or "memory"
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
}

// New builds the configured store.
func New(cfg Config) (Store, error) {
	switch cfg.Driver {
	case "", "s3":
		return NewS3(cfg)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, errors.New("objectstore: unsupported driver " + cfg.Driver)
	}
}
