package storage

import (
	"context"
	"io"
)

// Storage defines the interface for persisting exported lineup results.
// Names are relative, slash-separated object names.
type Storage interface {
	Writer(ctx context.Context, name string) (io.WriteCloser, error)

	Reader(ctx context.Context, name string) (io.ReadCloser, error)

	Exists(ctx context.Context, name string) bool

	List(ctx context.Context, prefix string) ([]string, error)

	// Location describes where name is stored, for logs and API responses
	Location(name string) string

	Close() error
}
