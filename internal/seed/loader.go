// Package seed loads the seed artist data the artist directory is built from.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jaki95/lineup-genre-sorter/internal/domain"
)

const (
	sqliteScheme = "sqlite://"
	gcsScheme    = "gs://"
)

// Loader loads seed artists from a source, preserving source order.
type Loader interface {
	Load(ctx context.Context, source string) ([]domain.SeedArtist, error)
	Name() string
}

// Options configures loaders that need credentials.
type Options struct {
	CredentialsFile string
}

// NewLoader picks a loader for source: sqlite://path, gs://bucket/object, or
// a local .json, .yaml/.yml or .csv file.
func NewLoader(source string, opts Options) (Loader, error) {
	switch {
	case strings.HasPrefix(source, sqliteScheme):
		return NewSQLiteLoader(), nil
	case strings.HasPrefix(source, gcsScheme):
		return NewGCSLoader(opts.CredentialsFile), nil
	}

	if _, err := DecoderFor(source); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, source)
	}
	return NewFileLoader(), nil
}

// Load is a shortcut for NewLoader followed by Load.
func Load(ctx context.Context, source string, opts Options) ([]domain.SeedArtist, error) {
	loader, err := NewLoader(source, opts)
	if err != nil {
		return nil, err
	}

	seeds, err := loader.Load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", loader.Name(), err)
	}
	slog.Info("Loaded seed artists", "source", source, "loader", loader.Name(), "count", len(seeds))
	return seeds, nil
}

// FileLoader reads seed data from a local file, decoded by extension.
type FileLoader struct{}

func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

func (f *FileLoader) Name() string {
	return "file"
}

func (f *FileLoader) Load(ctx context.Context, path string) ([]domain.SeedArtist, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	decode, err := DecoderFor(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()

	return decode(file)
}
