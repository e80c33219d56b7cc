package storage

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// LocalFileStorage implements the Storage interface for local filesystem
type LocalFileStorage struct {
	outputDir string
}

// NewLocalFileStorage creates a new local file storage instance
func NewLocalFileStorage(outputDir string) (*LocalFileStorage, error) {
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", outputDir, err)
	}

	return &LocalFileStorage{outputDir: outputDir}, nil
}

func (s *LocalFileStorage) path(name string) (string, error) {
	clean := path.Clean("/" + name)
	if clean == "/" {
		return "", fmt.Errorf("invalid object name %q", name)
	}
	return filepath.Join(s.outputDir, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

// Writer returns a writer for the named file, creating parent directories
func (s *LocalFileStorage) Writer(ctx context.Context, name string) (io.WriteCloser, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(p)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return os.Create(p)
}

// Reader returns a reader for the named file
func (s *LocalFileStorage) Reader(ctx context.Context, name string) (io.ReadCloser, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}
	return os.Open(p)
}

// Exists checks if a file exists
func (s *LocalFileStorage) Exists(ctx context.Context, name string) bool {
	p, err := s.path(name)
	if err != nil {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// List returns the names of stored files starting with prefix, sorted
func (s *LocalFileStorage) List(ctx context.Context, prefix string) ([]string, error) {
	var results []string
	err := filepath.WalkDir(s.outputDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(s.outputDir, p)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if strings.HasPrefix(name, prefix) {
			results = append(results, name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	sort.Strings(results)
	return results, nil
}

func (s *LocalFileStorage) Location(name string) string {
	p, err := s.path(name)
	if err != nil {
		return name
	}
	return p
}

func (s *LocalFileStorage) Close() error {
	return nil
}
