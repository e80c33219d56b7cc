package storage

import (
	"context"
	"fmt"

	"github.com/jaki95/lineup-genre-sorter/config"
)

// New creates the storage backend selected by cfg.Type
func New(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	switch cfg.Type {
	case config.StorageLocal, "":
		outputDir := cfg.OutputDir
		if outputDir == "" {
			outputDir = config.DefaultOutputDir
		}
		return NewLocalFileStorage(outputDir)
	case config.StorageGCS:
		return NewGCSStorage(ctx, cfg.Bucket, cfg.ObjectPrefix, cfg.CredentialsFile)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", cfg.Type)
	}
}
