package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jaki95/lineup-genre-sorter/config"
	"github.com/jaki95/lineup-genre-sorter/internal/artist"
	"github.com/jaki95/lineup-genre-sorter/internal/seed"
)

// LoadDirectory loads the configured seed source and builds the artist
// directory from it.
func LoadDirectory(ctx context.Context, cfg *config.Config) (*artist.Directory, error) {
	seeds, err := seed.Load(ctx, cfg.Seed.Source, seed.Options{CredentialsFile: cfg.Storage.CredentialsFile})
	if err != nil {
		return nil, fmt.Errorf("failed to load seed artists: %w", err)
	}

	dir, err := artist.BuildArtistDirectory(seeds)
	if err != nil {
		return nil, fmt.Errorf("failed to build artist directory: %w", err)
	}

	slog.Info("Built artist directory", "seeds", len(seeds), "artists", dir.Len())
	return dir, nil
}
