// Package artist holds the directory of known artists keyed by normalized name.
package artist

import (
	"fmt"
	"log/slog"

	"github.com/jaki95/lineup-genre-sorter/internal/domain"
	"github.com/jaki95/lineup-genre-sorter/internal/normalize"
)

// Directory maps normalized artist names to artist records. It is built once
// and never modified, so it can be shared between goroutines.
type Directory struct {
	artists map[string]domain.ArtistRecord
}

// BuildArtistDirectory builds a directory from seed data. Every seed must
// carry a name and a primary genre; the first invalid seed aborts the build.
// Seeds whose name normalizes to an empty key are skipped. When two seeds
// share a key the later one wins.
func BuildArtistDirectory(seeds []domain.SeedArtist) (*Directory, error) {
	artists := make(map[string]domain.ArtistRecord, len(seeds))
	for i, seed := range seeds {
		if err := ValidateSeed(seed); err != nil {
			return nil, fmt.Errorf("seed %d: %w", i, err)
		}

		key := normalize.NormalizeKey(seed.Name)
		if key == "" {
			slog.Debug("Skipping seed artist with empty key", "index", i, "name", seed.Name)
			continue
		}

		if previous, ok := artists[key]; ok {
			slog.Debug("Seed artist overwrites earlier entry", "key", key, "previous", previous.Name, "name", seed.Name)
		}

		artists[key] = domain.ArtistRecord{
			Name:           seed.Name,
			PrimaryGenre:   seed.PrimaryGenre,
			SecondaryGenre: seed.SecondaryGenre,
		}
	}

	return &Directory{artists: artists}, nil
}

// Lookup finds an artist by exact normalized key.
func (d *Directory) Lookup(name string) (domain.ArtistRecord, bool) {
	if d == nil {
		return domain.ArtistRecord{}, false
	}
	key := normalize.NormalizeKey(name)
	if key == "" {
		return domain.ArtistRecord{}, false
	}
	record, ok := d.artists[key]
	return record, ok
}

// Len returns the number of artists in the directory.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.artists)
}
