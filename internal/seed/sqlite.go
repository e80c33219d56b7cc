package seed

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jaki95/lineup-genre-sorter/internal/domain"

	_ "modernc.org/sqlite"
)

const selectArtists = `SELECT name, primary_genre, secondary_genre FROM artists ORDER BY rowid`

// SQLiteLoader reads seed artists from the artists table of a SQLite
// database given as sqlite://path.
type SQLiteLoader struct{}

func NewSQLiteLoader() *SQLiteLoader {
	return &SQLiteLoader{}
}

func (s *SQLiteLoader) Name() string {
	return "sqlite"
}

func (s *SQLiteLoader) Load(ctx context.Context, source string) ([]domain.SeedArtist, error) {
	path := strings.TrimPrefix(source, sqliteScheme)
	if path == "" {
		return nil, fmt.Errorf("%w: missing database path in %q", ErrUnsupportedSource, source)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, selectArtists)
	if err != nil {
		return nil, fmt.Errorf("query artists: %w", err)
	}
	defer rows.Close()

	var seeds []domain.SeedArtist
	for rows.Next() {
		var name, primary, secondary sql.NullString
		if err := rows.Scan(&name, &primary, &secondary); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		seeds = append(seeds, domain.SeedArtist{
			Name:           name.String,
			PrimaryGenre:   primary.String,
			SecondaryGenre: secondary.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}
	return seeds, nil
}
