package seed

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaki95/lineup-genre-sorter/internal/domain"
)

var expectedSeeds = []domain.SeedArtist{
	{Name: "Fisher", PrimaryGenre: "Tech House"},
	{Name: "Above & Beyond", PrimaryGenre: "Trance", SecondaryGenre: "Progressive House"},
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewLoader(t *testing.T) {
	tests := []struct {
		source   string
		expected string
		wantErr  bool
	}{
		{"artists.json", "file", false},
		{"artists.YAML", "file", false},
		{"artists.yml", "file", false},
		{"artists.csv", "file", false},
		{"sqlite://artists.db", "sqlite", false},
		{"gs://bucket/artists.json", "gcs", false},
		{"artists.txt", "", true},
		{"artists", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			loader, err := NewLoader(tt.source, Options{})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedSource)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, loader.Name())
		})
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "artists.json", `[
  {"name": "Fisher", "primary_genre": "Tech House"},
  {"name": "Above & Beyond", "primary_genre": "Trance", "secondary_genre": "Progressive House"}
]`)

	seeds, err := Load(context.Background(), path, Options{})

	require.NoError(t, err)
	assert.Equal(t, expectedSeeds, seeds)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "artists.yaml", `
- name: Fisher
  primary_genre: Tech House
- name: Above & Beyond
  primary_genre: Trance
  secondary_genre: Progressive House
`)

	seeds, err := Load(context.Background(), path, Options{})

	require.NoError(t, err)
	assert.Equal(t, expectedSeeds, seeds)
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "artists.csv", "Name,Primary_Genre,Secondary_Genre\nFisher,Tech House,\n\"Above & Beyond\", Trance ,Progressive House\n")

	seeds, err := Load(context.Background(), path, Options{})

	require.NoError(t, err)
	assert.Equal(t, expectedSeeds, seeds)
}

func TestDecodeCSVOptionalSecondaryColumn(t *testing.T) {
	seeds, err := DecodeCSV(strings.NewReader("primary_genre,name\nTechno,Amelie Lens\n"))

	require.NoError(t, err)
	assert.Equal(t, []domain.SeedArtist{{Name: "Amelie Lens", PrimaryGenre: "Techno"}}, seeds)
}

func TestDecodeCSVMissingNameColumn(t *testing.T) {
	_, err := DecodeCSV(strings.NewReader("artist,primary_genre\nFisher,Tech House\n"))

	assert.Error(t, err)
}

func TestDecodeEmptyInput(t *testing.T) {
	seeds, err := DecodeCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, seeds)

	seeds, err = DecodeYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, seeds)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeFile(t, "artists.json", `{"name": "Fisher"`)

	_, err := Load(context.Background(), path, Options{})

	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"), Options{})

	assert.Error(t, err)
}

func TestFileLoaderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileLoader().Load(ctx, "artists.json")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artists.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)

	_, err = db.Exec(`CREATE TABLE artists (name TEXT NOT NULL, primary_genre TEXT NOT NULL, secondary_genre TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO artists (name, primary_genre, secondary_genre) VALUES (?, ?, NULL), (?, ?, ?)`,
		"Fisher", "Tech House", "Above & Beyond", "Trance", "Progressive House")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	seeds, err := Load(context.Background(), "sqlite://"+path, Options{})

	require.NoError(t, err)
	assert.Equal(t, expectedSeeds, seeds)
}

func TestLoadSQLiteMissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")

	_, err := Load(context.Background(), "sqlite://"+path, Options{})

	assert.Error(t, err)
}

func TestParseGCSURL(t *testing.T) {
	tests := []struct {
		source string
		bucket string
		object string
		ok     bool
	}{
		{"gs://lineups/seed/artists.json", "lineups", "seed/artists.json", true},
		{"gs://lineups/artists.csv", "lineups", "artists.csv", true},
		{"gs://lineups", "", "", false},
		{"gs:///artists.json", "", "", false},
		{"s3://lineups/artists.json", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			bucket, object, err := ParseGCSURL(tt.source)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrUnsupportedSource)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.object, object)
		})
	}
}
