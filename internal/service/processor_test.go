package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaki95/lineup-genre-sorter/config"
	"github.com/jaki95/lineup-genre-sorter/internal/artist"
	"github.com/jaki95/lineup-genre-sorter/internal/domain"
)

// MockImporter implements lineup.Importer for testing
type MockImporter struct {
	text string
	err  error
}

func (m *MockImporter) Import(ctx context.Context, source string) (string, error) {
	return m.text, m.err
}

func (m *MockImporter) Name() string {
	return "mock"
}

func newTestProcessor(t *testing.T) *Processor {
	t.Helper()
	dir, err := artist.BuildArtistDirectory([]domain.SeedArtist{
		{Name: "Fisher", PrimaryGenre: "Tech House"},
		{Name: "Chainsmokers", PrimaryGenre: "Pop EDM"},
		{Name: "Charlotte de Witte", PrimaryGenre: "Techno"},
		{Name: "Amelie Lens", PrimaryGenre: "Techno"},
		{Name: "John Summit", PrimaryGenre: "Tech House", SecondaryGenre: "House"},
	})
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Resolver.Workers = 2
	return NewProcessor(cfg, dir)
}

const testLineup = "Fisher (Main Stage, 9PM)\n" +
	"THE CHAINSMOKERS WITH MC RAGE\n" +
	"charlotte de witte, Amelie Lens B2B Someone\n" +
	"• Mystery Act\n" +
	"Charlotte De Witte\n"

func TestProcess(t *testing.T) {
	p := newTestProcessor(t)

	var mu sync.Mutex
	var calls []int
	result, err := p.Process(context.Background(), testLineup, func(done, total int) {
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 5, total)
		calls = append(calls, done)
	})

	require.NoError(t, err)
	_, err = uuid.Parse(result.ID)
	assert.NoError(t, err)
	assert.False(t, result.CreatedAt.IsZero())

	assert.Equal(t, []string{
		"Fisher (Main Stage, 9PM)",
		"THE CHAINSMOKERS WITH MC RAGE",
		"charlotte de witte",
		"Amelie Lens B2B Someone",
		"Mystery Act",
	}, result.Entries)
	require.Len(t, result.Records, 5)
	assert.Equal(t, domain.MatchWithoutArticle, result.Records[1].MatchType)
	assert.Equal(t, domain.MatchCollaboration, result.Records[3].MatchType)

	assert.Equal(t, []string{"Tech House", "Pop EDM", "Techno", domain.UnknownGenre}, result.Genres)
	assert.Len(t, result.Grouped["Techno"], 2)
	assert.Equal(t, "Mystery Act", result.Grouped[domain.UnknownGenre][0].MatchedArtist)

	assert.Equal(t, domain.Summary{
		Parsed:    5,
		Matched:   4,
		Unknown:   1,
		MatchRate: 80,
		TopGenres: []domain.GenreCount{
			{Genre: "Techno", Count: 2},
			{Genre: "Tech House", Count: 1},
			{Genre: "Pop EDM", Count: 1},
		},
	}, result.Summary)

	assert.Len(t, calls, 5)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, calls)
}

func TestProcessEmptyText(t *testing.T) {
	p := newTestProcessor(t)

	result, err := p.Process(context.Background(), "  \n\n ,, \n", nil)

	require.NoError(t, err)
	assert.Empty(t, result.Entries)
	assert.Empty(t, result.Records)
	assert.Empty(t, result.Genres)
	assert.Equal(t, 0, result.Summary.MatchRate)
}

func TestProcessCancelled(t *testing.T) {
	p := newTestProcessor(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := p.Process(ctx, testLineup, nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestProcessSource(t *testing.T) {
	tests := []struct {
		name        string
		importer    *MockImporter
		expectError bool
	}{
		{"import succeeds", &MockImporter{text: "Fisher\nAmelie Lens"}, false},
		{"import fails", &MockImporter{err: errors.New("connection refused")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProcessor(t).WithImporter(tt.importer)

			result, err := p.ProcessSource(context.Background(), "https://example.com/lineup", nil)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2, result.Summary.Matched)
		})
	}
}

func TestFiltered(t *testing.T) {
	p := newTestProcessor(t)
	result, err := p.Process(context.Background(), testLineup, nil)
	require.NoError(t, err)

	filtered := Filtered(result, []string{"Techno", "Drum & Bass"})

	assert.Equal(t, []string{"Techno"}, filtered.Genres)
	assert.Len(t, filtered.Grouped, 1)
	assert.Len(t, filtered.Records, 5)
	assert.Equal(t, result.Summary, filtered.Summary)

	// the original is untouched
	assert.Len(t, result.Genres, 4)

	assert.Equal(t, result.Genres, Filtered(result, nil).Genres)
}
