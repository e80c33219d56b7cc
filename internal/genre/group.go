package genre

import (
	"slices"
	"strings"

	"github.com/jaki95/lineup-genre-sorter/internal/domain"
)

// TopGenreCount is how many genres Summarize reports as top genres.
const TopGenreCount = 3

// GroupByPrimaryGenre buckets records by primary genre, using Unknown for
// records without one. Each bucket is stably sorted by lineup entry.
func GroupByPrimaryGenre(records []domain.GenreRecord) map[string][]domain.GenreRecord {
	grouped := make(map[string][]domain.GenreRecord)
	for _, record := range records {
		genre := record.PrimaryGenre
		if genre == "" {
			genre = domain.UnknownGenre
		}
		grouped[genre] = append(grouped[genre], record)
	}

	for _, bucket := range grouped {
		slices.SortStableFunc(bucket, func(a, b domain.GenreRecord) int {
			return strings.Compare(a.LineupEntry, b.LineupEntry)
		})
	}
	return grouped
}

// SortedGenres returns the genres of a grouping in display order.
func SortedGenres(grouped map[string][]domain.GenreRecord) []string {
	genres := make([]string, 0, len(grouped))
	for g := range grouped {
		genres = append(genres, g)
	}
	SortGenres(genres)
	return genres
}

// Filter keeps only the selected genres of a grouping. Selected genres that
// are not present are ignored; an empty selection keeps every genre.
func Filter(grouped map[string][]domain.GenreRecord, selected []string) map[string][]domain.GenreRecord {
	if len(selected) == 0 {
		return grouped
	}
	filtered := make(map[string][]domain.GenreRecord, len(selected))
	for _, g := range selected {
		if bucket, ok := grouped[g]; ok {
			filtered[g] = bucket
		}
	}
	return filtered
}

// Summarize computes the match statistics of a resolved lineup and its top
// genres by record count, ties broken by display order.
func Summarize(records []domain.GenreRecord, grouped map[string][]domain.GenreRecord) domain.Summary {
	summary := domain.Summary{Parsed: len(records)}
	for _, record := range records {
		if record.Matched() {
			summary.Matched++
		}
	}
	summary.Unknown = summary.Parsed - summary.Matched
	if summary.Parsed > 0 {
		summary.MatchRate = summary.Matched * 100 / summary.Parsed
	}

	counts := make([]domain.GenreCount, 0, len(grouped))
	for _, g := range SortedGenres(grouped) {
		counts = append(counts, domain.GenreCount{Genre: g, Count: len(grouped[g])})
	}
	slices.SortStableFunc(counts, func(a, b domain.GenreCount) int {
		return b.Count - a.Count
	})
	if len(counts) > TopGenreCount {
		counts = counts[:TopGenreCount]
	}
	summary.TopGenres = counts

	return summary
}
