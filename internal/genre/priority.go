// Package genre groups resolved lineup records by primary genre and orders
// genres for display.
package genre

import (
	"slices"

	"github.com/jaki95/lineup-genre-sorter/internal/domain"
)

// UnlistedRank is the rank of every genre missing from the priority list.
const UnlistedRank = 999

// priority ranks known genres for display, highest first.
var priority = [...]string{
	"House",
	"Tech House",
	"Melodic/Progressive House",
	"Pop EDM",
	"Techno",
	"Hardstyle",
	"Dubstep",
	"Drums & Bass",
	"Trap",
	"Hard Techno",
	"Melodic Dubstep",
	"Riddim",
	"Afro House",
	"Psytrance",
	"Fonk",
	domain.UnknownGenre,
}

var rankByGenre = func() map[string]int {
	ranks := make(map[string]int, len(priority))
	for i, g := range priority {
		ranks[g] = i
	}
	return ranks
}()

// Priority returns the genre priority list, highest first.
func Priority() []string {
	return slices.Clone(priority[:])
}

// GenreSortKey returns the display sort key for a genre: its position in the
// priority list, or UnlistedRank, paired with the name for tie-breaking.
func GenreSortKey(genre string) (int, string) {
	if rank, ok := rankByGenre[genre]; ok {
		return rank, genre
	}
	return UnlistedRank, genre
}

// CompareGenres orders genres by GenreSortKey.
func CompareGenres(a, b string) int {
	rankA, nameA := GenreSortKey(a)
	rankB, nameB := GenreSortKey(b)
	if rankA != rankB {
		return rankA - rankB
	}
	switch {
	case nameA < nameB:
		return -1
	case nameA > nameB:
		return 1
	}
	return 0
}

// SortGenres sorts genres in place into display order.
func SortGenres(genres []string) {
	slices.SortStableFunc(genres, CompareGenres)
}
