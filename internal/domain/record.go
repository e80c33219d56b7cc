package domain

import "time"

// UnknownGenre is the primary genre given to entries that match no known artist.
const UnknownGenre = "Unknown"

// MatchType describes which resolution step produced a record.
type MatchType string

const (
	MatchDirect         MatchType = "direct"
	MatchWithoutArticle MatchType = "without_article"
	MatchCollaboration  MatchType = "collaboration"
	MatchUnknown        MatchType = "unknown"
)

// GenreRecordFields are the export column names, in the order Row returns them.
var GenreRecordFields = []string{"lineup_entry", "matched_artist", "primary_genre", "secondary_genre"}

// GenreRecord is the resolution of a single lineup entry.
type GenreRecord struct {
	LineupEntry    string    `json:"lineup_entry"`
	MatchedArtist  string    `json:"matched_artist"`
	PrimaryGenre   string    `json:"primary_genre"`
	SecondaryGenre string    `json:"secondary_genre,omitempty"`
	MatchType      MatchType `json:"match_type"`
}

// Row returns the exported fields in GenreRecordFields order.
func (r GenreRecord) Row() []string {
	return []string{r.LineupEntry, r.MatchedArtist, r.PrimaryGenre, r.SecondaryGenre}
}

// Matched reports whether the entry was resolved to a known artist.
func (r GenreRecord) Matched() bool {
	return r.PrimaryGenre != "" && r.PrimaryGenre != UnknownGenre
}

// GenreCount pairs a genre with the number of records in it.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// Summary holds the derived statistics of a resolved lineup.
type Summary struct {
	Parsed    int          `json:"parsed"`
	Matched   int          `json:"matched"`
	Unknown   int          `json:"unknown"`
	MatchRate int          `json:"match_rate"`
	TopGenres []GenreCount `json:"top_genres"`
}

// Result is a fully processed lineup.
type Result struct {
	ID        string                   `json:"id"`
	CreatedAt time.Time                `json:"created_at"`
	Entries   []string                 `json:"entries"`
	Records   []GenreRecord            `json:"records"`
	Grouped   map[string][]GenreRecord `json:"grouped"`
	Genres    []string                 `json:"genres"`
	Summary   Summary                  `json:"summary"`
}
