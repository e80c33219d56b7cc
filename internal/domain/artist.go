package domain

// SeedArtist is one entry of the seed artist data as supplied by a loader.
type SeedArtist struct {
	Name           string `json:"name" yaml:"name" validate:"required"`
	PrimaryGenre   string `json:"primary_genre" yaml:"primary_genre" validate:"required"`
	SecondaryGenre string `json:"secondary_genre,omitempty" yaml:"secondary_genre,omitempty"`
}

// ArtistRecord is a known artist held by the directory. An empty
// SecondaryGenre means the artist has no secondary genre.
type ArtistRecord struct {
	Name           string `json:"name"`
	PrimaryGenre   string `json:"primary_genre"`
	SecondaryGenre string `json:"secondary_genre,omitempty"`
}
