package seed

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jaki95/lineup-genre-sorter/internal/domain"
)

// Decoder reads seed artists from an encoded stream.
type Decoder func(r io.Reader) ([]domain.SeedArtist, error)

// DecoderFor picks a decoder from the extension of name.
func DecoderFor(name string) (Decoder, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return DecodeJSON, nil
	case ".yaml", ".yml":
		return DecodeYAML, nil
	case ".csv":
		return DecodeCSV, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

// DecodeJSON reads a JSON array of seed artists.
func DecodeJSON(r io.Reader) ([]domain.SeedArtist, error) {
	var seeds []domain.SeedArtist
	if err := json.NewDecoder(r).Decode(&seeds); err != nil {
		return nil, fmt.Errorf("failed to decode JSON seed data: %w", err)
	}
	return seeds, nil
}

// DecodeYAML reads a YAML sequence of seed artists.
func DecodeYAML(r io.Reader) ([]domain.SeedArtist, error) {
	var seeds []domain.SeedArtist
	if err := yaml.NewDecoder(r).Decode(&seeds); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode YAML seed data: %w", err)
	}
	return seeds, nil
}

// DecodeCSV reads seed artists from CSV with a header row naming the
// name, primary_genre and optional secondary_genre columns.
func DecodeCSV(r io.Reader) ([]domain.SeedArtist, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := columns["name"]; !ok {
		return nil, fmt.Errorf("CSV header is missing the name column")
	}

	field := func(record []string, column string) string {
		i, ok := columns[column]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var seeds []domain.SeedArtist
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		seeds = append(seeds, domain.SeedArtist{
			Name:           field(record, "name"),
			PrimaryGenre:   field(record, "primary_genre"),
			SecondaryGenre: field(record, "secondary_genre"),
		})
	}
	return seeds, nil
}
