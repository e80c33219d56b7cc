// Package export writes resolved lineup records as CSV.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"github.com/jaki95/lineup-genre-sorter/internal/domain"
	"github.com/jaki95/lineup-genre-sorter/internal/storage"
)

// DefaultFilename is the name offered for CSV downloads.
const DefaultFilename = "lineup_genre_results.csv"

// WriteCSV writes a header row followed by one row per record, in record order.
func WriteCSV(w io.Writer, records []domain.GenreRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(domain.GenreRecordFields); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i, record := range records {
		if err := cw.Write(record.Row()); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveCSV writes records to name in store and returns where they were stored.
func SaveCSV(ctx context.Context, store storage.Storage, name string, records []domain.GenreRecord) (string, error) {
	w, err := store.Writer(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", name, err)
	}

	if err := WriteCSV(w, records); err != nil {
		w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", name, err)
	}

	location := store.Location(name)
	slog.Info("Saved CSV export", "location", location, "records", len(records))
	return location, nil
}
