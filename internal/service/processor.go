package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jaki95/lineup-genre-sorter/config"
	"github.com/jaki95/lineup-genre-sorter/internal/domain"
	"github.com/jaki95/lineup-genre-sorter/internal/genre"
	"github.com/jaki95/lineup-genre-sorter/internal/lineup"
	"github.com/jaki95/lineup-genre-sorter/internal/resolver"
)

// Processor turns raw lineup text into a grouped, summarized result.
//
// Progress updates are pushed to the caller via the provided callback, once
// per resolved entry. A Processor holds no per-run state and is safe for
// concurrent use.
type Processor struct {
	dir      resolver.Directory
	importer lineup.Importer
	workers  int
}

// NewProcessor builds a Processor resolving against dir with the configured
// worker count and lineup importers.
func NewProcessor(cfg *config.Config, dir resolver.Directory) *Processor {
	return &Processor{
		dir:      dir,
		importer: lineup.NewCompositeImporter(cfg.Lineup.UserAgent, cfg.Lineup.RequestTimeout),
		workers:  config.ClampWorkers(cfg.Resolver.Workers),
	}
}

// WithImporter replaces the importer used by ProcessSource.
func (p *Processor) WithImporter(importer lineup.Importer) *Processor {
	p.importer = importer
	return p
}

// Process parses, resolves and groups the lineup in text. Empty text yields
// an empty result.
func (p *Processor) Process(ctx context.Context, text string, progress func(done, total int)) (*domain.Result, error) {
	start := time.Now()

	entries := lineup.ParseLineupText(text)
	slog.Info("Parsed lineup", "entries", len(entries))

	records, err := resolver.ResolveAll(ctx, entries, p.dir, p.workers, progress)
	if err != nil {
		slog.Warn("Resolution stopped", "error", err)
		return nil, err
	}

	grouped := genre.GroupByPrimaryGenre(records)
	summary := genre.Summarize(records, grouped)

	result := &domain.Result{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Entries:   entries,
		Records:   records,
		Grouped:   grouped,
		Genres:    genre.SortedGenres(grouped),
		Summary:   summary,
	}

	slog.Info("Processed lineup",
		"id", result.ID,
		"parsed", summary.Parsed,
		"matched", summary.Matched,
		"matchRate", summary.MatchRate,
		"duration", time.Since(start))
	return result, nil
}

// ProcessSource imports lineup text from source (a file, an HTML page or a
// URL) and processes it.
func (p *Processor) ProcessSource(ctx context.Context, source string, progress func(done, total int)) (*domain.Result, error) {
	slog.Info("Importing lineup", "source", source, "importer", p.importer.Name())

	text, err := p.importer.Import(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to import lineup: %w", err)
	}
	return p.Process(ctx, text, progress)
}

// Filtered returns a copy of result whose grouped view only holds the
// selected genres. Records and summary still cover the whole lineup.
func Filtered(result *domain.Result, selected []string) *domain.Result {
	filtered := *result
	if len(selected) == 0 {
		return &filtered
	}
	filtered.Grouped = genre.Filter(result.Grouped, selected)
	filtered.Genres = genre.SortedGenres(filtered.Grouped)
	return &filtered
}
