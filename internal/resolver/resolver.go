// Package resolver matches lineup entries to known artists.
package resolver

import (
	"context"
	"sync"

	"github.com/jaki95/lineup-genre-sorter/internal/domain"
	"github.com/jaki95/lineup-genre-sorter/internal/lineup"
)

// Directory is the artist lookup the resolver needs.
type Directory interface {
	Lookup(name string) (domain.ArtistRecord, bool)
}

// Resolve matches one lineup entry against the directory. It never fails:
// entries with no known artist resolve to an Unknown record named after the
// entry with its set metadata removed.
//
// Matching runs in order, first hit wins: the whole name, the name without a
// leading "The", then each act of a collaboration in order.
func Resolve(entry string, dir Directory) domain.GenreRecord {
	baseName := lineup.StripSetMeta(entry)

	match, matchType, ok := lookupName(baseName, dir)
	if !ok {
		match, ok = lookupCollaboration(baseName, dir)
		matchType = domain.MatchCollaboration
	}
	if !ok {
		match = domain.ArtistRecord{Name: baseName, PrimaryGenre: domain.UnknownGenre}
		matchType = domain.MatchUnknown
	}

	return domain.GenreRecord{
		LineupEntry:    entry,
		MatchedArtist:  match.Name,
		PrimaryGenre:   match.PrimaryGenre,
		SecondaryGenre: match.SecondaryGenre,
		MatchType:      matchType,
	}
}

// lookupName tries the name as given, then without a leading article.
func lookupName(name string, dir Directory) (domain.ArtistRecord, domain.MatchType, bool) {
	if record, ok := dir.Lookup(name); ok {
		return record, domain.MatchDirect, true
	}
	if withoutThe, changed := lineup.StripLeadingArticle(name); changed {
		if record, ok := dir.Lookup(withoutThe); ok {
			return record, domain.MatchWithoutArticle, true
		}
	}
	return domain.ArtistRecord{}, domain.MatchUnknown, false
}

func lookupCollaboration(name string, dir Directory) (domain.ArtistRecord, bool) {
	for _, part := range lineup.SplitCollaboration(name) {
		if record, _, ok := lookupName(part, dir); ok {
			return record, true
		}
	}
	return domain.ArtistRecord{}, false
}

// ResolveAll resolves entries with up to workers concurrent resolutions and
// returns records in entry order. progress, when set, is called after each
// entry with the number resolved so far. ResolveAll stops early and returns
// ctx.Err() when the context is cancelled.
func ResolveAll(ctx context.Context, entries []string, dir Directory, workers int, progress func(done, total int)) ([]domain.GenreRecord, error) {
	if workers < 1 {
		workers = 1
	}

	records := make([]domain.GenreRecord, len(entries))
	semaphore := make(chan struct{}, workers)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		done int
	)

	for i, entry := range entries {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, entry string) {
			defer wg.Done()
			defer func() { <-semaphore }()

			records[i] = Resolve(entry, dir)

			if progress != nil {
				mu.Lock()
				done++
				progress(done, len(entries))
				mu.Unlock()
			}
		}(i, entry)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
