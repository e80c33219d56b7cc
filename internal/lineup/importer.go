package lineup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Importer reads raw lineup text from a source.
type Importer interface {
	Import(ctx context.Context, source string) (string, error)
	Name() string
}

// CompositeImporter tries multiple importers in sequence until one succeeds
type CompositeImporter struct {
	importers []Importer
}

// NewCompositeImporter tries remote pages first, then local HTML, then plain text.
func NewCompositeImporter(userAgent string, timeout time.Duration) *CompositeImporter {
	return &CompositeImporter{
		importers: []Importer{
			NewRemoteImporter(userAgent, timeout),
			NewHTMLImporter(),
			NewTextImporter(),
		},
	}
}

func (c *CompositeImporter) Name() string {
	return "composite"
}

func (c *CompositeImporter) Import(ctx context.Context, source string) (string, error) {
	var errs []error
	for _, importer := range c.importers {
		text, err := importer.Import(ctx, source)
		if err == nil {
			return text, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		// the source was recognised but held nothing
		if errors.Is(err, ErrEmptyLineup) {
			return "", fmt.Errorf("%s: %w", importer.Name(), err)
		}
		errs = append(errs, fmt.Errorf("%s: %w", importer.Name(), err))
	}
	return "", fmt.Errorf("all importers failed: %v", errs)
}

// TextImporter reads a plain text file.
type TextImporter struct{}

func NewTextImporter() *TextImporter {
	return &TextImporter{}
}

func (t *TextImporter) Name() string {
	return "text"
}

func (t *TextImporter) Import(ctx context.Context, path string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if isRemote(path) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedSource, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read lineup file: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", ErrEmptyLineup
	}
	return string(data), nil
}

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
