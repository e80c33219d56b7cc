package lineup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gocolly/colly"
)

// RemoteImporter fetches a festival lineup page over HTTP.
type RemoteImporter struct {
	userAgent string
	timeout   time.Duration
}

func NewRemoteImporter(userAgent string, timeout time.Duration) *RemoteImporter {
	return &RemoteImporter{
		userAgent: userAgent,
		timeout:   timeout,
	}
}

func (r *RemoteImporter) Name() string {
	return "remote"
}

func (r *RemoteImporter) Import(ctx context.Context, url string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if !isRemote(url) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedSource, url)
	}

	c := colly.NewCollector(
		colly.AllowURLRevisit(),
		colly.MaxDepth(1),
	)
	if r.userAgent != "" {
		c.UserAgent = r.userAgent
	}
	if r.timeout > 0 {
		c.SetRequestTimeout(r.timeout)
	}

	c.OnRequest(func(req *colly.Request) {
		req.Headers.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		req.Headers.Set("Accept-Language", "en-US,en;q=0.5")
	})

	var text string
	c.OnHTML("html", func(e *colly.HTMLElement) {
		text = ExtractLineupText(e.DOM)
	})

	var requestErr error
	c.OnError(func(resp *colly.Response, err error) {
		requestErr = fmt.Errorf("request to %s failed with status %d: %w", resp.Request.URL, resp.StatusCode, err)
	})

	slog.Info("Fetching lineup page", "url", url)
	if err := c.Visit(url); err != nil {
		if requestErr != nil {
			return "", requestErr
		}
		return "", fmt.Errorf("failed to fetch lineup page: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyLineup
	}
	slog.Debug("Fetched lineup page", "url", url, "bytes", len(text))
	return text, nil
}
