package lineup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Block elements whose text is taken one per line when a page has no list items.
const blockSelector = "h1, h2, h3, h4, h5, h6, p, td"

// HTMLImporter extracts lineup text from a saved HTML page.
type HTMLImporter struct{}

func NewHTMLImporter() *HTMLImporter {
	return &HTMLImporter{}
}

func (h *HTMLImporter) Name() string {
	return "html"
}

func (h *HTMLImporter) Import(ctx context.Context, path string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	ext := strings.ToLower(filepath.Ext(path))
	if isRemote(path) || (ext != ".html" && ext != ".htm") {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedSource, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open HTML file: %w", err)
	}
	defer file.Close()

	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	text := ExtractLineupText(doc.Selection)
	if text == "" {
		return "", ErrEmptyLineup
	}
	return text, nil
}

// ExtractLineupText pulls lineup lines out of an HTML selection. List items
// are preferred; otherwise headings, paragraphs and table cells are used, and
// finally the whole body text. <br> tags become line breaks.
func ExtractLineupText(sel *goquery.Selection) string {
	sel.Find("script, style, noscript").Remove()
	sel.Find("br").ReplaceWithHtml("\n")

	if lines := collectText(sel.Find("li")); len(lines) > 0 {
		return strings.Join(lines, "\n")
	}
	if lines := collectText(sel.Find(blockSelector)); len(lines) > 0 {
		return strings.Join(lines, "\n")
	}

	body := sel.Find("body")
	if body.Length() == 0 {
		body = sel
	}
	return strings.TrimSpace(body.Text())
}

func collectText(sel *goquery.Selection) []string {
	var lines []string
	sel.Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			lines = append(lines, text)
		}
	})
	return lines
}
