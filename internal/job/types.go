package job

import "github.com/jaki95/lineup-genre-sorter/internal/domain"

// Constants for pagination
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// DefaultMaxResults is how many results a Manager keeps before evicting the oldest.
const DefaultMaxResults = 1000

// Summary is the list view of a stored result.
type Summary struct {
	ID        string         `json:"id"`
	CreatedAt string         `json:"created_at"`
	Genres    []string       `json:"genres"`
	Summary   domain.Summary `json:"summary"`
}

// Response represents one page of stored results.
type Response struct {
	Results      []Summary `json:"results"`
	Page         int       `json:"page"`
	PageSize     int       `json:"page_size"`
	TotalResults int       `json:"total_results"`
	TotalPages   int       `json:"total_pages"`
}

// NormalizePage applies the pagination defaults to a requested page.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}
