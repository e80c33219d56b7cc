package job

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/jaki95/lineup-genre-sorter/internal/domain"
)

// Manager keeps processed lineup results in memory, keyed by ID. Once more
// than limit results are stored the oldest are evicted.
type Manager struct {
	mu      sync.RWMutex
	results map[string]*domain.Result
	order   []string
	limit   int
}

// NewManager creates a new result manager holding up to DefaultMaxResults
func NewManager() *Manager {
	return NewManagerWithLimit(DefaultMaxResults)
}

// NewManagerWithLimit creates a result manager holding up to limit results.
// A non-positive limit uses DefaultMaxResults.
func NewManagerWithLimit(limit int) *Manager {
	if limit < 1 {
		limit = DefaultMaxResults
	}
	return &Manager{
		results: make(map[string]*domain.Result),
		limit:   limit,
	}
}

// Save stores a result, replacing any earlier result with the same ID.
func (m *Manager) Save(result *domain.Result) error {
	if result == nil || result.ID == "" {
		return ErrInvalidResult
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.results[result.ID]; !exists {
		m.order = append(m.order, result.ID)
	}
	m.results[result.ID] = result

	for len(m.order) > m.limit {
		evicted := m.order[0]
		m.order = slices.Delete(m.order, 0, 1)
		delete(m.results, evicted)
		slog.Debug("Evicted lineup result", "id", evicted)
	}
	return nil
}

// Get retrieves a result by ID
func (m *Manager) Get(id string) (*domain.Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result, exists := m.results[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return result, nil
}

// Len returns the number of stored results.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}

// List lists stored results with pagination, newest first
func (m *Manager) List(page, pageSize int) *Response {
	page, pageSize = NormalizePage(page, pageSize)

	m.mu.RLock()
	defer m.mu.RUnlock()

	total := len(m.order)
	response := &Response{
		Results:      []Summary{},
		Page:         page,
		PageSize:     pageSize,
		TotalResults: total,
		TotalPages:   (total + pageSize - 1) / pageSize,
	}

	// compare before multiplying so huge page numbers cannot overflow
	if page-1 >= (total+pageSize-1)/pageSize {
		return response
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, total)

	// order is oldest first
	for i := total - 1 - start; i >= total-end; i-- {
		result := m.results[m.order[i]]
		response.Results = append(response.Results, Summary{
			ID:        result.ID,
			CreatedAt: result.CreatedAt.Format(time.RFC3339),
			Genres:    result.Genres,
			Summary:   result.Summary,
		})
	}
	return response
}
