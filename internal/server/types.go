package server

// LineupRequest represents the request body for sorting a lineup
type LineupRequest struct {
	Text   string   `json:"text" binding:"required"`
	Genres []string `json:"genres"`
}

// GenresResponse lists the genres in display order
type GenresResponse struct {
	Genres []string `json:"genres"`
}

// SaveResponse reports where an export was written
type SaveResponse struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// ExportInfo describes one saved CSV export
type ExportInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// ExportsResponse lists saved CSV exports
type ExportsResponse struct {
	Exports []ExportInfo `json:"exports"`
}

// ErrorResponse represents a generic error payload used for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
