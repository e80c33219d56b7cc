package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jaki95/lineup-genre-sorter/internal/domain"
	"github.com/jaki95/lineup-genre-sorter/internal/export"
	"github.com/jaki95/lineup-genre-sorter/internal/genre"
	"github.com/jaki95/lineup-genre-sorter/internal/job"
	"github.com/jaki95/lineup-genre-sorter/internal/service"
)

// healthCheck godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now(),
		"service":   "lineup-genre-sorter",
	})
}

// listGenres godoc
// @Summary List genres in display order
// @Tags Genres
// @Produce json
// @Success 200 {object} GenresResponse
// @Router /api/v1/genres [get]
func (s *Server) listGenres(c *gin.Context) {
	c.JSON(http.StatusOK, GenresResponse{Genres: genre.Priority()})
}

// createLineup godoc
// @Summary Sort a lineup by genre
// @Description Parses the lineup text, resolves every entry against the artist directory and groups the results by primary genre.
// @Tags Lineups
// @Accept json
// @Produce json
// @Param request body LineupRequest true "Lineup text and optional genre filter"
// @Success 201 {object} domain.Result
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/lineups [post]
func (s *Server) createLineup(c *gin.Context) {
	var req LineupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%v: %v", ErrInvalidRequest, err)})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrEmptyLineup.Error()})
		return
	}

	result, err := s.processor.Process(c.Request.Context(), req.Text, nil)
	if err != nil {
		slog.Error("Failed to process lineup", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := s.results.Save(result); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, service.Filtered(result, req.Genres))
}

// listLineups godoc
// @Summary List processed lineups
// @Tags Lineups
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of results per page (max 100)" default(10)
// @Success 200 {object} job.Response
// @Router /api/v1/lineups [get]
func (s *Server) listLineups(c *gin.Context) {
	page := 1
	pageSize := job.DefaultPageSize

	if p := c.Query("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}

	if ps := c.Query("pageSize"); ps != "" {
		if parsed, err := strconv.Atoi(ps); err == nil && parsed > 0 && parsed <= job.MaxPageSize {
			pageSize = parsed
		}
	}

	c.JSON(http.StatusOK, s.results.List(page, pageSize))
}

// getLineup godoc
// @Summary Get a processed lineup
// @Tags Lineups
// @Produce json
// @Param id path string true "Lineup ID"
// @Param genres query string false "Comma-separated genres to keep in the grouped view"
// @Success 200 {object} domain.Result
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/lineups/{id} [get]
func (s *Server) getLineup(c *gin.Context) {
	result, ok := s.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, service.Filtered(result, splitGenres(c.Query("genres"))))
}

// exportLineup godoc
// @Summary Download a lineup as CSV
// @Tags Lineups
// @Produce text/csv
// @Param id path string true "Lineup ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/lineups/{id}/export [get]
func (s *Server) exportLineup(c *gin.Context) {
	result, ok := s.lookup(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.DefaultFilename))
	c.Status(http.StatusOK)

	if err := export.WriteCSV(c.Writer, result.Records); err != nil {
		slog.Error("Failed to write CSV export", "id", result.ID, "error", err)
	}
}

// saveLineup godoc
// @Summary Save a lineup CSV to storage
// @Tags Lineups
// @Produce json
// @Param id path string true "Lineup ID"
// @Param overwrite query bool false "Replace an earlier export of the same lineup"
// @Success 200 {object} SaveResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/lineups/{id}/save [post]
func (s *Server) saveLineup(c *gin.Context) {
	result, ok := s.lookup(c)
	if !ok {
		return
	}
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": ErrNoStorage.Error()})
		return
	}

	name := exportName(result.ID)
	if s.store.Exists(c.Request.Context(), name) && c.Query("overwrite") != "true" {
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("%v: %s", ErrExportExists, name)})
		return
	}

	location, err := export.SaveCSV(c.Request.Context(), s.store, name, result.Records)
	if err != nil {
		slog.Error("Failed to save CSV export", "id", result.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, SaveResponse{Name: name, Location: location})
}

// listExports godoc
// @Summary List saved CSV exports
// @Tags Exports
// @Produce json
// @Success 200 {object} ExportsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/exports [get]
func (s *Server) listExports(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": ErrNoStorage.Error()})
		return
	}

	names, err := s.store.List(c.Request.Context(), exportPrefix)
	if err != nil {
		slog.Error("Failed to list exports", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	exports := make([]ExportInfo, 0, len(names))
	for _, name := range names {
		id, ok := exportID(name)
		if !ok {
			continue
		}
		exports = append(exports, ExportInfo{ID: id, Name: name, Location: s.store.Location(name)})
	}
	c.JSON(http.StatusOK, ExportsResponse{Exports: exports})
}

// downloadExport godoc
// @Summary Download a saved CSV export
// @Tags Exports
// @Produce text/csv
// @Param id path string true "Lineup ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/exports/{id} [get]
func (s *Server) downloadExport(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": ErrNoStorage.Error()})
		return
	}

	ctx := c.Request.Context()
	name := exportName(c.Param("id"))
	if !s.store.Exists(ctx, name) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%v: %s", ErrExportNotFound, name)})
		return
	}

	r, err := s.store.Reader(ctx, name)
	if err != nil {
		slog.Error("Failed to open export", "name", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer r.Close()

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.DefaultFilename))
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, r); err != nil {
		slog.Error("Failed to stream export", "name", name, "error", err)
	}
}

// lookup fetches the result named by the id path parameter, writing a 404 when
// it does not exist
func (s *Server) lookup(c *gin.Context) (*domain.Result, bool) {
	id := c.Param("id")
	result, err := s.results.Get(id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return result, true
}

const exportPrefix = "lineups/"

func exportName(id string) string {
	return exportPrefix + id + ".csv"
}

// exportID reverses exportName
func exportID(name string) (string, bool) {
	id, ok := strings.CutPrefix(name, exportPrefix)
	if !ok {
		return "", false
	}
	id, ok = strings.CutSuffix(id, ".csv")
	if !ok || id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

func splitGenres(raw string) []string {
	var genres []string
	for _, g := range strings.Split(raw, ",") {
		if g = strings.TrimSpace(g); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}
