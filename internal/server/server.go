package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jaki95/lineup-genre-sorter/config"
	"github.com/jaki95/lineup-genre-sorter/internal/job"
	"github.com/jaki95/lineup-genre-sorter/internal/service"
	"github.com/jaki95/lineup-genre-sorter/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// Server handles HTTP requests for the lineup genre sorter
type Server struct {
	cfg       *config.Config
	router    *gin.Engine
	processor *service.Processor
	results   *job.Manager
	store     storage.Storage
}

// New creates a new HTTP server instance
func New(cfg *config.Config, processor *service.Processor, store storage.Storage) *Server {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	server := &Server{
		cfg:       cfg,
		router:    router,
		processor: processor,
		results:   job.NewManagerWithLimit(cfg.Server.MaxResults),
		store:     store,
	}

	server.setupRoutes(router)
	return server
}

// setupRoutes configures the HTTP routes
func (s *Server) setupRoutes(router *gin.Engine) {
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	router.GET("/health", s.healthCheck)

	api := router.Group("/api/v1")
	{
		api.GET("/genres", s.listGenres)
		api.POST("/lineups", s.createLineup)
		api.GET("/lineups", s.listLineups)
		api.GET("/lineups/:id", s.getLineup)
		api.GET("/lineups/:id/export", s.exportLineup)
		api.POST("/lineups/:id/save", s.saveLineup)
		api.GET("/exports", s.listExports)
		api.GET("/exports/:id", s.downloadExport)
	}
}

// requestLogger logs each request through slog
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("Handled request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

// Handler exposes the router for embedding and tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves HTTP on port until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
