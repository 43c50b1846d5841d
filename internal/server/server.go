// Package server exposes the classification engine over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/teklink/devid/internal/engine"
)

const (
	// maxBodyBytes caps submitted payloads at 256 KB.
	maxBodyBytes = 256 << 10

	shutdownTimeout = 5 * time.Second
)

// Server wires the engine into a gin router.
type Server struct {
	engine *engine.Engine
	router *gin.Engine
}

// New builds the router with recovery, request logging, permissive CORS, and
// the body size limit applied to every route.
func New(eng *engine.Engine) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(recoveryMiddleware())
	router.Use(requestLogger())
	router.Use(corsMiddleware())
	router.Use(bodyLimit(maxBodyBytes))

	s := &Server{engine: eng, router: router}
	s.registerRoutes()
	return s
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	slog.Info("Device classification API listening", "addr", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
