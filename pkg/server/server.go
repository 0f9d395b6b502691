// Package server exposes site configuration updates over HTTP.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/superflow-dev/superflow-extension/pkg/errors"
	"github.com/superflow-dev/superflow-extension/pkg/logging"
	"github.com/superflow-dev/superflow-extension/pkg/siteconfig"
)

const shutdownTimeout = 10 * time.Second

// Server serves the site configuration endpoints
type Server struct {
	store siteconfig.Store
	now   func() time.Time
}

// New returns a Server writing to store
func New(store siteconfig.Store) *Server {
	return &Server{store: store, now: time.Now}
}

// Router builds the gin engine
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger())

	router.GET("/healthz", s.health)

	api := router.Group("/api/site-config", requireIDs())
	api.POST("", s.updateSiteConfig)
	api.GET("/handler", s.handlerStatus)
	api.POST("/handler/enable", s.setHandler(true))
	api.POST("/handler/disable", s.setHandler(false))

	return router
}

// Run listens on addr until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	logger := logging.GetLogger("server")

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("Listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, errors.ErrNetworkFailure, "server stopped").WithDetail("addr", addr)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "shutdown failed")
	}
	return nil
}
