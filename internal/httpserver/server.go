package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"zouqly-storefront/internal/catalog"
	"zouqly-storefront/internal/checkout"
	"zouqly-storefront/internal/session"
)

// Deps are the collaborators the HTTP surface exposes.
type Deps struct {
	Catalog  *catalog.Catalog
	Sessions *session.Registry
	Checkout *checkout.Service

	// SheetsConfigured is reported on /readyz so operators can see when the
	// order recording integration is running in degraded no-op mode.
	SheetsConfigured bool
	CORSOrigins      []string
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server with all storefront routes.
func New(addr string, logger *log.Logger, deps Deps) (*Server, error) {
	router := buildRouter(logger, deps)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.Catalog == nil || deps.Catalog.Len() == 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "catalog not loaded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":           "ready",
			"products":         deps.Catalog.Len(),
			"sheetsConfigured": deps.SheetsConfigured,
		})
	}
}
