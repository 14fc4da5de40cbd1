package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sunshare/internal/config"
	"sunshare/internal/database"
	"sunshare/internal/handlers"
	"sunshare/internal/metrics"
	"sunshare/internal/middlewares"
	"sunshare/internal/repositories"
	"sunshare/internal/routes"
	"sunshare/internal/services"
)

type Server struct {
	HTTP    *http.Server
	Backend string

	closeStore func()
	log        *slog.Logger
}

// NewServer selects the datastore once, wires the property service and
// returns a configured but not yet listening server.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger) *Server {
	selection := database.Open(ctx, cfg.Database.URI, cfg.Database.ConnectTimeout, log.With("component", "database"))

	m := metrics.NewRegistry()

	// Dependency injection
	propertyService := services.NewPropertyService(
		selection.Repository,
		repositories.NewMockPropertyRepository(),
		services.DefaultRandom,
		log,
		m,
	)
	propertyHandler := handlers.NewPropertyHandler(propertyService, log)

	router := NewRouter(cfg.AllowedOrigins, log, m)
	routes.RegisterRoutes(router, propertyHandler, m.Handler())

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return &Server{
		HTTP:       server,
		Backend:    selection.Repository.Name(),
		closeStore: selection.Close,
		log:        log,
	}
}

// NewRouter returns a gin engine with recovery, request logging and CORS.
func NewRouter(allowedOrigins []string, log *slog.Logger, m *metrics.Registry) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middlewares.RequestLogger(log.With("component", "http"), m),
		middlewares.CORS(allowedOrigins),
	)
	return router
}

// Shutdown stops accepting requests, waits for in-flight ones and then
// releases the datastore.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.HTTP.Shutdown(ctx)
	s.closeStore()
	return err
}
