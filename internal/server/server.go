package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/uemerson199/hospitalcare-meta/internal/auth"
	"github.com/uemerson199/hospitalcare-meta/internal/doctors"
	"github.com/uemerson199/hospitalcare-meta/internal/inventory"
	"github.com/uemerson199/hospitalcare-meta/internal/patients"
	"github.com/uemerson199/hospitalcare-meta/internal/scheduling"
	"github.com/uemerson199/hospitalcare-meta/pkg/config"
	"github.com/uemerson199/hospitalcare-meta/pkg/interfaces"
	"github.com/uemerson199/hospitalcare-meta/pkg/logger"
	"github.com/uemerson199/hospitalcare-meta/pkg/monitoring"
)

// Services bundles the domain services mounted on the server
type Services struct {
	Auth       interfaces.AuthService
	Patients   interfaces.PatientService
	Doctors    interfaces.DoctorService
	Scheduling interfaces.SchedulingService
	Inventory  interfaces.InventoryService
}

// Server is the HTTP server for the admin API
type Server struct {
	config     *config.Config
	logger     *logger.Logger
	httpServer *http.Server
}

// New creates a new server with all routes and middleware mounted.
// Authentication, health and metrics endpoints are public; everything else
// requires a valid bearer token.
func New(cfg *config.Config, log *logger.Logger, services *Services, health *monitoring.HealthManager) *Server {
	router := mux.NewRouter()

	router.Use(loggingMiddleware(log))
	router.Use(securityHeadersMiddleware)
	router.Use(corsMiddleware(&cfg.CORS))
	if cfg.Monitoring.Enabled {
		router.Use(metricsMiddleware)
	}

	router.Handle(cfg.Monitoring.HealthPath, health.Handler()).Methods(http.MethodGet)
	if cfg.Monitoring.Enabled {
		router.Handle(cfg.Monitoring.MetricsPath, monitoring.MetricsHandler()).Methods(http.MethodGet)
	}

	auth.NewHandlers(services.Auth, log).RegisterRoutes(router)

	protected := router.NewRoute().Subrouter()
	protected.Use(auth.Middleware(services.Auth, log))
	patients.NewHandlers(services.Patients, log).RegisterRoutes(protected)
	doctors.NewHandlers(services.Doctors, log).RegisterRoutes(protected)
	scheduling.NewHandlers(services.Scheduling, log).RegisterRoutes(protected)
	inventory.NewHandlers(services.Inventory, log).RegisterRoutes(protected)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	return &Server{
		config:     cfg,
		logger:     log,
		httpServer: httpServer,
	}
}

// Start begins serving requests and blocks until the listener stops
func (s *Server) Start() error {
	s.logger.WithField("addr", s.httpServer.Addr).Info("Starting HTTP server")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server, draining in-flight requests
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
