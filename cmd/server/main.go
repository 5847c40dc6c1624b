package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/ITSky-Solutions/call-center-dasboard/internal"
	"github.com/ITSky-Solutions/call-center-dasboard/internal/handler"
	"github.com/ITSky-Solutions/call-center-dasboard/internal/middleware"
	"github.com/ITSky-Solutions/call-center-dasboard/internal/minutes"
	"github.com/ITSky-Solutions/call-center-dasboard/internal/router"
	"github.com/ITSky-Solutions/call-center-dasboard/internal/routes"
	"github.com/ITSky-Solutions/call-center-dasboard/internal/telemetry"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize minutes API client
	logger.Info("Initializing minutes API client...", "base_url", cfg.Minutes.BaseURL)
	client, err := minutes.NewClient(minutes.ClientConfig{
		BaseURL: cfg.Minutes.BaseURL,
		Timeout: time.Duration(cfg.Minutes.TimeoutSeconds) * time.Second,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize minutes client: %w", err)
	}

	// Load templates with renderer
	logger.Info("Loading templates...")
	renderer, err := handler.NewRenderer("web/templates")
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}
	logger.Info("Templates loaded successfully")

	// Initialize Prometheus metrics
	metrics := middleware.NewMetrics("minutes")
	lookupMetrics := telemetry.NewLookupMetrics("minutes")

	// Configure security headers
	securityConfig := middleware.DefaultSecurityHeadersConfig()
	if cfg.Env == "dev" {
		// Relax CSP in development for easier debugging
		securityConfig.ContentSecurityPolicy = ""
		securityConfig.HSTSMaxAge = 0 // Disable HSTS in development
	}

	// Build route dependencies
	deps := routes.Deps{
		LookupHandler: handler.NewLookupHandler(client, renderer, lookupMetrics),
		APIHandler:    handler.NewMinutesAPIHandler(client),
	}

	// Create router and register routes
	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.SecurityHeaders(securityConfig),
		router.Logger(logger),
		middleware.WithRequestLogger(logger),
	)

	// Metrics endpoint (no auth required, but should be protected in production via firewall)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	routes.Register(r, deps)

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting lookup server", "address", addr)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
