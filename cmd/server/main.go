package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	h "github.com/gorilla/handlers"
	"github.com/rs/zerolog"

	"github.com/arkose/analytics-api/internal/config"
	"github.com/arkose/analytics-api/internal/dataset"
	"github.com/arkose/analytics-api/internal/handlers"
	"github.com/arkose/analytics-api/internal/middleware"
	"github.com/arkose/analytics-api/internal/routes"
	"github.com/arkose/analytics-api/internal/settings"
	"github.com/arkose/analytics-api/internal/workflow"
)

type application struct {
	config   *config.Config
	data     *dataset.Cache
	settings *settings.Store
	registry *workflow.Registry
	logger   zerolog.Logger
}

func main() {
	// Set up structured, level-based logging.
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	logger := zerolog.New(consoleWriter).With().Timestamp().Logger()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.SetFlags(0)
	log.SetOutput(logger)

	// Load configuration.
	cfg := config.Load()

	// Warm the dataset cache. A missing source is a visible warning, not a
	// startup failure: the dashboard renders the warning and every other
	// section keeps working.
	cache := dataset.NewCache()
	if records, err := cache.Records(cfg.Data.CSVPath); err != nil {
		logger.Warn().Err(err).Str("path", cfg.Data.CSVPath).Msg("Dataset unavailable at startup")
	} else {
		logger.Info().Int("records", len(records)).Str("path", cfg.Data.CSVPath).Msg("Dataset loaded")
	}

	// Create the application instance.
	app := &application{
		config:   cfg,
		data:     cache,
		settings: settings.NewStore(cfg.PricingAssumptions(), cfg.MixAssumptions()),
		registry: workflow.NewRegistry(cfg.Data.WorkflowsDir),
		logger:   logger,
	}

	// Initialize the HTTP router and middleware.
	router := app.initRouter(logger)
	loggedRouter := middleware.LoggingMiddleware(app.logger)(router)
	corsHandler := h.CORS(
		h.AllowedOrigins(cfg.AllowedOrigins),
		h.AllowedMethods([]string{"GET", "POST", "PUT", "OPTIONS"}),
		h.AllowedHeaders([]string{"Content-Type"}),
	)(loggedRouter)

	// Start the HTTP server and handle graceful shutdown.
	app.startServer(corsHandler, logger)

	logger.Info().Msg("Application terminated.")
}

// initRouter sets up all HTTP handlers and returns the router.
func (app *application) initRouter(logger zerolog.Logger) http.Handler {
	dashboardHandler := handlers.NewDashboardHandler(app.data, app.settings, app.config.Data.CSVPath, logger)
	automationHandler := handlers.NewAutomationHandler(app.registry, logger)
	clientHandler := handlers.NewClientHandler(logger)
	settingsHandler := handlers.NewSettingsHandler(app.settings, app.data, app.config.Data.CSVPath, logger)

	return routes.NewRouter(dashboardHandler, automationHandler, clientHandler, settingsHandler)
}

// startServer launches the HTTP server and handles graceful shutdown.
func (app *application) startServer(handler http.Handler, logger zerolog.Logger) {
	server := &http.Server{
		Addr:    ":" + app.config.ServerPort,
		Handler: handler,
	}

	// Channel to listen for server errors
	serverErrCh := make(chan error, 1)
	go func() {
		logger.Info().Msgf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
	}()

	// Wait for an interrupt signal or a server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info().Msgf("Received signal: %s. Shutting down...", sig)
	case err := <-serverErrCh:
		logger.Error().Err(err).Msg("Server error occurred")
	}

	// Gracefully shut down the HTTP server.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown error")
	} else {
		logger.Info().Msg("HTTP server shutdown complete.")
	}
}
