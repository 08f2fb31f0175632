// Package main is the entry point for the facility desk API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stayai/facility-desk/internal/config"
	"github.com/stayai/facility-desk/internal/handler"
	"github.com/stayai/facility-desk/internal/kv"
	"github.com/stayai/facility-desk/internal/llm"
	"github.com/stayai/facility-desk/internal/middleware"
	"github.com/stayai/facility-desk/internal/notify"
	"github.com/stayai/facility-desk/internal/service"
	"github.com/stayai/facility-desk/internal/sheets"
	"github.com/stayai/facility-desk/internal/store"
	"github.com/stayai/facility-desk/pkg/logger"
	"github.com/stayai/facility-desk/pkg/tracing"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Infow("starting facility desk API server")

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "facility-desk", cfg.TracingEndpoint)
		if err != nil {
			log.Warnw("failed to initialize tracing", "error", err)
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Open local state store
	db, err := kv.Open(cfg.DBPath)
	if err != nil {
		log.Errorw("failed to open state store", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Load persisted state before serving
	settings := store.NewSettingsStore(db)
	if err := settings.Load(); err != nil {
		log.Errorw("failed to load settings", "error", err)
		os.Exit(1)
	}
	logs := store.NewLogStore(db, log)
	if err := logs.LoadOrSeed(); err != nil {
		log.Errorw("failed to load inquiry log", "error", err)
		os.Exit(1)
	}

	// Connect to NATS for manager notifications; empty URL disables it
	var natsClient *notify.Client
	var notifier notify.Publisher = notify.NopPublisher{}
	if cfg.NATSURL != "" {
		natsClient, err = notify.Connect(notify.Config{
			URL:      cfg.NATSURL,
			CAFile:   cfg.NATSCAFile,
			CertFile: cfg.NATSCertFile,
			KeyFile:  cfg.NATSKeyFile,
			Token:    cfg.NATSToken,
		}, log)
		if err != nil {
			log.Errorw("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer natsClient.Close()

		publisher, err := notify.NewStreamPublisher(ctx, natsClient)
		if err != nil {
			log.Errorw("failed to ensure notification stream", "error", err)
			os.Exit(1)
		}
		notifier = publisher
	} else {
		log.Infow("NATS_URL not set, manager notifications disabled")
	}

	// Initialize LLM client
	var llmClient llm.Client
	switch {
	case cfg.AnthropicAPIKey != "":
		llmClient, err = llm.NewAnthropicClient(cfg.AnthropicAPIKey)
		if err != nil {
			log.Warnw("failed to create Anthropic client, AI features disabled", "error", err)
		}
	case cfg.OpenAIAPIKey != "":
		llmClient, err = llm.NewOpenAIClient(cfg.OpenAIAPIKey)
		if err != nil {
			log.Warnw("failed to create OpenAI client, AI features disabled", "error", err)
		}
	default:
		log.Warnw("no AI provider key configured, AI features disabled")
	}

	// Initialize services
	dispatcher := sheets.NewDispatcher(&http.Client{Timeout: 15 * time.Second}, log)
	inquirySvc := service.NewInquiryService(logs, settings, dispatcher, llmClient, notifier, log)
	analyticsSvc := service.NewAnalyticsService(logs)
	reportSvc := service.NewReportService()

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(natsClient)
	inquiryHandler := handler.NewInquiryHandler(logs, settings, inquirySvc, reportSvc, dispatcher, log)
	settingsHandler := handler.NewSettingsHandler(settings, log)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsSvc)
	aiHandler := handler.NewAIHandler(settings, reportSvc, llmClient, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"Link", "Content-Disposition", "X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health endpoints (no auth required)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes with authentication
	r.Route("/api/v1", func(r chi.Router) {
		if !cfg.AuthDisabled {
			r.Use(middleware.Auth(cfg.JWTSecret))
		}
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

		// Inquiries
		r.Route("/inquiries", func(r chi.Router) {
			r.Get("/", inquiryHandler.List)
			r.Delete("/", inquiryHandler.Reset)
			r.Post("/direct", inquiryHandler.DirectEntry)
			r.Post("/simulate", inquiryHandler.Simulate)

			r.Route("/{id}", func(r chi.Router) {
				r.Post("/sync", inquiryHandler.Resync)
				r.Get("/report", inquiryHandler.Report)
			})
		})

		// Settings
		r.Route("/settings", func(r chi.Router) {
			r.Get("/profile", settingsHandler.GetProfile)
			r.Put("/profile", settingsHandler.UpdateProfile)
			r.Get("/scenario", settingsHandler.GetScenario)
			r.Put("/scenario", settingsHandler.UpdateScenario)
			r.Get("/scenarios/templates", settingsHandler.Templates)
		})
		r.Get("/options", settingsHandler.Options)

		// Aggregates
		r.Get("/analytics", analyticsHandler.Analytics)
		r.Get("/dashboard", analyticsHandler.Dashboard)

		// AI adapter
		r.Post("/ai/test", aiHandler.TestConnection)
		r.Get("/calendar/events", aiHandler.CalendarEvents)
		r.Post("/reports/briefing", aiHandler.Briefing)
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server listening", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorw("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
	}

	log.Infow("server stopped")
}
