package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/lexabu/woman-owned.com/cache"
	"github.com/lexabu/woman-owned.com/config"
	"github.com/lexabu/woman-owned.com/data"
	"github.com/lexabu/woman-owned.com/directory"
	"github.com/lexabu/woman-owned.com/email"
	"github.com/lexabu/woman-owned.com/handler"
	appLogger "github.com/lexabu/woman-owned.com/logger"
	"github.com/lexabu/woman-owned.com/metrics"
	"github.com/lexabu/woman-owned.com/middleware"
	"github.com/lexabu/woman-owned.com/ratelimit"
	redisClient "github.com/lexabu/woman-owned.com/redis"
	"github.com/lexabu/woman-owned.com/security"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig()

	// Initialize logger
	appLogger.Initialize(cfg.Log)
	log.Info().Str("environment", cfg.Environment).Msg("Configuration loaded successfully")

	// Janitors and cleanup loops stop when the process is signalled
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load and check the directory data
	businesses := data.Businesses()
	report := directory.ValidateCollection(businesses)
	for _, w := range report.Warnings {
		log.Warn().Str("warning", w).Msg("Directory data warning")
	}
	if !report.Valid() {
		for _, e := range report.Errors {
			log.Error().Str("error", e).Msg("Directory data error")
		}
		log.Fatal().Int("errors", len(report.Errors)).Msg("Directory data is invalid")
	}
	dir := directory.New(businesses, data.Cities(), data.Categories())
	log.Info().
		Int("businesses", dir.TotalCount()).
		Int("cities", dir.CityCount()).
		Msg("Directory loaded")

	// Initialize response cache
	cacheClient, err := cache.New(cfg.Cache)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize cache")
	}

	m := metrics.New()

	// Form rate limiters
	var (
		rdb                           *redis.Client
		contactStore, submissionStore ratelimit.Store
	)
	switch cfg.RateLimit.Backend {
	case "redis":
		rdb, err = redisClient.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		contactStore = ratelimit.NewRedisStore(rdb, "ratelimit:contact")
		submissionStore = ratelimit.NewRedisStore(rdb, "ratelimit:submission")
	default:
		sweep := time.Duration(cfg.RateLimit.SweepIntervalSeconds) * time.Second
		memoryStore := func(name string) ratelimit.Store {
			store, err := ratelimit.NewMemoryStore(cfg.RateLimit.MaxEntries)
			if err != nil {
				log.Fatal().Err(err).Str("limiter", name).Msg("Failed to create rate limit store")
			}
			store.StartJanitor(ctx, sweep)
			m.TrackMemoryStore(name, store)
			return store
		}
		contactStore = memoryStore("contact")
		submissionStore = memoryStore("submission")
	}
	log.Info().Str("backend", cfg.RateLimit.Backend).Msg("Form rate limiters initialized")

	contactLimiter := ratelimit.New("contact", contactStore,
		cfg.RateLimit.Contact.MaxRequests, cfg.RateLimit.Contact.Window(),
		ratelimit.WithObserver(m.ObserveRateLimit))
	submissionLimiter := ratelimit.New("submission", submissionStore,
		cfg.RateLimit.Submission.MaxRequests, cfg.RateLimit.Submission.Window(),
		ratelimit.WithObserver(m.ObserveRateLimit))

	// Email and submission screening
	mailer := email.NewService(cfg.Email, cfg.Site.Name, email.LogSender{Verbose: !cfg.IsProduction()})
	screener := security.NewWebsiteScreener(cfg.Security.WebsiteScreening, cfg.Security.BlockedWebsitePatterns...)
	log.Info().
		Bool("email_enabled", cfg.Email.Enabled).
		Bool("website_screening", cfg.Security.WebsiteScreening).
		Msg("Form services initialized")

	// Bot protection guards the form endpoints only
	detector := security.NewBotDetector(cfg.Security.BotMaxRequestsPerMinute)
	detector.StartCleanup(ctx, 5*time.Minute)
	botProtection := middleware.NewBotProtection(detector, cfg.Security.BotDetectionEnabled, m.ObserveBotBlock)

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.MaxEntries)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize global rate limiter")
	}

	// Set up router
	r := mux.NewRouter()
	r.Use(middleware.CORS(cfg.WebServer.AllowedOrigin))
	r.Use(middleware.RequestLogger(m))
	r.Use(rateLimiter.Limit)

	handler.RegisterRoutes(r,
		handler.NewDirectoryHandler(dir, cacheClient, cfg, m),
		handler.NewFormHandler(contactLimiter, submissionLimiter, mailer, screener, m, !cfg.IsProduction()),
		handler.NewSystemHandler(dir, cacheClient, rdb),
		botProtection.Protect,
	)
	r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)

	// Configure HTTP server
	serverAddress := fmt.Sprintf("%s:%s", cfg.WebServer.IP, cfg.WebServer.Port)
	server := &http.Server{
		Addr:         serverAddress,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.WebServer.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WebServer.WriteTimeout) * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("address", serverAddress).Msg("Starting server")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	stop()

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.WebServer.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	cacheClient.Close()

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Redis connection")
		}
	}

	log.Info().
		Int("bot_blocks", int(botProtection.Stats().Blocked)).
		Msg("Server stopped gracefully")
}
