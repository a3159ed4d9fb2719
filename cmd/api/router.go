package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/minimalapi/minimalapi/internal/apidoc"
	"github.com/minimalapi/minimalapi/internal/cache"
	"github.com/minimalapi/minimalapi/internal/colors"
	"github.com/minimalapi/minimalapi/internal/config"
	"github.com/minimalapi/minimalapi/internal/handler"
	"github.com/minimalapi/minimalapi/internal/metrics"
	"github.com/minimalapi/minimalapi/internal/middleware"
	"github.com/minimalapi/minimalapi/internal/ratelimit"
	"github.com/minimalapi/minimalapi/internal/service"
	"github.com/minimalapi/minimalapi/internal/upstream"
)

// setupRouter builds every dependency from cfg and configures the chi router
// with all routes and middleware. cacheClient may be nil.
func setupRouter(ctx context.Context, cfg *config.Config, logger *slog.Logger, cacheClient *cache.Cache) (*chi.Mux, error) {
	// Metrics: Prometheus when enabled, otherwise in-memory counters.
	var (
		recorder       metrics.Recorder
		metricsHandler *handler.MetricsHandler
	)
	if cfg.MetricsEnabled {
		prom := metrics.NewPrometheus()
		recorder = prom
		metricsHandler = handler.NewMetricsHandler(prom.Handler())
	} else {
		mem := metrics.NewInMemory()
		recorder = mem
		metricsHandler = handler.NewSnapshotMetricsHandler(mem)
	}

	table, err := colors.Load(cfg.ColorsFile)
	if err != nil {
		return nil, fmt.Errorf("load colors: %w", err)
	}

	// Upstream clients share one HTTP client.
	httpClient := upstream.NewHTTPClient(cfg.UpstreamTimeout)
	jokeClient := upstream.NewJokeClient(httpClient, cfg.JokeAPIURL, recorder)
	movieClient := upstream.NewMovieClient(httpClient, cfg.OMDbAPIURL, cfg.OMDbAPIKey, recorder)

	var (
		movieCache service.MovieCache
		health     *handler.HealthHandler
		limiter    ratelimit.Limiter
	)
	if cacheClient != nil {
		movieCache = cacheClient
		health = handler.NewHealthHandler(cacheClient)
		limiter = cacheClient.NewIPLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	} else {
		health = handler.NewHealthHandler(nil)
		limiter = ratelimit.NewLocal(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	movieService := service.NewMovieService(movieClient, movieCache, cfg.MovieCacheTTL, recorder, logger)

	h := handler.New()
	validationHandler := handler.NewValidationHandler(recorder)
	colorHandler := handler.NewColorHandler(table, logger)
	jokeHandler := handler.NewJokeHandler(jokeClient, logger)
	movieHandler := handler.NewMovieHandler(movieService, logger)
	systemHandler := handler.NewSystemHandler(cfg.FilesDir, nil, logger)
	countryHandler := handler.NewCountryHandler(nil)

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger, cfg.IsDevelopment()))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: cfg.IsDevelopment()}))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))
	r.Use(middleware.ValidateQuery)

	// Health and metrics
	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)
	r.Get("/metrics", metricsHandler.Metrics)

	// API description, development only
	if cfg.IsDevelopment() {
		doc, err := apidoc.Load(ctx)
		if err != nil {
			return nil, err
		}
		docHandler, err := apidoc.Handler(doc)
		if err != nil {
			return nil, err
		}
		r.Method(http.MethodGet, "/swagger/openapi.json", docHandler)
	}

	r.Get("/", h.Hello)
	r.Get("/DaysBetweenDates", h.DaysBetweenDates)
	r.Get("/validatephonenumber", validationHandler.ValidatePhone)
	r.Get("/validatespanishdni", validationHandler.ValidateDNI)
	r.Get("/returncolorcode", colorHandler.Lookup)
	r.Get("/parseurl", h.ParseURL)
	r.Get("/listfiles", systemHandler.ListFiles)
	r.Get("/calculatememoryconsumption", systemHandler.MemoryConsumption)
	r.Get("/randomeuropeancountry", countryHandler.Random)

	// Endpoints that call third-party APIs are rate limited per client IP.
	rateLimitCfg := middleware.RateLimitConfig{
		Logger:  logger,
		Limiter: limiter,
		Metrics: recorder,
		Enabled: cfg.RateLimitEnabled,
	}
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimitIP(rateLimitCfg))
		r.Get("/tellmeajoke", jokeHandler.Tell)
		r.Get("/moviesbydirector", movieHandler.ByDirector)
	})

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r, nil
}
