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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/dharmasatrya/swifttrip/internal/aggregator"
	"github.com/dharmasatrya/swifttrip/internal/config"
	"github.com/dharmasatrya/swifttrip/internal/handler"
	"github.com/dharmasatrya/swifttrip/internal/logger"
	"github.com/dharmasatrya/swifttrip/internal/providers"
	"github.com/dharmasatrya/swifttrip/internal/ratelimit"
	"github.com/dharmasatrya/swifttrip/internal/session"
	"github.com/dharmasatrya/swifttrip/internal/visa"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			zl.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
				zap.Error(v.Error),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	rateLimiter := ratelimit.NewSourceLimiter(ratelimit.Config{
		RequestsPerSecond: cfg.UpstreamRPS,
		BurstSize:         cfg.UpstreamBurst,
	})
	visaQuota := ratelimit.Config{RequestsPerSecond: cfg.VisaRPS, BurstSize: cfg.VisaBurst}
	if err := rateLimiter.SetLimit(visa.SourceName, visaQuota); err != nil {
		zl.Fatal("Invalid visa rate limit", zap.Error(err))
	}
	zl.Info("Upstream rate limits set",
		zap.Float64("default_rps", cfg.UpstreamRPS),
		zap.Int("default_burst", cfg.UpstreamBurst),
		zap.Float64("visa_rps", cfg.VisaRPS),
		zap.Int("visa_burst", cfg.VisaBurst),
	)

	mock, err := providers.NewMockSource()
	if err != nil {
		zl.Fatal("Failed to load fallback data", zap.Error(err))
	}

	var flightSource providers.FlightSource = mock
	var hotelSource providers.HotelSource = mock
	var fallback *providers.MockSource
	if cfg.AmadeusConfigured() {
		amadeus := providers.NewAmadeusClient(providers.AmadeusConfig{
			BaseURL:      cfg.AmadeusBaseURL,
			ClientID:     cfg.AmadeusClientID,
			ClientSecret: cfg.AmadeusClientSecret,
			MaxOffers:    cfg.AmadeusMaxOffers,
		}, zl)
		flightSource, hotelSource = amadeus, amadeus
		if cfg.MockFallback {
			fallback = mock
		}
		zl.Info("Amadeus source enabled", zap.String("base_url", cfg.AmadeusBaseURL), zap.Bool("mock_fallback", cfg.MockFallback))
	} else {
		zl.Warn("AMADEUS_CLIENT_ID or AMADEUS_CLIENT_SECRET not set, serving mock offers")
	}

	agg := aggregator.NewAggregator(flightSource, hotelSource, fallback, aggregator.Config{
		Timeout:    cfg.UpstreamTimeout,
		MaxRetries: cfg.UpstreamMaxRetries,
		RetryDelays: []time.Duration{
			200 * time.Millisecond,
			500 * time.Millisecond,
			1 * time.Second,
		},
		RateLimiter: rateLimiter,
		KeepUnkeyed: cfg.DedupKeepUnkeyed,
	}, zl)

	store, err := newSessionStore(cfg)
	if err != nil {
		zl.Fatal("Failed to initialize session store", zap.Error(err))
	}
	defer store.Close()
	zl.Info("Session store ready", zap.String("store", cfg.SessionStore), zap.Duration("ttl", cfg.SessionTTL))

	visaClient := visa.NewClient(cfg.VisaBaseURL, &http.Client{Timeout: cfg.UpstreamTimeout}, rateLimiter, zl)

	searchHandler := handler.NewSearchHandler(agg, store, zl)
	visaHandler := handler.NewVisaHandler(visaClient, zl)

	api := e.Group("/api/v1")
	api.POST("/search", searchHandler.Search)
	api.GET("/searches/:id/flights", searchHandler.GetFlights)
	api.GET("/searches/:id/hotels", searchHandler.GetHotels)
	api.PUT("/searches/:id/flights/filter", searchHandler.UpdateFlightFilter)
	api.DELETE("/searches/:id/flights/filter", searchHandler.ResetFlightFilter)
	api.PUT("/searches/:id/flights/sort", searchHandler.UpdateFlightSort)
	api.PUT("/searches/:id/hotels/sort", searchHandler.UpdateHotelSort)
	api.GET("/searches/:id/flights/:offerId", searchHandler.GetFlightDetails)
	api.GET("/visa", visaHandler.Lookup)

	e.GET("/health", handler.HealthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	go func() {
		zl.Info("Starting SwiftTrip search server", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		zl.Error("Server shutdown failed", zap.Error(err))
	}
}

func newSessionStore(cfg *config.Config) (session.Store, error) {
	if cfg.SessionStore == config.SessionStoreMemory {
		return session.NewMemoryStore(cfg.SessionTTL), nil
	}
	return session.NewRedisStore(context.Background(), session.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		TTL:      cfg.SessionTTL,
	})
}
