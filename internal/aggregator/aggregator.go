package aggregator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dharmasatrya/swifttrip/internal/filter"
	"github.com/dharmasatrya/swifttrip/internal/metrics"
	"github.com/dharmasatrya/swifttrip/internal/models"
	"github.com/dharmasatrya/swifttrip/internal/providers"
	"github.com/dharmasatrya/swifttrip/internal/ratelimit"
)

type Config struct {
	Timeout     time.Duration
	MaxRetries  int
	RetryDelays []time.Duration
	RateLimiter *ratelimit.SourceLimiter
	// KeepUnkeyed keeps offers whose segments cannot be fingerprinted,
	// deduplicating them by offer ID instead.
	KeepUnkeyed bool
}

type Aggregator struct {
	flights  providers.FlightSource
	hotels   providers.HotelSource
	fallback *providers.MockSource
	config   Config
	logger   *zap.Logger
}

// Result holds deduplicated flights and mapped hotels for one search.
type Result struct {
	Flights []models.FlightOffer
	Hotels  []models.Hotel
	Sources models.SourceMetadata
}

var ErrAllSourcesFailed = errors.New("flight and hotel searches both failed")

const defaultTimeout = 10 * time.Second

// NewAggregator wires the live sources. fallback may be nil, in which case
// upstream failures surface as empty lists.
func NewAggregator(flights providers.FlightSource, hotels providers.HotelSource, fallback *providers.MockSource, config Config, logger *zap.Logger) *Aggregator {
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	if len(config.RetryDelays) == 0 {
		config.RetryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond}
	}
	return &Aggregator{
		flights:  flights,
		hotels:   hotels,
		fallback: fallback,
		config:   config,
		logger:   logger,
	}
}

func (a *Aggregator) Search(ctx context.Context, req models.SearchRequest) (*Result, error) {
	searchCtx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	type fetchResult struct {
		kind     string
		flights  []models.FlightOffer
		hotels   []models.HotelOffer
		source   string
		fallback bool
		err      error
	}

	resultCh := make(chan fetchResult, 2)

	go func() {
		offers, err := fetchWithRetry(searchCtx, a, a.flights.Name(), "flight offers", func(ctx context.Context) ([]models.FlightOffer, error) {
			return a.flights.SearchFlights(ctx, req)
		})
		r := fetchResult{kind: "flights", flights: offers, source: a.flights.Name(), err: err}
		if err != nil && a.fallback != nil {
			a.logger.Warn("flight source failed, serving fallback data",
				zap.String("source", a.flights.Name()), zap.Error(err))
			r.flights, r.err = a.fallback.SearchFlights(ctx, req)
			r.source, r.fallback = a.fallback.Name(), true
		}
		resultCh <- r
	}()

	go func() {
		offers, err := fetchWithRetry(searchCtx, a, a.hotels.Name(), "hotel offers", func(ctx context.Context) ([]models.HotelOffer, error) {
			return a.hotels.SearchHotels(ctx, req)
		})
		r := fetchResult{kind: "hotels", hotels: offers, source: a.hotels.Name(), err: err}
		if err != nil && a.fallback != nil {
			a.logger.Warn("hotel source failed, serving fallback data",
				zap.String("source", a.hotels.Name()), zap.Error(err))
			r.hotels, r.err = a.fallback.SearchHotels(ctx, req)
			r.source, r.fallback = a.fallback.Name(), true
		}
		resultCh <- r
	}()

	result := &Result{
		Flights: make([]models.FlightOffer, 0),
		Hotels:  make([]models.Hotel, 0),
	}

	var flightErr, hotelErr error
	for i := 0; i < 2; i++ {
		r := <-resultCh
		if r.fallback {
			metrics.SourceFallbacks.WithLabelValues(r.kind).Inc()
		}

		switch r.kind {
		case "flights":
			result.Sources.FlightSource = r.source
			result.Sources.FlightFallback = r.fallback
			if r.err != nil {
				flightErr = r.err
				a.logger.Error("flight search failed", zap.Error(r.err))
				continue
			}
			result.Flights = filter.DedupeFlights(r.flights, a.config.KeepUnkeyed)
			if removed := len(r.flights) - len(result.Flights); removed > 0 {
				a.logger.Debug("removed duplicate flight offers", zap.Int("removed", removed))
			}
		case "hotels":
			result.Sources.HotelSource = r.source
			result.Sources.HotelFallback = r.fallback
			if r.err != nil {
				hotelErr = r.err
				a.logger.Error("hotel search failed", zap.Error(r.err))
				continue
			}
			result.Hotels = providers.MapHotels(r.hotels)
		}
	}

	if flightErr != nil && hotelErr != nil {
		return nil, fmt.Errorf("%w: %v; %v", ErrAllSourcesFailed, flightErr, hotelErr)
	}
	return result, nil
}

func fetchWithRetry[T any](ctx context.Context, a *Aggregator, source, operation string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	start := time.Now()
	defer func() {
		metrics.UpstreamDuration.WithLabelValues(source, operation).Observe(time.Since(start).Seconds())
	}()

	for attempt := 0; attempt <= a.config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		if attempt > 0 {
			delayIdx := attempt - 1
			if delayIdx >= len(a.config.RetryDelays) {
				delayIdx = len(a.config.RetryDelays) - 1
			}

			select {
			case <-time.After(a.config.RetryDelays[delayIdx]):
			case <-ctx.Done():
				return zero, ctx.Err()
			}
		}

		if err := a.config.RateLimiter.Wait(ctx, source); err != nil {
			return zero, err
		}

		result, err := fetch(ctx)
		if err == nil {
			return result, nil
		}

		lastErr = err
		a.logger.Warn("upstream attempt failed",
			zap.String("source", source),
			zap.String("operation", operation),
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)
	}

	return zero, lastErr
}
