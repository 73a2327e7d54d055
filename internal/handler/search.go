package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dharmasatrya/swifttrip/internal/aggregator"
	"github.com/dharmasatrya/swifttrip/internal/filter"
	"github.com/dharmasatrya/swifttrip/internal/metrics"
	"github.com/dharmasatrya/swifttrip/internal/models"
	"github.com/dharmasatrya/swifttrip/internal/ranking"
	"github.com/dharmasatrya/swifttrip/internal/session"
)

type Searcher interface {
	Search(ctx context.Context, req models.SearchRequest) (*aggregator.Result, error)
}

type SearchHandler struct {
	searcher Searcher
	store    session.Store
	logger   *zap.Logger
}

func NewSearchHandler(searcher Searcher, store session.Store, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searcher: searcher,
		store:    store,
		logger:   logger,
	}
}

func (h *SearchHandler) Search(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "Failed to parse request body: "+err.Error())
	}

	if err := req.Validate(); err != nil {
		return errorJSON(c, http.StatusBadRequest, "validation_error", err.Error())
	}
	metrics.SearchesTotal.Inc()

	result, err := h.searcher.Search(ctx, req)
	if err != nil {
		h.logger.Error("search failed",
			zap.String("origin", req.Origin),
			zap.String("destination", req.Destination),
			zap.Error(err),
		)
		if errors.Is(err, aggregator.ErrAllSourcesFailed) {
			return errorJSON(c, http.StatusBadGateway, "upstream_error", "Flight and hotel providers are unavailable")
		}
		return errorJSON(c, http.StatusInternalServerError, "search_error", "Failed to search: "+err.Error())
	}

	s := &session.Session{
		Request:    req,
		Sources:    result.Sources,
		Flights:    result.Flights,
		Hotels:     result.Hotels,
		Criteria:   models.DefaultFilterCriteria(),
		FlightSort: req.FlightSort,
		HotelSort:  req.HotelSort,
	}
	if err := h.store.Create(ctx, s); err != nil {
		h.logger.Error("failed to store search session", zap.Error(err))
		return errorJSON(c, http.StatusInternalServerError, "session_error", "Failed to store search results")
	}

	flights := flightResults(s)
	hotels := hotelResults(s)

	h.logger.Info("search completed",
		zap.String("search_id", s.ID),
		zap.String("origin", req.Origin),
		zap.String("destination", req.Destination),
		zap.Int("flights", flights.Total),
		zap.Int("hotels", hotels.Total),
		zap.Bool("flight_fallback", result.Sources.FlightFallback),
		zap.Bool("hotel_fallback", result.Sources.HotelFallback),
	)

	return c.JSON(http.StatusOK, models.SearchResponse{
		SearchID:     s.ID,
		Request:      req,
		Sources:      s.Sources,
		SearchTimeMs: time.Since(startTime).Milliseconds(),
		ExpiresAt:    s.ExpiresAt,
		Flights:      flights,
		Hotels:       hotels,
	})
}

// flightResults derives the displayed flight list from the session's
// original offers.
func flightResults(s *session.Session) models.FlightResults {
	displayed := filter.ApplyFlights(s.Flights, s.Criteria, s.FlightSort)
	metrics.ResultsReturned.WithLabelValues("flights").Observe(float64(len(displayed)))

	return models.FlightResults{
		SearchID:   s.ID,
		Criteria:   s.Criteria,
		Sort:       s.FlightSort,
		Total:      len(displayed),
		Message:    fmt.Sprintf("%d flights found", len(displayed)),
		Highlights: ranking.Highlights(displayed),
		Flights:    displayed,
	}
}

func hotelResults(s *session.Session) models.HotelResults {
	displayed := filter.ApplyHotels(s.Hotels, s.HotelSort)
	metrics.ResultsReturned.WithLabelValues("hotels").Observe(float64(len(displayed)))

	return models.HotelResults{
		SearchID: s.ID,
		Sort:     s.HotelSort,
		Total:    len(displayed),
		Message:  fmt.Sprintf("%d hotels found", len(displayed)),
		Hotels:   displayed,
	}
}

func errorJSON(c echo.Context, code int, kind, message string) error {
	return c.JSON(code, models.ErrorResponse{
		Error:   kind,
		Message: message,
		Code:    code,
	})
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
