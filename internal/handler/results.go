package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dharmasatrya/swifttrip/internal/itinerary"
	"github.com/dharmasatrya/swifttrip/internal/models"
	"github.com/dharmasatrya/swifttrip/internal/session"
)

type sortRequest struct {
	Sort string `json:"sort"`
}

// loadSession writes the error response itself and returns nil when the
// session cannot be used.
func (h *SearchHandler) loadSession(c echo.Context) (*session.Session, error) {
	s, err := h.store.Get(c.Request().Context(), c.Param("id"))
	if err == nil {
		return s, nil
	}
	if errors.Is(err, session.ErrNotFound) {
		return nil, errorJSON(c, http.StatusNotFound, "session_not_found", "Search session not found or expired")
	}
	h.logger.Error("failed to load search session", zap.String("search_id", c.Param("id")), zap.Error(err))
	return nil, errorJSON(c, http.StatusInternalServerError, "session_error", "Failed to load search session")
}

// saveSession reports false after writing the error response.
func (h *SearchHandler) saveSession(c echo.Context, s *session.Session) (bool, error) {
	err := h.store.Save(c.Request().Context(), s)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, session.ErrNotFound) {
		return false, errorJSON(c, http.StatusNotFound, "session_not_found", "Search session not found or expired")
	}
	h.logger.Error("failed to save search session", zap.String("search_id", s.ID), zap.Error(err))
	return false, errorJSON(c, http.StatusInternalServerError, "session_error", "Failed to save search session")
}

func (h *SearchHandler) GetFlights(c echo.Context) error {
	s, err := h.loadSession(c)
	if s == nil {
		return err
	}
	return c.JSON(http.StatusOK, flightResults(s))
}

func (h *SearchHandler) GetHotels(c echo.Context) error {
	s, err := h.loadSession(c)
	if s == nil {
		return err
	}
	return c.JSON(http.StatusOK, hotelResults(s))
}

// UpdateFlightFilter replaces the whole criteria value. Fields missing from
// the body take their default.
func (h *SearchHandler) UpdateFlightFilter(c echo.Context) error {
	s, err := h.loadSession(c)
	if s == nil {
		return err
	}

	criteria := models.DefaultFilterCriteria()
	if err := c.Bind(&criteria); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "Failed to parse filter criteria: "+err.Error())
	}
	if criteria.MinPrice > criteria.MaxPrice {
		return errorJSON(c, http.StatusBadRequest, "validation_error", models.ErrInvalidPriceRange.Error())
	}

	s.Criteria = criteria
	if ok, err := h.saveSession(c, s); !ok {
		return err
	}

	h.logger.Debug("flight filter applied", zap.String("search_id", s.ID))
	return c.JSON(http.StatusOK, flightResults(s))
}

func (h *SearchHandler) ResetFlightFilter(c echo.Context) error {
	s, err := h.loadSession(c)
	if s == nil {
		return err
	}

	s.Criteria = models.DefaultFilterCriteria()
	if ok, err := h.saveSession(c, s); !ok {
		return err
	}
	return c.JSON(http.StatusOK, flightResults(s))
}

func (h *SearchHandler) UpdateFlightSort(c echo.Context) error {
	s, err := h.loadSession(c)
	if s == nil {
		return err
	}

	var body sortRequest
	if err := c.Bind(&body); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "Failed to parse sort option: "+err.Error())
	}
	option, err := models.ParseFlightSortOption(body.Sort)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "validation_error", models.ErrInvalidFlightSort.Error())
	}

	s.FlightSort = option
	if ok, err := h.saveSession(c, s); !ok {
		return err
	}
	return c.JSON(http.StatusOK, flightResults(s))
}

func (h *SearchHandler) UpdateHotelSort(c echo.Context) error {
	s, err := h.loadSession(c)
	if s == nil {
		return err
	}

	var body sortRequest
	if err := c.Bind(&body); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "Failed to parse sort option: "+err.Error())
	}
	option, err := models.ParseHotelSortOption(body.Sort)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "validation_error", models.ErrInvalidHotelSort.Error())
	}

	s.HotelSort = option
	if ok, err := h.saveSession(c, s); !ok {
		return err
	}
	return c.JSON(http.StatusOK, hotelResults(s))
}

func (h *SearchHandler) GetFlightDetails(c echo.Context) error {
	s, err := h.loadSession(c)
	if s == nil {
		return err
	}

	offer, ok := s.FindFlight(c.Param("offerId"))
	if !ok {
		return errorJSON(c, http.StatusNotFound, "offer_not_found", "Flight offer not found in this search")
	}

	resp := models.FlightDetailsResponse{
		SearchID:      s.ID,
		Offer:         offer,
		Stops:         itinerary.NumberOfStops(offer),
		OutboundRoute: itinerary.OutboundRoute(offer),
		Itinerary:     itinerary.CompleteItinerary(offer),
	}
	if offer.Return() != nil {
		resp.ReturnRoute = itinerary.ReturnRoute(offer)
	}
	return c.JSON(http.StatusOK, resp)
}
