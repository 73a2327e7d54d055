package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dharmasatrya/swifttrip/internal/models"
	"github.com/dharmasatrya/swifttrip/internal/visa"
)

type VisaLookup interface {
	Lookup(ctx context.Context, passport, destination string) (models.VisaResponse, error)
}

type VisaHandler struct {
	client VisaLookup
	logger *zap.Logger
}

func NewVisaHandler(client VisaLookup, logger *zap.Logger) *VisaHandler {
	return &VisaHandler{client: client, logger: logger}
}

// Lookup serves GET /visa?passport=HK&destination=JP. Countries may be given
// as ISO codes or English names.
func (h *VisaHandler) Lookup(c echo.Context) error {
	passport := c.QueryParam("passport")
	destination := c.QueryParam("destination")
	if passport == "" || destination == "" {
		return errorJSON(c, http.StatusBadRequest, "validation_error", "passport and destination are required")
	}

	resp, err := h.client.Lookup(c.Request().Context(), passport, destination)
	if err == nil {
		return c.JSON(http.StatusOK, resp)
	}

	if errors.Is(err, visa.ErrInvalidCountry) {
		return errorJSON(c, http.StatusBadRequest, "validation_error", err.Error())
	}

	h.logger.Warn("visa lookup failed",
		zap.String("passport", passport),
		zap.String("destination", destination),
		zap.Error(err),
	)
	resp.Status = string(visa.StatusUnknown)
	resp.Message = visa.FetchFailedMessage
	return c.JSON(http.StatusBadGateway, resp)
}
