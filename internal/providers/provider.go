package providers

import (
	"context"
	"fmt"

	"github.com/dharmasatrya/swifttrip/internal/models"
)

type FlightSource interface {
	Name() string
	SearchFlights(ctx context.Context, req models.SearchRequest) ([]models.FlightOffer, error)
}

type HotelSource interface {
	Name() string
	// SearchHotels returns raw offers for the request's hotel city, stayed
	// from departure to return (or one night for one-way trips).
	SearchHotels(ctx context.Context, req models.SearchRequest) ([]models.HotelOffer, error)
}

type SourceError struct {
	Source    string
	Operation string
	Err       error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Source, e.Operation, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func NewSourceError(source, operation string, err error) *SourceError {
	return &SourceError{
		Source:    source,
		Operation: operation,
		Err:       err,
	}
}

// StatusError is returned when an upstream answers with a non-200 status.
type StatusError struct {
	StatusCode int
	Errors     []models.AmadeusError
}

func (e *StatusError) Error() string {
	if len(e.Errors) > 0 {
		first := e.Errors[0]
		msg := first.Title
		if first.Detail != "" {
			msg += ": " + first.Detail
		}
		return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}
