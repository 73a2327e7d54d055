// Package session keeps the original offer lists of a search together with
// the filter and sort state applied to them, so every change re-derives the
// displayed lists from the unfiltered source.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dharmasatrya/swifttrip/internal/models"
)

var ErrNotFound = errors.New("search session not found or expired")

type Session struct {
	ID         string                  `json:"id"`
	Request    models.SearchRequest    `json:"request"`
	Sources    models.SourceMetadata   `json:"sources"`
	Flights    []models.FlightOffer    `json:"flights"`
	Hotels     []models.Hotel          `json:"hotels"`
	Criteria   models.FilterCriteria   `json:"criteria"`
	FlightSort models.FlightSortOption `json:"flight_sort,omitempty"`
	HotelSort  models.HotelSortOption  `json:"hotel_sort,omitempty"`
	CreatedAt  time.Time               `json:"created_at"`
	ExpiresAt  time.Time               `json:"expires_at"`
}

// FindFlight looks an offer up in the original list.
func (s *Session) FindFlight(offerID string) (models.FlightOffer, bool) {
	for _, o := range s.Flights {
		if o.ID == offerID {
			return o, true
		}
	}
	return models.FlightOffer{}, false
}

type Store interface {
	// Create assigns a new ID and timestamps before persisting.
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	// Save overwrites the session and extends its lifetime.
	Save(ctx context.Context, s *Session) error
	Close() error
}

func newID() string {
	return uuid.NewString()
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
