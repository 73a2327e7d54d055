package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dharmasatrya/swifttrip/internal/itinerary"
	"github.com/dharmasatrya/swifttrip/internal/models"
	"github.com/dharmasatrya/swifttrip/internal/providers/data"
)

const (
	mockName = "mock"

	originPlaceholder      = "ORG"
	destinationPlaceholder = "DST"
	cityPlaceholder        = "CTY"
)

var mockBaseDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// MockSource serves the embedded offers, moved onto the requested route and
// dates. Every call returns fresh copies.
type MockSource struct {
	flights []byte
	hotels  []byte
}

func NewMockSource() (*MockSource, error) {
	m := &MockSource{flights: data.FlightsData, hotels: data.HotelsData}

	// fail fast on a broken embed rather than on the first fallback
	if _, err := m.decodeFlights(); err != nil {
		return nil, err
	}
	if _, err := m.decodeHotels(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MockSource) Name() string {
	return mockName
}

func (m *MockSource) decodeFlights() ([]models.FlightOffer, error) {
	var resp models.FlightResponse
	if err := json.Unmarshal(m.flights, &resp); err != nil {
		return nil, fmt.Errorf("decode mock flights: %w", err)
	}
	return resp.Data, nil
}

func (m *MockSource) decodeHotels() ([]models.HotelOffer, error) {
	var resp models.HotelResponse
	if err := json.Unmarshal(m.hotels, &resp); err != nil {
		return nil, fmt.Errorf("decode mock hotels: %w", err)
	}
	return resp.Data, nil
}

func (m *MockSource) SearchFlights(ctx context.Context, req models.SearchRequest) ([]models.FlightOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	offers, err := m.decodeFlights()
	if err != nil {
		return nil, NewSourceError(m.Name(), "flight offers", err)
	}

	departure, err := time.Parse(models.DateLayout, req.DepartureDate)
	if err != nil {
		return nil, NewSourceError(m.Name(), "flight offers", err)
	}
	var ret time.Time
	if req.IsRoundTrip() {
		if ret, err = time.Parse(models.DateLayout, *req.ReturnDate); err != nil {
			return nil, NewSourceError(m.Name(), "flight offers", err)
		}
	}

	route := map[string]string{
		originPlaceholder:      strings.ToUpper(req.Origin),
		destinationPlaceholder: strings.ToUpper(req.Destination),
	}

	for i := range offers {
		o := &offers[i]
		if !req.IsRoundTrip() && len(o.Itineraries) > 1 {
			o.Itineraries = o.Itineraries[:1]
		}
		for j := range o.Itineraries {
			day := departure
			if j == 1 {
				day = ret
			}
			shiftItinerary(&o.Itineraries[j], day.Sub(mockBaseDate), route)
		}
	}
	return offers, nil
}

func shiftItinerary(it *models.Itinerary, offset time.Duration, route map[string]string) {
	for k := range it.Segments {
		seg := &it.Segments[k]
		for _, point := range []*models.AirportInfo{seg.Departure, seg.Arrival} {
			if point == nil {
				continue
			}
			if code, ok := route[point.IATACode]; ok {
				point.IATACode = code
			}
			if at, ok := itinerary.ParseLocalDateTime(point.At); ok {
				point.At = at.Add(offset).Format(itinerary.LocalDateTimeLayout)
			}
		}
	}
}

func (m *MockSource) SearchHotels(ctx context.Context, req models.SearchRequest) ([]models.HotelOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	offers, err := m.decodeHotels()
	if err != nil {
		return nil, NewSourceError(m.Name(), "hotel offers", err)
	}

	city := strings.TrimSpace(req.HotelCity)
	if looksLikeIATACode(city) {
		city = strings.ToUpper(city)
	}
	checkIn, checkOut := StayDates(req)

	for i := range offers {
		if h := offers[i].Hotel; h != nil && h.CityCode == cityPlaceholder {
			h.CityCode = city
		}
		for j := range offers[i].Offers {
			offers[i].Offers[j].CheckInDate = checkIn
			offers[i].Offers[j].CheckOutDate = checkOut
		}
	}
	return offers, nil
}
