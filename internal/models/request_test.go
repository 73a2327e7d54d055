package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestSearchRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     SearchRequest
		wantErr error
	}{
		{
			name: "valid one way",
			req:  SearchRequest{Origin: "HKG", Destination: "NRT", DepartureDate: "2025-03-01", Adults: 1},
		},
		{
			name: "same day return",
			req:  SearchRequest{Origin: "HKG", Destination: "NRT", DepartureDate: "2025-03-01", ReturnDate: strPtr("2025-03-01"), Adults: 1},
		},
		{
			name:    "missing origin",
			req:     SearchRequest{Destination: "NRT", DepartureDate: "2025-03-01", Adults: 1},
			wantErr: ErrMissingOrigin,
		},
		{
			name:    "same origin and destination",
			req:     SearchRequest{Origin: "hkg", Destination: "HKG", DepartureDate: "2025-03-01", Adults: 1},
			wantErr: ErrSameOriginDestination,
		},
		{
			name:    "bad departure date",
			req:     SearchRequest{Origin: "HKG", Destination: "NRT", DepartureDate: "01/03/2025", Adults: 1},
			wantErr: ErrInvalidDepartureDate,
		},
		{
			name:    "return before departure",
			req:     SearchRequest{Origin: "HKG", Destination: "NRT", DepartureDate: "2025-03-05", ReturnDate: strPtr("2025-03-01"), Adults: 1},
			wantErr: ErrReturnBeforeDeparture,
		},
		{
			name:    "children without adult",
			req:     SearchRequest{Origin: "HKG", Destination: "NRT", DepartureDate: "2025-03-01", Children: 2},
			wantErr: ErrInvalidPassengers,
		},
		{
			name:    "too many passengers",
			req:     SearchRequest{Origin: "HKG", Destination: "NRT", DepartureDate: "2025-03-01", Adults: 5, Children: 5},
			wantErr: ErrInvalidPassengers,
		},
		{
			name:    "unknown flight sort",
			req:     SearchRequest{Origin: "HKG", Destination: "NRT", DepartureDate: "2025-03-01", Adults: 1, FlightSort: "cheapest"},
			wantErr: ErrInvalidFlightSort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSearchRequest_ValidateDefaults(t *testing.T) {
	req := SearchRequest{Origin: " HKG ", Destination: "NRT", DepartureDate: "2025-03-01", FlightSort: "PRICE_ASC"}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if req.Origin != "HKG" {
		t.Errorf("expected trimmed origin, got %q", req.Origin)
	}
	if req.Adults != 1 {
		t.Errorf("expected one adult by default, got %d", req.Adults)
	}
	if req.HotelCity != "NRT" {
		t.Errorf("expected hotel city to default to destination, got %q", req.HotelCity)
	}
	if req.FlightSort != SortFlightsPriceAsc {
		t.Errorf("expected normalized sort option, got %q", req.FlightSort)
	}
	if req.IsRoundTrip() {
		t.Error("one way request reported as round trip")
	}
}

func TestParseSortOptions(t *testing.T) {
	if opt, err := ParseFlightSortOption(""); err != nil || opt != SortFlightsNone {
		t.Errorf("empty flight sort: got %q, %v", opt, err)
	}
	if _, err := ParseFlightSortOption("fastest"); !errors.Is(err, ErrInvalidSortOption) {
		t.Errorf("expected ErrInvalidSortOption, got %v", err)
	}
	if opt, err := ParseHotelSortOption(" Rating_Desc "); err != nil || opt != SortHotelsRatingDesc {
		t.Errorf("hotel sort: got %q, %v", opt, err)
	}
}

func TestStarRating_UnmarshalJSON(t *testing.T) {
	var payload struct {
		A StarRating `json:"a"`
		B StarRating `json:"b"`
		C StarRating `json:"c"`
		D StarRating `json:"d"`
	}
	if err := json.Unmarshal([]byte(`{"a":4,"b":"5","c":null,"d":"n/a"}`), &payload); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if payload.A != 4 || payload.B != 5 || payload.C != 0 || payload.D != 0 {
		t.Errorf("unexpected ratings: %+v", payload)
	}
}

func TestFlightOffer_Accessors(t *testing.T) {
	var empty FlightOffer
	if empty.Outbound() != nil || empty.Return() != nil || empty.TotalPrice() != "" {
		t.Error("expected zero values for an empty offer")
	}

	o := FlightOffer{
		Itineraries: []Itinerary{{Duration: "PT2H"}, {Duration: "PT3H"}},
		Price:       &Price{Total: "250.00"},
	}
	if o.Return() == nil || o.Return().Duration != "PT3H" {
		t.Errorf("unexpected return itinerary: %+v", o.Return())
	}
	if o.TotalPrice() != "250.00" {
		t.Errorf("unexpected total price %q", o.TotalPrice())
	}
}
