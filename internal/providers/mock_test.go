package providers

import (
	"context"
	"strings"
	"testing"

	"github.com/dharmasatrya/swifttrip/internal/models"
)

func strPtr(s string) *string { return &s }

func TestMockSource_SearchFlights_RoundTrip(t *testing.T) {
	m, err := NewMockSource()
	if err != nil {
		t.Fatalf("NewMockSource: %v", err)
	}

	req := models.SearchRequest{
		Origin: "hkg", Destination: "NRT",
		DepartureDate: "2025-03-10", ReturnDate: strPtr("2025-03-15"), Adults: 1,
	}
	offers, err := m.SearchFlights(context.Background(), req)
	if err != nil {
		t.Fatalf("SearchFlights: %v", err)
	}
	if len(offers) == 0 {
		t.Fatal("expected mock offers")
	}

	for _, o := range offers {
		if len(o.Itineraries) != 2 {
			t.Fatalf("offer %s: expected 2 itineraries, got %d", o.ID, len(o.Itineraries))
		}
		out := o.Itineraries[0].Segments
		if out[0].Departure.IATACode != "HKG" {
			t.Errorf("offer %s: expected departure HKG, got %s", o.ID, out[0].Departure.IATACode)
		}
		if out[len(out)-1].Arrival.IATACode != "NRT" {
			t.Errorf("offer %s: expected arrival NRT, got %s", o.ID, out[len(out)-1].Arrival.IATACode)
		}
		if !strings.HasPrefix(out[0].Departure.At, "2025-03-10") {
			t.Errorf("offer %s: expected outbound on 2025-03-10, got %s", o.ID, out[0].Departure.At)
		}
		back := o.Itineraries[1].Segments
		if !strings.HasPrefix(back[0].Departure.At, "2025-03-15") {
			t.Errorf("offer %s: expected return on 2025-03-15, got %s", o.ID, back[0].Departure.At)
		}
	}
}

func TestMockSource_SearchFlights_OneWayDropsReturn(t *testing.T) {
	m, _ := NewMockSource()

	req := models.SearchRequest{Origin: "HKG", Destination: "TPE", DepartureDate: "2025-06-01", Adults: 2}
	offers, err := m.SearchFlights(context.Background(), req)
	if err != nil {
		t.Fatalf("SearchFlights: %v", err)
	}
	for _, o := range offers {
		if len(o.Itineraries) != 1 {
			t.Errorf("offer %s: expected only the outbound itinerary, got %d", o.ID, len(o.Itineraries))
		}
	}
}

func TestMockSource_ReturnsFreshCopies(t *testing.T) {
	m, _ := NewMockSource()
	req := models.SearchRequest{Origin: "HKG", Destination: "NRT", DepartureDate: "2025-03-10", Adults: 1}

	first, _ := m.SearchFlights(context.Background(), req)
	first[0].ID = "changed"

	second, _ := m.SearchFlights(context.Background(), req)
	if second[0].ID == "changed" {
		t.Error("mock source leaked a shared slice")
	}
}

func TestMockSource_SearchHotels(t *testing.T) {
	m, _ := NewMockSource()

	req := models.SearchRequest{
		Origin: "HKG", Destination: "NRT", HotelCity: "tyo",
		DepartureDate: "2025-03-10", ReturnDate: strPtr("2025-03-12"), Adults: 1,
	}
	offers, err := m.SearchHotels(context.Background(), req)
	if err != nil {
		t.Fatalf("SearchHotels: %v", err)
	}
	if len(offers) == 0 {
		t.Fatal("expected mock hotels")
	}
	for _, o := range offers {
		if o.Hotel.CityCode != "TYO" {
			t.Errorf("hotel %s: expected city TYO, got %s", o.Hotel.HotelID, o.Hotel.CityCode)
		}
		for _, d := range o.Offers {
			if d.CheckInDate != "2025-03-10" || d.CheckOutDate != "2025-03-12" {
				t.Errorf("hotel %s: unexpected stay %s..%s", o.Hotel.HotelID, d.CheckInDate, d.CheckOutDate)
			}
		}
	}
}

func TestMockSource_CancelledContext(t *testing.T) {
	m, _ := NewMockSource()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := m.SearchFlights(ctx, models.SearchRequest{DepartureDate: "2025-03-10"}); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestStayDates(t *testing.T) {
	tests := []struct {
		name    string
		req     models.SearchRequest
		wantIn  string
		wantOut string
	}{
		{"one way", models.SearchRequest{DepartureDate: "2025-03-31"}, "2025-03-31", "2025-04-01"},
		{"round trip", models.SearchRequest{DepartureDate: "2025-03-10", ReturnDate: strPtr("2025-03-14")}, "2025-03-10", "2025-03-14"},
		{"same day return", models.SearchRequest{DepartureDate: "2025-03-10", ReturnDate: strPtr("2025-03-10")}, "2025-03-10", "2025-03-11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out := StayDates(tt.req)
			if in != tt.wantIn || out != tt.wantOut {
				t.Errorf("StayDates() = %s, %s; want %s, %s", in, out, tt.wantIn, tt.wantOut)
			}
		})
	}
}
