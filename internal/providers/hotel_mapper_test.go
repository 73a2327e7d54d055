package providers

import (
	"testing"

	"github.com/dharmasatrya/swifttrip/internal/models"
)

func boolPtr(b bool) *bool { return &b }

func TestMapHotel_FullOffer(t *testing.T) {
	offer := models.HotelOffer{
		Hotel:     &models.HotelInfo{HotelID: "HLTYO001", Name: "Shinjuku Grand", CityCode: "TYO", Rating: 4},
		Available: boolPtr(true),
		Offers: []models.HotelOfferDetail{
			{Price: &models.HotelPrice{Total: "180.00", Currency: "USD"}},
			{Price: &models.HotelPrice{Total: "999.00", Currency: "USD"}},
		},
	}

	h := MapHotel(offer)

	if h.Name != "Shinjuku Grand" {
		t.Errorf("expected name Shinjuku Grand, got %s", h.Name)
	}
	if h.Location != "TYO" {
		t.Errorf("expected location TYO, got %s", h.Location)
	}
	if h.Price != "180.00 USD / night" {
		t.Errorf("expected first offer price text, got %q", h.Price)
	}
	if h.Availability != "Available" {
		t.Errorf("expected Available, got %s", h.Availability)
	}
	if h.Rating != 4 || h.HotelID != "HLTYO001" {
		t.Errorf("unexpected id/rating: %s/%d", h.HotelID, h.Rating)
	}
}

func TestMapHotel_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		offer models.HotelOffer
		want  models.Hotel
	}{
		{
			name:  "empty offer",
			offer: models.HotelOffer{},
			want: models.Hotel{
				Name: "Unknown Hotel", Location: "Unknown City",
				Price: "Price not available", Availability: "Not Available",
			},
		},
		{
			name: "price without currency",
			offer: models.HotelOffer{
				Hotel:     &models.HotelInfo{Name: "Harbour View"},
				Available: boolPtr(false),
				Offers:    []models.HotelOfferDetail{{Price: &models.HotelPrice{Total: "90.00"}}},
			},
			want: models.Hotel{
				Name: "Harbour View", Location: "Unknown City",
				Price: "Price not available", Availability: "Not Available",
			},
		},
		{
			name: "blank name",
			offer: models.HotelOffer{
				Hotel:     &models.HotelInfo{Name: "  ", CityCode: "HKG"},
				Available: boolPtr(true),
			},
			want: models.Hotel{
				Name: "Unknown Hotel", Location: "HKG",
				Price: "Price not available", Availability: "Available",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapHotel(tt.offer)
			if got != tt.want {
				t.Errorf("MapHotel() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMapHotels_PreservesOrder(t *testing.T) {
	offers := []models.HotelOffer{
		{Hotel: &models.HotelInfo{Name: "B"}},
		{Hotel: &models.HotelInfo{Name: "A"}},
	}

	hotels := MapHotels(offers)
	if len(hotels) != 2 || hotels[0].Name != "B" || hotels[1].Name != "A" {
		t.Errorf("unexpected mapping: %+v", hotels)
	}
}
