package providers

import (
	"strings"

	"github.com/dharmasatrya/swifttrip/internal/models"
)

const (
	UnknownHotelName  = "Unknown Hotel"
	UnknownCity       = "Unknown City"
	PriceNotAvailable = "Price not available"
	Available         = "Available"
	NotAvailable      = "Not Available"
)

// MapHotel flattens a vendor hotel offer into the list view. Only the first
// room offer is priced.
func MapHotel(offer models.HotelOffer) models.Hotel {
	h := models.Hotel{
		Name:         UnknownHotelName,
		Location:     UnknownCity,
		Price:        PriceNotAvailable,
		Availability: NotAvailable,
	}

	if info := offer.Hotel; info != nil {
		h.HotelID = info.HotelID
		h.Rating = int(info.Rating)
		if name := strings.TrimSpace(info.Name); name != "" {
			h.Name = name
		}
		if info.CityCode != "" {
			h.Location = info.CityCode
		}
	}

	if len(offer.Offers) > 0 {
		if p := offer.Offers[0].Price; p != nil && p.Total != "" && p.Currency != "" {
			h.Price = p.Total + " " + p.Currency + " / night"
		}
	}

	if offer.Available != nil && *offer.Available {
		h.Availability = Available
	}
	return h
}

func MapHotels(offers []models.HotelOffer) []models.Hotel {
	hotels := make([]models.Hotel, 0, len(offers))
	for _, o := range offers {
		hotels = append(hotels, MapHotel(o))
	}
	return hotels
}
