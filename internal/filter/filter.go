package filter

import (
	"github.com/dharmasatrya/swifttrip/internal/itinerary"
	"github.com/dharmasatrya/swifttrip/internal/models"
	"github.com/dharmasatrya/swifttrip/pkg/currency"
)

// ApplyFlights recomputes a displayed list from the original offers. The
// source slice is never modified.
func ApplyFlights(source []models.FlightOffer, criteria models.FilterCriteria, sortBy models.FlightSortOption) []models.FlightOffer {
	filtered := FilterFlights(source, criteria)
	if sortBy == models.SortFlightsNone {
		return filtered
	}
	return SortFlights(filtered, sortBy)
}

func ApplyHotels(source []models.Hotel, sortBy models.HotelSortOption) []models.Hotel {
	if sortBy == models.SortHotelsNone {
		result := make([]models.Hotel, len(source))
		copy(result, source)
		return result
	}
	return SortHotels(source, sortBy)
}

func FilterFlights(offers []models.FlightOffer, criteria models.FilterCriteria) []models.FlightOffer {
	result := make([]models.FlightOffer, 0, len(offers))

	for _, o := range offers {
		if matchesCriteria(o, criteria) {
			result = append(result, o)
		}
	}

	return result
}

// Cheap checks first; the date parse only runs for offers that survive.
func matchesCriteria(o models.FlightOffer, c models.FilterCriteria) bool {
	return matchesStops(o, c) && matchesPrice(o, c) && matchesDepartureTime(o, c)
}

func matchesStops(o models.FlightOffer, c models.FilterCriteria) bool {
	switch itinerary.NumberOfStops(o) {
	case 0:
		return c.AllowNonstop
	case 1:
		return c.Allow1Stop
	default:
		return c.Allow2PlusStops
	}
}

// An unparseable price counts as 0.
func matchesPrice(o models.FlightOffer, c models.FilterCriteria) bool {
	price, _ := currency.ParseAmount(o.TotalPrice())
	return price >= c.MinPrice && price <= c.MaxPrice
}

// Offers with an unknown departure time are never excluded.
func matchesDepartureTime(o models.FlightOffer, c models.FilterCriteria) bool {
	dep, ok := itinerary.DepartureTime(o)
	if !ok {
		return true
	}

	switch BucketOf(dep.Hour()) {
	case Morning:
		return c.AllowMorning
	case Afternoon:
		return c.AllowAfternoon
	case Evening:
		return c.AllowEvening
	default:
		return c.AllowNight
	}
}

type TimeOfDay int

const (
	Night     TimeOfDay = iota // 00-06
	Morning                    // 06-12
	Afternoon                  // 12-18
	Evening                    // 18-24
)

func BucketOf(hour int) TimeOfDay {
	switch {
	case hour >= 6 && hour < 12:
		return Morning
	case hour >= 12 && hour < 18:
		return Afternoon
	case hour >= 18 && hour < 24:
		return Evening
	default:
		return Night
	}
}
