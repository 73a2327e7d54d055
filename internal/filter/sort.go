package filter

import (
	"math"
	"sort"

	"github.com/dharmasatrya/swifttrip/internal/itinerary"
	"github.com/dharmasatrya/swifttrip/internal/models"
	"github.com/dharmasatrya/swifttrip/pkg/currency"
)

const unknownHour = math.MaxInt

// SortFlights returns a stably sorted copy. Offers whose sort key cannot be
// derived always end up last, whatever the direction.
func SortFlights(offers []models.FlightOffer, sortBy models.FlightSortOption) []models.FlightOffer {
	sorted := make([]models.FlightOffer, len(offers))
	copy(sorted, offers)

	if len(sorted) <= 1 {
		return sorted
	}

	switch sortBy {
	case models.SortFlightsPriceAsc, models.SortFlightsPriceDesc:
		keys := make([]priceKey, len(sorted))
		for i, o := range sorted {
			keys[i].value, keys[i].ok = currency.ParseAmount(o.TotalPrice())
		}
		sortByKeys(sorted, keys, func(a, b priceKey) bool {
			return a.less(b, sortBy == models.SortFlightsPriceDesc)
		})

	case models.SortFlightsDuration:
		keys := make([]int, len(sorted))
		for i, o := range sorted {
			keys[i] = itinerary.TotalDurationMinutes(o)
		}
		sortByKeys(sorted, keys, func(a, b int) bool { return a < b })

	case models.SortFlightsDepartureMorning:
		keys := make([]int, len(sorted))
		for i, o := range sorted {
			t, ok := itinerary.DepartureTime(o)
			keys[i] = morningRelativeHour(t.Hour(), ok)
		}
		sortByKeys(sorted, keys, func(a, b int) bool { return a < b })

	case models.SortFlightsArrivalMorning:
		keys := make([]int, len(sorted))
		for i, o := range sorted {
			t, ok := itinerary.ArrivalTime(o)
			keys[i] = morningRelativeHour(t.Hour(), ok)
		}
		sortByKeys(sorted, keys, func(a, b int) bool { return a < b })
	}

	return sorted
}

// The day starts at 06:00: hours before that rank as hour+24.
func morningRelativeHour(hour int, known bool) int {
	if !known {
		return unknownHour
	}
	if hour < 6 {
		return hour + 24
	}
	return hour
}

func SortHotels(hotels []models.Hotel, sortBy models.HotelSortOption) []models.Hotel {
	sorted := make([]models.Hotel, len(hotels))
	copy(sorted, hotels)

	if len(sorted) <= 1 {
		return sorted
	}

	switch sortBy {
	case models.SortHotelsPriceAsc, models.SortHotelsPriceDesc:
		keys := make([]priceKey, len(sorted))
		for i, h := range sorted {
			keys[i].value, keys[i].ok = currency.ExtractAmount(h.Price)
		}
		sortByKeys(sorted, keys, func(a, b priceKey) bool {
			return a.less(b, sortBy == models.SortHotelsPriceDesc)
		})

	case models.SortHotelsRatingDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})

	case models.SortHotelsNameAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Name < sorted[j].Name
		})
	}

	return sorted
}

type priceKey struct {
	value float64
	ok    bool
}

func (a priceKey) less(b priceKey, descending bool) bool {
	if a.ok != b.ok {
		return a.ok
	}
	if !a.ok {
		return false
	}
	if descending {
		return a.value > b.value
	}
	return a.value < b.value
}

// sortByKeys stably sorts items by keys computed once per element.
func sortByKeys[T, K any](items []T, keys []K, less func(a, b K) bool) {
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return less(keys[idx[i]], keys[idx[j]])
	})

	reordered := make([]T, len(items))
	for i, k := range idx {
		reordered[i] = items[k]
	}
	copy(items, reordered)
}
