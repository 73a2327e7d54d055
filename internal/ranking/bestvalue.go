package ranking

import (
	"math"

	"github.com/dharmasatrya/swifttrip/internal/itinerary"
	"github.com/dharmasatrya/swifttrip/internal/models"
	"github.com/dharmasatrya/swifttrip/pkg/currency"
)

const (
	PriceWeight    = 0.5
	DurationWeight = 0.3
	StopsWeight    = 0.2
)

type scored struct {
	id       string
	price    float64
	duration int
	stops    int
}

// Highlights picks the cheapest, fastest and best-value offers of a list.
// Offers without a parseable price or a duration are not eligible. Ties go
// to the earlier offer.
func Highlights(offers []models.FlightOffer) models.Highlights {
	candidates := make([]scored, 0, len(offers))
	for _, o := range offers {
		price, ok := currency.ParseAmount(o.TotalPrice())
		duration := itinerary.TotalDurationMinutes(o)
		if !ok || duration == itinerary.MaxDuration {
			continue
		}
		candidates = append(candidates, scored{
			id:       o.ID,
			price:    price,
			duration: duration,
			stops:    itinerary.NumberOfStops(o),
		})
	}

	var h models.Highlights
	if len(candidates) == 0 {
		return h
	}

	maxPrice, maxDuration := findMaxima(candidates)

	cheapest, fastest, best := candidates[0], candidates[0], candidates[0]
	bestScore := CalculateBestValue(best.price, best.duration, best.stops, maxPrice, maxDuration)

	for _, c := range candidates[1:] {
		if c.price < cheapest.price {
			cheapest = c
		}
		if c.duration < fastest.duration {
			fastest = c
		}
		if score := CalculateBestValue(c.price, c.duration, c.stops, maxPrice, maxDuration); score < bestScore {
			best, bestScore = c, score
		}
	}

	h.CheapestID = cheapest.id
	h.FastestID = fastest.id
	h.BestValueID = best.id
	return h
}

// Lower score = better value
func CalculateBestValue(price float64, durationMinutes, stops int, maxPrice, maxDuration float64) float64 {
	priceScore := 0.0
	if maxPrice > 0 {
		priceScore = (price / maxPrice) * 100
	}

	durationScore := 0.0
	if maxDuration > 0 {
		durationScore = (float64(durationMinutes) / maxDuration) * 100
	}

	stopsScore := float64(stops) * 15
	score := (priceScore * PriceWeight) + (durationScore * DurationWeight) + (stopsScore * StopsWeight)

	return math.Round(score*100) / 100
}

func findMaxima(candidates []scored) (float64, float64) {
	maxPrice, maxDuration := 0.0, 0.0
	for _, c := range candidates {
		if c.price > maxPrice {
			maxPrice = c.price
		}
		if d := float64(c.duration); d > maxDuration {
			maxDuration = d
		}
	}
	return maxPrice, maxDuration
}
