package filter

import (
	"strings"

	"github.com/dharmasatrya/swifttrip/internal/models"
)

// RemoveDuplicateFlights keeps the first offer for each outbound flight-number
// sequence. Offers without any outbound flight numbers are dropped.
func RemoveDuplicateFlights(offers []models.FlightOffer) []models.FlightOffer {
	return DedupeFlights(offers, false)
}

// DedupeFlights is RemoveDuplicateFlights with a choice for offers that have
// no flight-number fingerprint: with keepUnkeyed they are keyed by offer ID
// instead of being dropped.
func DedupeFlights(offers []models.FlightOffer, keepUnkeyed bool) []models.FlightOffer {
	seen := make(map[string]bool, len(offers))
	result := make([]models.FlightOffer, 0, len(offers))

	for _, o := range offers {
		key, ok := Fingerprint(o)
		if !ok {
			if !keepUnkeyed {
				continue
			}
			key = "id:" + o.ID
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, o)
	}

	return result
}

// Fingerprint joins carrier code and flight number of every outbound
// segment, e.g. "CX500,CX450".
func Fingerprint(o models.FlightOffer) (string, bool) {
	out := o.Outbound()
	if out == nil || len(out.Segments) == 0 {
		return "", false
	}

	parts := make([]string, len(out.Segments))
	for i, s := range out.Segments {
		parts[i] = s.CarrierCode + s.Number
	}
	key := strings.Join(parts, ",")

	if strings.TrimSpace(key) == "" {
		return "", false
	}
	return key, true
}
