// Package itinerary derives comparable scalar fields from the nested
// itinerary and segment structure of a flight offer.
package itinerary

import (
	"time"

	"github.com/dharmasatrya/swifttrip/internal/models"
)

func outboundSegments(o models.FlightOffer) []models.Segment {
	out := o.Outbound()
	if out == nil {
		return nil
	}
	return out.Segments
}

// NumberOfStops counts connections on the outbound itinerary.
func NumberOfStops(o models.FlightOffer) int {
	segments := outboundSegments(o)
	if len(segments) == 0 {
		return 0
	}
	return len(segments) - 1
}

// TotalDurationMinutes returns MaxDuration when the outbound duration is absent.
func TotalDurationMinutes(o models.FlightOffer) int {
	out := o.Outbound()
	if out == nil || out.Duration == "" {
		return MaxDuration
	}
	return ParseISODuration(out.Duration)
}

// DepartureTime is the local departure of the first outbound segment.
func DepartureTime(o models.FlightOffer) (time.Time, bool) {
	segments := outboundSegments(o)
	if len(segments) == 0 || segments[0].Departure == nil {
		return time.Time{}, false
	}
	return ParseLocalDateTime(segments[0].Departure.At)
}

// ArrivalTime is the local arrival of the last outbound segment.
func ArrivalTime(o models.FlightOffer) (time.Time, bool) {
	segments := outboundSegments(o)
	if len(segments) == 0 {
		return time.Time{}, false
	}
	last := segments[len(segments)-1]
	if last.Arrival == nil {
		return time.Time{}, false
	}
	return ParseLocalDateTime(last.Arrival.At)
}
