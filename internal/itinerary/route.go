package itinerary

import (
	"fmt"

	"github.com/dharmasatrya/swifttrip/internal/models"
)

// OutboundRoute summarises the outbound itinerary, e.g.
// "HKG → NRT • Non-stop • PT4H5M". Empty when there is none.
func OutboundRoute(o models.FlightOffer) string {
	return routeSummary(o.Outbound())
}

func ReturnRoute(o models.FlightOffer) string {
	return routeSummary(o.Return())
}

func routeSummary(it *models.Itinerary) string {
	if it == nil || len(it.Segments) == 0 {
		return ""
	}
	first := it.Segments[0]
	last := it.Segments[len(it.Segments)-1]

	return fmt.Sprintf("%s → %s • %s • %s",
		airportCode(first.Departure),
		airportCode(last.Arrival),
		StopsLabel(len(it.Segments)-1),
		it.Duration,
	)
}

func StopsLabel(stops int) string {
	switch stops {
	case 0:
		return "Non-stop"
	case 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}

// CompleteItinerary renders every segment of every itinerary as display
// lines, outbound first.
func CompleteItinerary(o models.FlightOffer) []string {
	var lines []string
	for i, it := range o.Itineraries {
		direction := "OUTBOUND"
		if i > 0 {
			direction = "RETURN"
		}
		lines = append(lines, "=== "+direction+" ===")
		lines = append(lines, segmentLines(it)...)
		lines = append(lines, "")
	}
	return lines
}

func segmentLines(it models.Itinerary) []string {
	var lines []string
	for i, s := range it.Segments {
		depAt, arrAt := "", ""
		if s.Departure != nil {
			depAt = s.Departure.At
		}
		if s.Arrival != nil {
			arrAt = s.Arrival.At
		}

		operator := s.CarrierCode
		if s.Operating != nil && s.Operating.CarrierCode != "" {
			operator = s.Operating.CarrierCode
		}
		aircraft := "Unknown Aircraft"
		if s.Aircraft != nil && s.Aircraft.Code != "" {
			aircraft = s.Aircraft.Code
		}

		lines = append(lines,
			fmt.Sprintf("Segment %d:", i+1),
			fmt.Sprintf("  Flight %s %s", s.CarrierCode, s.Number),
			fmt.Sprintf("  Depart %s (Terminal %s) %s %s", airportCode(s.Departure), terminal(s.Departure), datePart(depAt), clockPart(depAt)),
			fmt.Sprintf("  Arrive %s (Terminal %s) %s • %s", airportCode(s.Arrival), terminal(s.Arrival), clockPart(arrAt), s.Duration),
			fmt.Sprintf("  Operated by %s • %s", operator, aircraft),
		)
		if i < len(it.Segments)-1 {
			lines = append(lines, "  Connection")
		}
	}
	return lines
}

func airportCode(a *models.AirportInfo) string {
	if a == nil {
		return ""
	}
	return a.IATACode
}

func terminal(a *models.AirportInfo) string {
	if a == nil || a.Terminal == "" {
		return "-"
	}
	return a.Terminal
}

func datePart(at string) string {
	if len(at) < 10 {
		return ""
	}
	return at[:10]
}

func clockPart(at string) string {
	if len(at) < 16 {
		return ""
	}
	return at[11:16]
}
