package filter

import (
	"testing"

	"github.com/dharmasatrya/swifttrip/internal/models"
)

func offerWithFlights(id string, flightNumbers ...[2]string) models.FlightOffer {
	segments := make([]models.Segment, len(flightNumbers))
	for i, fn := range flightNumbers {
		segments[i] = models.Segment{CarrierCode: fn[0], Number: fn[1]}
	}
	return models.FlightOffer{
		ID:          id,
		Itineraries: []models.Itinerary{{Duration: "PT3H", Segments: segments}},
	}
}

func TestRemoveDuplicateFlights(t *testing.T) {
	offers := []models.FlightOffer{
		offerWithFlights("1", [2]string{"AF", "123"}),
		offerWithFlights("2", [2]string{"AF", "123"}),
		offerWithFlights("3"),
		offerWithFlights("4", [2]string{"AF", "123"}, [2]string{"KL", "9"}),
		{ID: "5"},
		offerWithFlights("6", [2]string{"", ""}),
	}

	got := RemoveDuplicateFlights(offers)
	if !equalIDs(got, "1", "4") {
		t.Errorf("expected [1 4], got %v", ids(got))
	}
}

func TestRemoveDuplicateFlights_IgnoresReturnLeg(t *testing.T) {
	a := offerWithFlights("a", [2]string{"CX", "500"})
	a.Itineraries = append(a.Itineraries, models.Itinerary{Segments: []models.Segment{{CarrierCode: "CX", Number: "501"}}})
	b := offerWithFlights("b", [2]string{"CX", "500"})
	b.Itineraries = append(b.Itineraries, models.Itinerary{Segments: []models.Segment{{CarrierCode: "CX", Number: "509"}}})

	got := RemoveDuplicateFlights([]models.FlightOffer{a, b})
	if !equalIDs(got, "a") {
		t.Errorf("expected only the first offer, got %v", ids(got))
	}
}

func TestRemoveDuplicateFlights_Idempotent(t *testing.T) {
	offers := []models.FlightOffer{
		offerWithFlights("1", [2]string{"CX", "1"}),
		offerWithFlights("2", [2]string{"CX", "2"}),
		offerWithFlights("3", [2]string{"CX", "1"}),
		offerWithFlights("4"),
		offerWithFlights("5", [2]string{"CX", "2"}, [2]string{"JL", "7"}),
	}

	once := RemoveDuplicateFlights(offers)
	twice := RemoveDuplicateFlights(once)
	if !equalIDs(twice, ids(once)...) {
		t.Errorf("dedup not idempotent: once=%v twice=%v", ids(once), ids(twice))
	}
}

func TestDedupeFlights_KeepUnkeyed(t *testing.T) {
	offers := []models.FlightOffer{
		offerWithFlights("1", [2]string{"AF", "123"}),
		offerWithFlights("2"),
		{ID: "3"},
		{ID: "3"},
		offerWithFlights("4", [2]string{"AF", "123"}),
	}

	got := DedupeFlights(offers, true)
	if !equalIDs(got, "1", "2", "3") {
		t.Errorf("expected [1 2 3], got %v", ids(got))
	}
}

func TestFingerprint(t *testing.T) {
	o := offerWithFlights("x", [2]string{"CX", "500"}, [2]string{"CX", "450"})
	key, ok := Fingerprint(o)
	if !ok || key != "CX500,CX450" {
		t.Errorf("unexpected fingerprint %q (ok=%v)", key, ok)
	}
}
