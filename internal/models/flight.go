package models

// FlightResponse is the body of the Amadeus flight-offers search.
type FlightResponse struct {
	Data   []FlightOffer  `json:"data"`
	Errors []AmadeusError `json:"errors,omitempty"`
}

type AmadeusError struct {
	Status int    `json:"status,omitempty"`
	Code   int    `json:"code,omitempty"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
}

type FlightOffer struct {
	ID                     string      `json:"id"`
	Source                 string      `json:"source,omitempty"`
	Price                  *Price      `json:"price,omitempty"`
	Itineraries            []Itinerary `json:"itineraries,omitempty"`
	ValidatingAirlineCodes []string    `json:"validatingAirlineCodes,omitempty"`
	NumberOfBookableSeats  int         `json:"numberOfBookableSeats,omitempty"`
}

// Price amounts are decimal strings as sent by the vendor.
type Price struct {
	Currency   string `json:"currency,omitempty"`
	Total      string `json:"total,omitempty"`
	Base       string `json:"base,omitempty"`
	GrandTotal string `json:"grandTotal,omitempty"`
}

type Itinerary struct {
	Duration string    `json:"duration,omitempty"`
	Segments []Segment `json:"segments,omitempty"`
}

type Segment struct {
	Departure   *AirportInfo `json:"departure,omitempty"`
	Arrival     *AirportInfo `json:"arrival,omitempty"`
	CarrierCode string       `json:"carrierCode,omitempty"`
	Number      string       `json:"number,omitempty"`
	Aircraft    *Aircraft    `json:"aircraft,omitempty"`
	Operating   *Operating   `json:"operating,omitempty"`
	Duration    string       `json:"duration,omitempty"`
}

type AirportInfo struct {
	IATACode string `json:"iataCode,omitempty"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at,omitempty"`
}

type Aircraft struct {
	Code string `json:"code,omitempty"`
}

type Operating struct {
	CarrierCode string `json:"carrierCode,omitempty"`
}

// Outbound returns the first itinerary, or nil when the offer has none.
func (o FlightOffer) Outbound() *Itinerary {
	if len(o.Itineraries) == 0 {
		return nil
	}
	return &o.Itineraries[0]
}

// Return returns the second itinerary of a round trip, or nil.
func (o FlightOffer) Return() *Itinerary {
	if len(o.Itineraries) < 2 {
		return nil
	}
	return &o.Itineraries[1]
}

func (o FlightOffer) TotalPrice() string {
	if o.Price == nil {
		return ""
	}
	return o.Price.Total
}
