package models

import "time"

type SourceMetadata struct {
	FlightSource   string `json:"flight_source"`
	HotelSource    string `json:"hotel_source"`
	FlightFallback bool   `json:"flight_fallback"`
	HotelFallback  bool   `json:"hotel_fallback"`
}

type Highlights struct {
	CheapestID  string `json:"cheapest_id,omitempty"`
	FastestID   string `json:"fastest_id,omitempty"`
	BestValueID string `json:"best_value_id,omitempty"`
}

type FlightResults struct {
	SearchID   string           `json:"search_id"`
	Criteria   FilterCriteria   `json:"criteria"`
	Sort       FlightSortOption `json:"sort,omitempty"`
	Total      int              `json:"total"`
	Message    string           `json:"message"`
	Highlights Highlights       `json:"highlights"`
	Flights    []FlightOffer    `json:"flights"`
}

type HotelResults struct {
	SearchID string          `json:"search_id"`
	Sort     HotelSortOption `json:"sort,omitempty"`
	Total    int             `json:"total"`
	Message  string          `json:"message"`
	Hotels   []Hotel         `json:"hotels"`
}

type SearchResponse struct {
	SearchID     string         `json:"search_id"`
	Request      SearchRequest  `json:"request"`
	Sources      SourceMetadata `json:"sources"`
	SearchTimeMs int64          `json:"search_time_ms"`
	ExpiresAt    time.Time      `json:"expires_at"`
	Flights      FlightResults  `json:"flights"`
	Hotels       HotelResults   `json:"hotels"`
}

type FlightDetailsResponse struct {
	SearchID      string      `json:"search_id"`
	Offer         FlightOffer `json:"offer"`
	Stops         int         `json:"stops"`
	OutboundRoute string      `json:"outbound_route"`
	ReturnRoute   string      `json:"return_route,omitempty"`
	Itinerary     []string    `json:"itinerary"`
}

type VisaResponse struct {
	Passport        string `json:"passport"`
	PassportName    string `json:"passport_name"`
	Destination     string `json:"destination"`
	DestinationName string `json:"destination_name"`
	Status          string `json:"status"`
	MaxStayDays     *int   `json:"max_stay_days,omitempty"`
	Message         string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
