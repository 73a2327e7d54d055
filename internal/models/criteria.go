package models

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 2000
)

// FilterCriteria is replaced wholesale on every change; nothing mutates a
// criteria value after it has been applied.
type FilterCriteria struct {
	AllowNonstop    bool    `json:"allow_nonstop"`
	Allow1Stop      bool    `json:"allow_1_stop"`
	Allow2PlusStops bool    `json:"allow_2_plus_stops"`
	MinPrice        float64 `json:"min_price"`
	MaxPrice        float64 `json:"max_price"`
	AllowMorning    bool    `json:"allow_morning"`
	AllowAfternoon  bool    `json:"allow_afternoon"`
	AllowEvening    bool    `json:"allow_evening"`
	AllowNight      bool    `json:"allow_night"`
}

func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		AllowNonstop:    true,
		Allow1Stop:      true,
		Allow2PlusStops: true,
		MinPrice:        DefaultMinPrice,
		MaxPrice:        DefaultMaxPrice,
		AllowMorning:    true,
		AllowAfternoon:  true,
		AllowEvening:    true,
		AllowNight:      true,
	}
}

var ErrInvalidSortOption = errors.New("invalid sort option")

type FlightSortOption string

const (
	SortFlightsNone             FlightSortOption = ""
	SortFlightsPriceAsc         FlightSortOption = "price_asc"
	SortFlightsPriceDesc        FlightSortOption = "price_desc"
	SortFlightsDuration         FlightSortOption = "duration"
	SortFlightsDepartureMorning FlightSortOption = "departure_morning"
	SortFlightsArrivalMorning   FlightSortOption = "arrival_morning"
)

var flightSortOptions = []FlightSortOption{
	SortFlightsPriceAsc,
	SortFlightsPriceDesc,
	SortFlightsDuration,
	SortFlightsDepartureMorning,
	SortFlightsArrivalMorning,
}

// ParseFlightSortOption accepts the empty string as "no sort selected".
func ParseFlightSortOption(s string) (FlightSortOption, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortFlightsNone, nil
	}
	for _, opt := range flightSortOptions {
		if string(opt) == s {
			return opt, nil
		}
	}
	return SortFlightsNone, fmt.Errorf("%w: %q", ErrInvalidSortOption, s)
}

type HotelSortOption string

const (
	SortHotelsNone       HotelSortOption = ""
	SortHotelsPriceAsc   HotelSortOption = "price_asc"
	SortHotelsPriceDesc  HotelSortOption = "price_desc"
	SortHotelsRatingDesc HotelSortOption = "rating_desc"
	SortHotelsNameAsc    HotelSortOption = "name_asc"
)

var hotelSortOptions = []HotelSortOption{
	SortHotelsPriceAsc,
	SortHotelsPriceDesc,
	SortHotelsRatingDesc,
	SortHotelsNameAsc,
}

func ParseHotelSortOption(s string) (HotelSortOption, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortHotelsNone, nil
	}
	for _, opt := range hotelSortOptions {
		if string(opt) == s {
			return opt, nil
		}
	}
	return SortHotelsNone, fmt.Errorf("%w: %q", ErrInvalidSortOption, s)
}
