package models

import (
	"strings"
	"time"
)

const (
	DateLayout    = "2006-01-02"
	MaxPassengers = 9
)

type SearchRequest struct {
	Origin        string           `json:"origin"`
	Destination   string           `json:"destination"`
	DepartureDate string           `json:"departure_date"`
	ReturnDate    *string          `json:"return_date,omitempty"`
	Adults        int              `json:"adults"`
	Children      int              `json:"children"`
	HotelCity     string           `json:"hotel_city,omitempty"`
	FlightSort    FlightSortOption `json:"flight_sort,omitempty"`
	HotelSort     HotelSortOption  `json:"hotel_sort,omitempty"`
}

func (r *SearchRequest) Validate() error {
	r.Origin = strings.TrimSpace(r.Origin)
	r.Destination = strings.TrimSpace(r.Destination)

	if r.Origin == "" {
		return ErrMissingOrigin
	}
	if r.Destination == "" {
		return ErrMissingDestination
	}
	if strings.EqualFold(r.Origin, r.Destination) {
		return ErrSameOriginDestination
	}
	if r.DepartureDate == "" {
		return ErrMissingDepartureDate
	}
	departure, err := time.Parse(DateLayout, r.DepartureDate)
	if err != nil {
		return ErrInvalidDepartureDate
	}
	if r.ReturnDate != nil && *r.ReturnDate != "" {
		ret, err := time.Parse(DateLayout, *r.ReturnDate)
		if err != nil {
			return ErrInvalidReturnDate
		}
		if !ValidateDates(departure, ret) {
			return ErrReturnBeforeDeparture
		}
	}

	if r.Adults == 0 && r.Children == 0 {
		r.Adults = 1
	}
	if !ValidatePassengerCount(r.Adults, r.Children) {
		return ErrInvalidPassengers
	}

	if r.HotelCity == "" {
		r.HotelCity = r.Destination
	}
	flightSort, err := ParseFlightSortOption(string(r.FlightSort))
	if err != nil {
		return ErrInvalidFlightSort
	}
	hotelSort, err := ParseHotelSortOption(string(r.HotelSort))
	if err != nil {
		return ErrInvalidHotelSort
	}
	r.FlightSort, r.HotelSort = flightSort, hotelSort
	return nil
}

func (r SearchRequest) IsRoundTrip() bool {
	return r.ReturnDate != nil && *r.ReturnDate != ""
}

// ValidatePassengerCount requires at least one adult and at most
// MaxPassengers travellers in total.
func ValidatePassengerCount(adults, children int) bool {
	if adults < 1 || children < 0 {
		return false
	}
	return adults+children <= MaxPassengers
}

// ValidateDates allows a same-day return.
func ValidateDates(departure, ret time.Time) bool {
	return !ret.Before(departure)
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingOrigin         ValidationError = "origin is required"
	ErrMissingDestination    ValidationError = "destination is required"
	ErrSameOriginDestination ValidationError = "destination must be different from origin"
	ErrMissingDepartureDate  ValidationError = "departure_date is required"
	ErrInvalidDepartureDate  ValidationError = "departure_date must be YYYY-MM-DD"
	ErrInvalidReturnDate     ValidationError = "return_date must be YYYY-MM-DD"
	ErrReturnBeforeDeparture ValidationError = "return_date cannot be before departure_date"
	ErrInvalidPassengers     ValidationError = "at least one adult and at most 9 passengers are required"
	ErrInvalidFlightSort     ValidationError = "flight_sort is not a supported option"
	ErrInvalidHotelSort      ValidationError = "hotel_sort is not a supported option"
	ErrInvalidPriceRange     ValidationError = "min_price cannot be greater than max_price"
)
