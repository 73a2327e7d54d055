package models

import (
	"bytes"
	"strconv"
)

// HotelResponse is the body of the Amadeus hotel-offers search.
type HotelResponse struct {
	Data   []HotelOffer   `json:"data"`
	Errors []AmadeusError `json:"errors,omitempty"`
}

type HotelOffer struct {
	Type      string             `json:"type,omitempty"`
	Hotel     *HotelInfo         `json:"hotel,omitempty"`
	Available *bool              `json:"available,omitempty"`
	Offers    []HotelOfferDetail `json:"offers,omitempty"`
}

type HotelInfo struct {
	HotelID  string        `json:"hotelId,omitempty"`
	Name     string        `json:"name,omitempty"`
	Rating   StarRating    `json:"rating,omitempty"`
	CityCode string        `json:"cityCode,omitempty"`
	Address  *HotelAddress `json:"address,omitempty"`
}

type HotelAddress struct {
	Lines       []string `json:"lines,omitempty"`
	CityName    string   `json:"cityName,omitempty"`
	CountryCode string   `json:"countryCode,omitempty"`
	PostalCode  string   `json:"postalCode,omitempty"`
}

type HotelOfferDetail struct {
	ID           string         `json:"id,omitempty"`
	CheckInDate  string         `json:"checkInDate,omitempty"`
	CheckOutDate string         `json:"checkOutDate,omitempty"`
	Room         *HotelRoom     `json:"room,omitempty"`
	Guests       *HotelGuests   `json:"guests,omitempty"`
	Price        *HotelPrice    `json:"price,omitempty"`
	Policies     *HotelPolicies `json:"policies,omitempty"`
}

type HotelRoom struct {
	Type          string              `json:"type,omitempty"`
	TypeEstimated *HotelRoomEstimated `json:"typeEstimated,omitempty"`
}

type HotelRoomEstimated struct {
	Category string `json:"category,omitempty"`
	Beds     int    `json:"beds,omitempty"`
	BedType  string `json:"bedType,omitempty"`
}

type HotelGuests struct {
	Adults int `json:"adults,omitempty"`
}

type HotelPrice struct {
	Currency string `json:"currency,omitempty"`
	Total    string `json:"total,omitempty"`
	Base     string `json:"base,omitempty"`
}

type HotelPolicies struct {
	PaymentType  string             `json:"paymentType,omitempty"`
	Cancellation *HotelCancellation `json:"cancellation,omitempty"`
}

type HotelCancellation struct {
	Type   string `json:"type,omitempty"`
	Amount string `json:"amount,omitempty"`
}

// StarRating accepts the rating as either a JSON number or a numeric
// string; the vendor uses both depending on the endpoint.
type StarRating int

func (r *StarRating) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*r = 0
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		*r = 0
		return nil
	}
	*r = StarRating(n)
	return nil
}

// HotelListResponse is the body of the hotels-by-city reference lookup.
type HotelListResponse struct {
	Data []HotelListItem `json:"data"`
}

type HotelListItem struct {
	HotelID  string `json:"hotelId,omitempty"`
	Name     string `json:"name,omitempty"`
	IATACode string `json:"iataCode,omitempty"`
}

// Hotel is the flattened view rendered in result lists. Price is free-form
// text such as "120.00 USD / night".
type Hotel struct {
	HotelID      string `json:"hotel_id,omitempty"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	Price        string `json:"price"`
	Availability string `json:"availability"`
	Rating       int    `json:"rating,omitempty"`
}

// CityResponse is the body of the city reference lookup used to turn a
// free-text city into an IATA city code.
type CityResponse struct {
	Data []CityLocation `json:"data"`
}

type CityLocation struct {
	Name     string `json:"name,omitempty"`
	IATACode string `json:"iataCode,omitempty"`
}
