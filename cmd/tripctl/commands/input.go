package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dharmasatrya/swifttrip/internal/models"
	"github.com/dharmasatrya/swifttrip/internal/output"
	"github.com/dharmasatrya/swifttrip/internal/providers"
)

type tripFlags struct {
	from     string
	to       string
	depart   string
	ret      string
	city     string
	adults   int
	children int
}

func (f *tripFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "HKG", "Origin airport code for mock data")
	cmd.Flags().StringVar(&f.to, "to", "NRT", "Destination airport code for mock data")
	cmd.Flags().StringVar(&f.depart, "depart", "", "Departure date YYYY-MM-DD for mock data (default: 30 days from now)")
	cmd.Flags().StringVar(&f.ret, "return", "", "Return date YYYY-MM-DD for mock data (optional)")
	cmd.Flags().StringVar(&f.city, "city", "", "Hotel city for mock data (default: --to)")
	cmd.Flags().IntVar(&f.adults, "adults", 1, "Number of adults")
	cmd.Flags().IntVar(&f.children, "children", 0, "Number of children")
}

func (f *tripFlags) request() (models.SearchRequest, error) {
	req := models.SearchRequest{
		Origin:        f.from,
		Destination:   f.to,
		DepartureDate: f.depart,
		HotelCity:     f.city,
		Adults:        f.adults,
		Children:      f.children,
	}
	if req.DepartureDate == "" {
		req.DepartureDate = defaultDepartureDate()
	}
	if f.ret != "" {
		ret := f.ret
		req.ReturnDate = &ret
	}
	if err := req.Validate(); err != nil {
		return req, err
	}
	return req, nil
}

func outputFormat(cmd *cobra.Command) (output.Format, error) {
	raw, _ := cmd.Flags().GetString("output")
	return output.ParseFormat(raw)
}

// loadFlights reads a flight-offers body (or a bare array of offers) from
// path, or generates mock offers for the trip flags when path is empty.
func loadFlights(ctx context.Context, path string, trip *tripFlags) ([]models.FlightOffer, error) {
	if path == "" {
		req, err := trip.request()
		if err != nil {
			return nil, err
		}
		mock, err := providers.NewMockSource()
		if err != nil {
			return nil, err
		}
		return mock.SearchFlights(ctx, req)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if isJSONArray(data) {
		var offers []models.FlightOffer
		if err := json.Unmarshal(data, &offers); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return offers, nil
	}
	var resp models.FlightResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return resp.Data, nil
}

// loadHotels accepts a hotel-offers body, a bare array of offers, or mock
// data for the trip flags.
func loadHotels(ctx context.Context, path string, trip *tripFlags) ([]models.Hotel, error) {
	if path == "" {
		req, err := trip.request()
		if err != nil {
			return nil, err
		}
		mock, err := providers.NewMockSource()
		if err != nil {
			return nil, err
		}
		offers, err := mock.SearchHotels(ctx, req)
		if err != nil {
			return nil, err
		}
		return providers.MapHotels(offers), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var offers []models.HotelOffer
	if isJSONArray(data) {
		err = json.Unmarshal(data, &offers)
	} else {
		var resp models.HotelResponse
		err = json.Unmarshal(data, &resp)
		offers = resp.Data
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return providers.MapHotels(offers), nil
}

func isJSONArray(data []byte) bool {
	return strings.HasPrefix(strings.TrimSpace(string(data)), "[")
}

func defaultDepartureDate() string {
	return time.Now().AddDate(0, 0, 30).Format(models.DateLayout)
}
