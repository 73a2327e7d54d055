package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dharmasatrya/swifttrip/internal/filter"
	"github.com/dharmasatrya/swifttrip/internal/itinerary"
	"github.com/dharmasatrya/swifttrip/internal/models"
	"github.com/dharmasatrya/swifttrip/internal/output"
	"github.com/dharmasatrya/swifttrip/internal/ranking"
	"github.com/dharmasatrya/swifttrip/pkg/currency"
)

type flightsResult struct {
	Input      int                   `json:"input"`
	Total      int                   `json:"total"`
	Message    string                `json:"message"`
	Criteria   models.FilterCriteria `json:"criteria"`
	Sort       string                `json:"sort,omitempty"`
	Highlights models.Highlights     `json:"highlights"`
	Flights    []models.FlightOffer  `json:"flights"`
}

func FlightsCmd() *cobra.Command {
	var (
		file        string
		sortBy      string
		dedup       bool
		keepUnkeyed bool
		trip        tripFlags
	)
	criteria := models.DefaultFilterCriteria()

	cmd := &cobra.Command{
		Use:   "flights",
		Short: "Deduplicate, filter and sort flight offers",
		Example: `  tripctl flights --file offers.json --sort price_asc --max-price 600
  tripctl flights --from HKG --to NRT --depart 2025-03-01 --return 2025-03-08 --nonstop=false -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			option, err := models.ParseFlightSortOption(sortBy)
			if err != nil {
				return err
			}
			if criteria.MinPrice > criteria.MaxPrice {
				return models.ErrInvalidPriceRange
			}

			offers, err := loadFlights(cmd.Context(), file, &trip)
			if err != nil {
				return err
			}

			source := offers
			if dedup {
				source = filter.DedupeFlights(offers, keepUnkeyed)
			}
			displayed := filter.ApplyFlights(source, criteria, option)

			result := flightsResult{
				Input:      len(offers),
				Total:      len(displayed),
				Message:    fmt.Sprintf("%d flights found", len(displayed)),
				Criteria:   criteria,
				Sort:       string(option),
				Highlights: ranking.Highlights(displayed),
				Flights:    displayed,
			}

			if format == output.FormatText {
				return writeFlightsText(output.Writer, result)
			}
			return output.Structured(format, result)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with flight offers (default: built-in mock data)")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort: price_asc, price_desc, duration, departure_morning, arrival_morning")
	cmd.Flags().BoolVar(&dedup, "dedup", true, "Remove duplicate offers before filtering")
	cmd.Flags().BoolVar(&keepUnkeyed, "keep-unkeyed", false, "Keep offers without flight numbers when deduplicating")

	cmd.Flags().BoolVar(&criteria.AllowNonstop, "nonstop", true, "Include non-stop flights")
	cmd.Flags().BoolVar(&criteria.Allow1Stop, "one-stop", true, "Include flights with one stop")
	cmd.Flags().BoolVar(&criteria.Allow2PlusStops, "two-plus-stops", true, "Include flights with two or more stops")
	cmd.Flags().Float64Var(&criteria.MinPrice, "min-price", models.DefaultMinPrice, "Minimum total price")
	cmd.Flags().Float64Var(&criteria.MaxPrice, "max-price", models.DefaultMaxPrice, "Maximum total price")
	cmd.Flags().BoolVar(&criteria.AllowMorning, "morning", true, "Include departures 06:00-11:59")
	cmd.Flags().BoolVar(&criteria.AllowAfternoon, "afternoon", true, "Include departures 12:00-17:59")
	cmd.Flags().BoolVar(&criteria.AllowEvening, "evening", true, "Include departures 18:00-23:59")
	cmd.Flags().BoolVar(&criteria.AllowNight, "night", true, "Include departures 00:00-05:59")

	trip.register(cmd)
	return cmd
}

func writeFlightsText(w io.Writer, r flightsResult) error {
	if _, err := fmt.Fprintln(w, r.Message); err != nil {
		return err
	}
	for _, o := range r.Flights {
		price := "price n/a"
		if amount, ok := currency.ParseAmount(o.TotalPrice()); ok {
			code := "USD"
			if o.Price != nil && o.Price.Currency != "" {
				code = o.Price.Currency
			}
			price = currency.Format(amount, code)
		}

		var tags string
		if o.ID == r.Highlights.CheapestID {
			tags += " [cheapest]"
		}
		if o.ID == r.Highlights.FastestID {
			tags += " [fastest]"
		}
		if o.ID == r.Highlights.BestValueID {
			tags += " [best value]"
		}

		if _, err := fmt.Fprintf(w, "%-4s %-14s %s%s\n", o.ID, price, itinerary.OutboundRoute(o), tags); err != nil {
			return err
		}
		if o.Return() != nil {
			if _, err := fmt.Fprintf(w, "%-4s %-14s %s\n", "", "", itinerary.ReturnRoute(o)); err != nil {
				return err
			}
		}
	}
	return nil
}
