package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dharmasatrya/swifttrip/internal/filter"
	"github.com/dharmasatrya/swifttrip/internal/models"
	"github.com/dharmasatrya/swifttrip/internal/output"
)

type hotelsResult struct {
	Total   int            `json:"total"`
	Message string         `json:"message"`
	Sort    string         `json:"sort,omitempty"`
	Hotels  []models.Hotel `json:"hotels"`
}

func HotelsCmd() *cobra.Command {
	var (
		file   string
		sortBy string
		trip   tripFlags
	)

	cmd := &cobra.Command{
		Use:   "hotels",
		Short: "Map and sort hotel offers",
		Example: `  tripctl hotels --file hotel-offers.json --sort price_asc
  tripctl hotels --city TYO --depart 2025-03-01 --return 2025-03-04 -o text`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			option, err := models.ParseHotelSortOption(sortBy)
			if err != nil {
				return err
			}

			hotels, err := loadHotels(cmd.Context(), file, &trip)
			if err != nil {
				return err
			}
			displayed := filter.ApplyHotels(hotels, option)

			result := hotelsResult{
				Total:   len(displayed),
				Message: fmt.Sprintf("%d hotels found", len(displayed)),
				Sort:    string(option),
				Hotels:  displayed,
			}

			if format == output.FormatText {
				return writeHotelsText(output.Writer, result)
			}
			return output.Structured(format, result)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with hotel offers (default: built-in mock data)")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort: price_asc, price_desc, rating_desc, name_asc")
	trip.register(cmd)
	return cmd
}

func writeHotelsText(w io.Writer, r hotelsResult) error {
	if _, err := fmt.Fprintln(w, r.Message); err != nil {
		return err
	}
	for _, h := range r.Hotels {
		stars := "-"
		if h.Rating > 0 {
			stars = fmt.Sprintf("%d*", h.Rating)
		}
		if _, err := fmt.Fprintf(w, "%-28s %-4s %-6s %-22s %s\n", h.Name, stars, h.Location, h.Price, h.Availability); err != nil {
			return err
		}
	}
	return nil
}
