package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dharmasatrya/swifttrip/internal/config"
	"github.com/dharmasatrya/swifttrip/internal/output"
	"github.com/dharmasatrya/swifttrip/internal/visa"
)

func VisaCmd() *cobra.Command {
	var passport, destination string

	cmd := &cobra.Command{
		Use:     "visa",
		Short:   "Look up the visa requirement for a passport and destination",
		Example: `  tripctl visa --passport HK --destination Japan`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if passport == "" || destination == "" {
				return cmd.Help()
			}
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			client := visa.NewClient(cfg.VisaBaseURL, nil, nil, zap.NewNop())
			resp, err := client.Lookup(cmd.Context(), passport, destination)
			if err != nil {
				return fmt.Errorf("%s: %w", visa.FetchFailedMessage, err)
			}

			if format == output.FormatText {
				_, err := fmt.Fprintf(output.Writer, "%s -> %s: %s\n", resp.PassportName, resp.DestinationName, resp.Message)
				return err
			}
			return output.Structured(format, resp)
		},
	}

	cmd.Flags().StringVar(&passport, "passport", "", "Passport country (ISO code or English name)")
	cmd.Flags().StringVar(&destination, "destination", "", "Destination country (ISO code or English name)")
	return cmd
}
