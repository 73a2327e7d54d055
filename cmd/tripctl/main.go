package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dharmasatrya/swifttrip/cmd/tripctl/commands"
)

func main() {
	root := &cobra.Command{
		Use:           "tripctl",
		Short:         "SwiftTrip offline tools: run the flight and hotel pipeline, look up visas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("output", "o", "json", "Output format: json, yaml, text")

	root.AddCommand(commands.FlightsCmd())
	root.AddCommand(commands.HotelsCmd())
	root.AddCommand(commands.VisaCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
