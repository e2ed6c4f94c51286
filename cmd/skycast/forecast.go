package main

import (
	"time"

	"github.com/spf13/cobra"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast <location> [days]",
	Short: "Daily forecast for a location (1-7 days, default 5)",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		days := defaultDays
		if len(args) == 2 {
			var err error
			if days, err = parseDays(args[1]); err != nil {
				fail(err)
			}
		}

		client, err := newProvider()
		if err != nil {
			fail(err)
		}
		result, err := runForecast(cmd.Context(), client, args[0], days, time.Now())
		if err != nil {
			fail(err)
		}
		emit(result)
	},
}
