package main

import (
	"time"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <location1> <location2> [days]",
	Short: "Compare forecasts for two locations over the same window",
	Args:  cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		days := defaultDays
		if len(args) == 3 {
			var err error
			if days, err = parseDays(args[2]); err != nil {
				fail(err)
			}
		}

		client, err := newProvider()
		if err != nil {
			fail(err)
		}
		result, err := runCompare(cmd.Context(), client, args[0], args[1], days, time.Now())
		if err != nil {
			fail(err)
		}
		emit(result)
	},
}
