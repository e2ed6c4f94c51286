package main

import (
	"time"

	"github.com/spf13/cobra"
)

var activityCmd = &cobra.Command{
	Use:   "activity <activity> <location> [days]",
	Short: "Score forecast days for an activity (skiing, picnic, hiking, ...)",
	Long: `Score each forecast day against the named activity's profile and pick
the best day of the window. Unrecognized activities use the generic outdoor
profile; the output reports which profile applied.`,
	Args: cobra.RangeArgs(2, 3),
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
		result, err := runActivity(cmd.Context(), client, args[0], args[1], days, time.Now())
		if err != nil {
			fail(err)
		}
		emit(result)
	},
}
