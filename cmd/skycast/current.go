package main

import (
	"time"

	"github.com/spf13/cobra"
)

var currentCmd = &cobra.Command{
	Use:   "current <location>",
	Short: "Current conditions for a location",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newProvider()
		if err != nil {
			fail(err)
		}
		result, err := runCurrent(cmd.Context(), client, args[0], time.Now())
		if err != nil {
			fail(err)
		}
		emit(result)
	},
}
