package main

import (
	"github.com/spf13/cobra"

	"github.com/skycast-cli/skycast/pkg/activity"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the known activity profiles and their ideal conditions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		emit(activity.Profiles())
	},
}
