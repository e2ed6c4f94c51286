package main

import (
	"github.com/spf13/cobra"

	"github.com/skycast-cli/skycast/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		emit(version.Get())
	},
}
