package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/skycast-cli/skycast/pkg/config"
	"github.com/skycast-cli/skycast/pkg/errkind"
	"github.com/skycast-cli/skycast/pkg/openweather"
	"github.com/skycast-cli/skycast/pkg/presenter"
	"github.com/skycast-cli/skycast/pkg/skillpkg"
)

var validateCmd = &cobra.Command{
	Use:   "validate [skill-dir]",
	Short: "Check the skill directory is ready to package and upload",
	Long: `Validate runs the pre-upload checks: the SKILL.md manifest parses, the
bundle config.json is valid, a real API key is configured, and (unless
--offline) the provider accepts the key.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		offline, _ := cmd.Flags().GetBool("offline")

		var probe skillpkg.ProbeFunc
		if !offline {
			probe = probeKey
		}

		checks, ok := skillpkg.Validate(cmd.Context(), dir, probe)
		for _, check := range checks {
			if check.OK {
				presenter.Success(check.Name + ": " + check.Detail)
			} else {
				presenter.Warning(check.Name + ": " + check.Detail)
			}
		}

		if !ok {
			presenter.Info("Fix the failing checks above, then re-run validate.")
			os.Exit(1)
		}
		presenter.Success("skill is ready to package")
	},
}

// probeKey exercises the credential against the cheapest endpoint. A
// location_not_found answer still proves the key was accepted.
func probeKey(ctx context.Context, apiKey string) error {
	client := openweather.New(apiKey, openweather.WithTimeout(config.Timeout()))
	_, err := client.Geocode(ctx, "London")
	if err != nil && errkind.KindOf(err) == errkind.LocationNotFound {
		return nil
	}
	return err
}

func init() {
	validateCmd.Flags().Bool("offline", false, "skip the live provider check")
}
