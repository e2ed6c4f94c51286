// Command skycast is the weather skill's entrypoint: mode-dispatched
// queries against OpenWeatherMap plus the bundle packaging and validation
// commands. Query results are a single JSON document on stdout.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/skycast-cli/skycast/pkg/config"
	"github.com/skycast-cli/skycast/pkg/errkind"
	"github.com/skycast-cli/skycast/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "skycast",
	Short: "Weather queries and skill packaging backed by OpenWeatherMap",
	Long: `skycast answers weather questions as structured JSON for a hosting
conversational agent: current conditions, multi-day forecasts, two-location
comparisons, and activity suitability scoring. It also packages the skill
bundle into a distributable zip with a real API key injected.`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		// Legacy two-argument form: <location> <YYYY-MM-DD>. Any other
		// two-argument call still gets a JSON error document; stdout is
		// a machine-readable channel even on failure.
		if len(args) == 2 {
			if !looksLikeDate(args[1]) {
				fail(errkind.Newf(errkind.InvalidUsage,
					"unrecognized arguments; expected <location> <YYYY-MM-DD> or a subcommand"))
			}
			legacyQueryCmd(cmd.Context(), args[0], args[1])
			return
		}
		cmd.Help()
		os.Exit(1)
	},
}

func init() {
	config.Init()
}

func bindFlags(flags *pflag.FlagSet) {
	viper.BindPFlag("api_key", flags.Lookup("api-key"))
	viper.BindPFlag("timeout", flags.Lookup("timeout"))
	viper.BindPFlag("log_level", flags.Lookup("log-level"))
	viper.BindPFlag("log_format", flags.Lookup("log-format"))
}

func initLogging() {
	logger.SetFormat(viper.GetString("log_format"))
	if level := viper.GetString("log_level"); level != "" {
		if err := logger.SetLevel(level); err != nil {
			logger.L.WithError(err).Warn("invalid log level, keeping default")
		}
	}
}

func main() {
	flags := rootCmd.PersistentFlags()
	flags.String("api-key", "", "OpenWeatherMap API key (overrides env and config file)")
	flags.Duration("timeout", config.DefaultTimeout, "timeout per provider call")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text or json)")
	bindFlags(flags)

	cobra.OnInitialize(initLogging)

	rootCmd.AddCommand(currentCmd)
	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(packageCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)

	ctx := logger.WithLogger(context.Background(), logger.L)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fail(err)
	}
}
