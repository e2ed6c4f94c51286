package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skycast-cli/skycast/pkg/config"
	"github.com/skycast-cli/skycast/pkg/presenter"
	"github.com/skycast-cli/skycast/pkg/skillpkg"
)

var packageCmd = &cobra.Command{
	Use:   "package [skill-dir]",
	Short: "Build the distributable skill zip with the API key injected",
	Long: `Package collects the skill directory's files into a flat zip archive,
replacing the placeholder credential in config.json with the resolved API
key. The produced archive is verified before the command reports success.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		output, _ := cmd.Flags().GetString("output")

		key, err := config.ResolveAPIKey()
		if err != nil {
			presenter.Error(err, "cannot package the skill")
			os.Exit(1)
		}

		result, err := skillpkg.Package(dir, key, output)
		if err != nil {
			presenter.Error(err, "packaging failed")
			os.Exit(1)
		}
		for _, warning := range result.Warnings {
			presenter.Warning(warning)
		}

		if err := skillpkg.Verify(result.Archive, key); err != nil {
			presenter.Error(err, "archive verification failed")
			os.Exit(1)
		}

		presenter.Success(fmt.Sprintf("packaged skill %q: %d files in %s",
			result.Skill.Name, len(result.Files), result.Archive))
	},
}

func init() {
	packageCmd.Flags().StringP("output", "o", "skill.zip", "path of the zip archive to write")
}
