/*
Copyright © 2026 davdeploy maintainers
*/
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"davdeploy/internal/build"
	"davdeploy/internal/config"
	"davdeploy/internal/logger"
)

var buildLog = logger.PackageLogger("🧱 BUILD")

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the checkout bundle build without deploying",
	Long: `Runs the configured build command and reports the result.

Useful for checking that the bundle builds cleanly before a deploy. The
command and its arguments come from davdeploy.yml (default: npm run build).`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&configFile, "config", "c", config.ConfigFile, "Path to configuration file")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	buildLog.Info("running %s...", cfg.Build.Command)
	if err := build.Run(context.Background(), cfg.Build, cmd.OutOrStdout()); err != nil {
		return err
	}
	buildLog.Success("build finished, output in %s/", cfg.Build.Output)
	return nil
}
