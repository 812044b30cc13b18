/*
Copyright © 2026 davdeploy maintainers
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configFile can be overridden per command with --config
var configFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "davdeploy",
	Short: "CLI for deploying the web checkout bundle to a WebDAV content host",
	Long: `davdeploy builds the checkout bundle and pushes it to the content host.

Every deployment lands in a fresh timestamped folder, so nothing that is
already live gets touched until the shop is pointed at the new bundle.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("🚀 davdeploy is ready... Use --help to see available commands.")
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(1)
	}
}
