/*
Copyright © 2026 davdeploy maintainers
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"davdeploy/internal/config"
	"davdeploy/internal/logger"
)

var initLog = logger.PackageLogger("🔑 INIT")

var initCmd = &cobra.Command{
	Use:   "init <environment>",
	Short: "Create an empty credentials file for an environment",
	Long: `Writes credentials/<environment>.json with empty host, username and
password fields, ready to be filled in. Existing files are never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("⚠️  Missing environment. Usage: davdeploy init <environment>")
		return nil
	}

	path := config.CredentialsPath(args[0])
	if err := config.WriteCredentialsTemplate(path); err != nil {
		return err
	}
	initLog.Success("wrote credentials template to %s", path)
	return nil
}
