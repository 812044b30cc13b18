/*
Copyright © 2026 davdeploy maintainers
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"davdeploy/internal/config"
	"davdeploy/internal/deploy"
	"davdeploy/internal/logger"
	"davdeploy/internal/webdav"
)

var (
	deployLog = logger.PackageLogger("🚀 DEPLOY")

	successColor = color.New(color.FgGreen, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

var deployCmd = &cobra.Command{
	Use:   "deploy <environment>",
	Short: "Build the checkout bundle and upload it to the content host",
	Long: `Runs the full deployment pipeline for one environment:

1. Builds the checkout bundle with the configured build command.
2. Creates a timestamped folder (plus its static subfolder) on the host.
3. Uploads the build output into the new folder.

Credentials are read from credentials/<environment>.json; a template is
generated on first use. After a successful upload the shop still has to be
pointed at the new bundle manually - the command prints the snippet to use.

Examples:
  davdeploy deploy sandbox
  davdeploy deploy production`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDeploy,
}

func init() {
	deployCmd.Flags().StringVarP(&configFile, "config", "c", config.ConfigFile, "Path to configuration file")
	rootCmd.AddCommand(deployCmd)
}

func runDeploy(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("⚠️  Missing environment. Usage: davdeploy deploy <environment>")
		return nil
	}
	env := args[0]

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if !cfg.KnowsEnvironment(env) {
		return fmt.Errorf("unknown environment %q (configured: %v)", env, cfg.Environments)
	}

	creds, err := config.LoadCredentials(env)
	if err != nil {
		var created *config.ErrCredentialsCreated
		if errors.As(err, &created) {
			deployLog.Warn("%v", created)
			return nil
		}
		return err
	}

	remote, err := webdav.Dial(creds)
	if err != nil {
		return err
	}

	pipeline, err := deploy.New(cfg, deploy.WithRemote(remote), deploy.WithLogger(deployLog))
	if err != nil {
		return err
	}

	d, err := pipeline.Run(context.Background(), env)
	if err != nil {
		return fmt.Errorf("deployment failed during %s: %w", d.FailedAt(), err)
	}

	printBanner(cfg, creds, d)
	return nil
}

// printBanner shows the manual follow-up after a successful upload: the
// deployed URL and the script reference the shop has to be switched to.
func printBanner(cfg *config.Config, creds *config.Credentials, d *deploy.Context) {
	base := fmt.Sprintf("https://%s%s", creds.Host, d.RemotePath)
	scriptURL := fmt.Sprintf("https://%s%s", creds.Host, path.Join(d.RemotePath, cfg.Remote.EntryScript))

	fmt.Println()
	successColor.Printf("🎉 Deployment %s is live on %s\n\n", d.ID, d.Environment)
	infoColor.Printf("   Bundle URL: %s/\n", base)
	infoColor.Println("   Point the shop at the new bundle:")
	infoColor.Printf("     <script src=%q></script>\n", scriptURL)
}
