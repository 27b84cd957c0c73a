// Package cmd provides Cobra CLI commands for tabs.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/accessible-ui/tabs/internal/cli"
	"github.com/accessible-ui/tabs/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	configDir string
	rootCmd   = newRootCmd()
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tabs",
		Short: "Keyboard-accessible tabbed interface for the terminal",
		Long: `Tabs - a headless, accessible tabbed-interface core with a terminal demo.

Tabs follows the WAI-ARIA tabs pattern:
  - Arrow keys move focus between tabs, wrapping at both ends
  - Home and End jump to the first and last tab
  - Automatic activation selects the tab that receives focus
  - Manual activation waits for Enter or Space
  - Disabled tabs stay focusable but can never become active

Use 'tabs demo' to try it interactively, or 'tabs config' to inspect
and document the configuration file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(configDir)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
				app = nil
			}
		},
	}

	root.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default $XDG_CONFIG_HOME/tabs)")
	return root
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetBuildInfo sets the build information from main.
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}
