// Package cmd provides Cobra CLI commands for dumbed.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbed/internal/cli"
	"github.com/bnema/dumbed/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "dumbed",
		Short: "A split editor layout engine driven by scripts",
		Long: `Dumbed - the editor layout engine of a terminal-multiplexer style editor.

Editors live in groups, groups are laid out as a split tree, and exactly one
editor is active at a time. Layouts are built by replaying small command
scripts and can be saved, browsed and restored.

Script commands:
  open <tab> <resource>                  add an editor to the active group
  split <tab> <resource> <side> <rel>    add an editor beside <rel>
  focus <tab> | click <tab>              activate an editor
  close <tab>                            remove an editor
  hide <tab>                             hide a tab without closing it
  next | prev | restore                  cycle or go back in history
  blur | unblur | refresh                group focus and relayout

Use 'dumbed replay' to build a layout, 'dumbed layouts' to browse stored ones.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "check", "schema", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp(buildInfo)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.String()
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
