package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbed/internal/cli/styles"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	fmt.Println(styles.NewVersionRenderer(a.Theme).Render(a.BuildInfo))
	return nil
}
