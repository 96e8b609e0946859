package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbed/internal/application/usecase"
	"github.com/bnema/dumbed/internal/cli/styles"
	"github.com/bnema/dumbed/internal/infrastructure/config"
)

var (
	configKeysJSON    bool
	configKeysSection string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(_ *cobra.Command, _ []string) error {
		path, err := config.GetConfigFile()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List configuration keys with types and defaults",
	RunE:  runConfigKeys,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd, configKeysCmd)
	configKeysCmd.Flags().BoolVar(&configKeysJSON, "json", false, "output as JSON")
	configKeysCmd.Flags().StringVar(&configKeysSection, "section", "", "only show keys of this section")
}

func runConfigKeys(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	out, err := a.ConfigSchemaUC.Execute(a.Ctx(), usecase.GetConfigSchemaInput{Section: configKeysSection})
	if err != nil {
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(a.Theme)
	if configKeysJSON {
		data, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Println(data)
		return nil
	}
	fmt.Println(renderer.Render(out.Keys))
	return nil
}
