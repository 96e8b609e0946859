package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dumbed/internal/cli"
	"github.com/bnema/dumbed/internal/cli/model"
	"github.com/bnema/dumbed/internal/cli/styles"
)

var layoutsJSON bool

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "Browse stored layouts",
	Long: `Browse stored layouts interactively.

Keys:
  j/k, ↑/↓   move
  enter      preview the split tree
  x          delete (with confirmation)
  R          refresh
  q, esc     quit`,
	RunE: runLayoutsBrowser,
}

var layoutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored layouts",
	RunE:  runLayoutsList,
}

var layoutsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print the split tree of a stored layout",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayoutsShow,
}

var layoutsDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a stored layout",
	Args:    cobra.ExactArgs(1),
	RunE:    runLayoutsDelete,
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
	layoutsCmd.AddCommand(layoutsListCmd, layoutsShowCmd, layoutsDeleteCmd)
	layoutsListCmd.Flags().BoolVar(&layoutsJSON, "json", false, "output as JSON")
}

func runLayoutsBrowser(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	m := model.NewLayoutsModel(a.Ctx(), a.Theme, model.LayoutsModelConfig{
		ListUC:   a.ListLayoutsUC,
		DeleteUC: a.DeleteLayoutUC,
		Preview:  previewFunc(a),
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run layout browser: %w", err)
	}
	return nil
}

// previewFunc restores a stored layout into a scratch workspace and returns
// its outline.
func previewFunc(a *cli.App) model.PreviewFunc {
	return func(ctx context.Context, name string) (string, error) {
		ws := a.NewWorkspace()
		defer ws.Close()
		if _, err := a.RestoreLayoutUC.Execute(ctx, name, ws.Coordinator); err != nil {
			return "", err
		}
		return ws.Outline(), nil
	}
}

func runLayoutsList(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	layouts, err := a.ListLayoutsUC.Execute(a.Ctx())
	if err != nil {
		return err
	}

	if layoutsJSON {
		data, err := json.MarshalIndent(layouts, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal layouts: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	renderer := styles.NewLayoutsCLIRenderer(a.Theme)
	if len(layouts) == 0 {
		fmt.Println(renderer.RenderEmptyList())
		return nil
	}
	fmt.Println(renderer.RenderList(layouts))
	return nil
}

func runLayoutsShow(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	outline, err := previewFunc(a)(a.Ctx(), args[0])
	if err != nil {
		return err
	}
	fmt.Println(styles.NewLayoutsCLIRenderer(a.Theme).RenderOutline(args[0], outline))
	return nil
}

func runLayoutsDelete(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	if err := a.DeleteLayoutUC.Execute(a.Ctx(), args[0]); err != nil {
		return err
	}
	fmt.Println(styles.NewLayoutsCLIRenderer(a.Theme).RenderDeleted(args[0]))
	return nil
}
