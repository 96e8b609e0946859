package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbed/internal/cli"
	"github.com/bnema/dumbed/internal/cli/styles"
	"github.com/bnema/dumbed/internal/logging"
)

var (
	replaySave string
	replayFrom string
)

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Build a layout by replaying a command script",
	Long: `Replay a layout script and print the resulting split tree.

Use "-" to read the script from stdin. With --from the stored layout is
restored first and the script continues from it. With --save the final
layout is stored under the given name. When layout.autosave is set in the
config, every change is also stored under that name.

Examples:
  dumbed replay review.layout
  dumbed replay --from review extra.layout --save review-2
  echo "open t1 main.go" | dumbed replay -`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVarP(&replaySave, "save", "s", "", "store the final layout under this name")
	replayCmd.Flags().StringVarP(&replayFrom, "from", "f", "", "restore this stored layout before replaying")
}

func runReplay(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()
	log := logging.FromContext(ctx)
	renderer := styles.NewLayoutsCLIRenderer(a.Theme)

	ws := a.NewWorkspace()
	defer ws.Close()

	if replayFrom != "" {
		if _, err := a.RestoreLayoutUC.Execute(ctx, replayFrom, ws.Coordinator); err != nil {
			return err
		}
		fmt.Println(renderer.RenderRestored(replayFrom))
	}

	if name := a.Config.Layout.Autosave; name != "" {
		ws.Coordinator.SetOnStateChanged(autosave(a, ws, name))
	}

	script := os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		script = f
	}

	n, runErr := ws.Dispatcher.Run(ctx, script)
	fmt.Println(renderer.RenderOutline("Layout", ws.Outline()))
	fmt.Println(renderer.RenderReplayed(n))
	if runErr != nil {
		return fmt.Errorf("replay %s: %w", args[0], runErr)
	}

	if replaySave != "" {
		if err := a.SaveLayoutUC.Execute(ctx, ws.Coordinator.Snapshot(replaySave)); err != nil {
			return err
		}
		fmt.Println(renderer.RenderSaved(replaySave))
	}
	log.Debug().Int("commands", n).Int("groups", ws.Coordinator.GroupCount()).Msg("replay finished")
	return nil
}

// autosave stores the workspace under name after every layout change.
// Empty layouts are skipped.
func autosave(a *cli.App, ws *cli.Workspace, name string) func() {
	return func() {
		if ws.Coordinator.GroupCount() == 0 {
			return
		}
		if err := a.SaveLayoutUC.Execute(a.Ctx(), ws.Coordinator.Snapshot(name)); err != nil {
			logging.FromContext(a.Ctx()).Warn().Err(err).Str("layout", name).Msg("autosave failed")
		}
	}
}
