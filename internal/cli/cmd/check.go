package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/dumbed/internal/cli/styles"
	"github.com/bnema/dumbed/internal/ui/dispatcher"
)

var errScriptsInvalid = errors.New("invalid layout scripts")

var checkCmd = &cobra.Command{
	Use:   "check <script>...",
	Short: "Parse layout scripts without running them",
	Long: `Parse every given layout script and report the first error of each.

Nothing is executed. Exits non-zero when any script fails to parse.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	checks, err := checkScripts(cmd.Context(), args)
	if err != nil {
		return err
	}

	fmt.Println(styles.NewLayoutsCLIRenderer(styles.NewTheme()).RenderChecks(checks))
	for _, c := range checks {
		if c.Err != nil {
			return errScriptsInvalid
		}
	}
	return nil
}

// checkScripts parses each script concurrently. Results keep the order of paths.
func checkScripts(ctx context.Context, paths []string) ([]styles.ScriptCheck, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	checks := make([]styles.ScriptCheck, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			checks[i] = parseScriptFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return checks, nil
}

func parseScriptFile(path string) styles.ScriptCheck {
	check := styles.ScriptCheck{Path: path}
	f, err := os.Open(path)
	if err != nil {
		check.Err = err
		return check
	}
	defer f.Close()

	cmds, err := dispatcher.ParseScript(f)
	check.Commands = len(cmds)
	check.Err = err
	return check
}
