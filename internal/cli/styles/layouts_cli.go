package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/dumbed/internal/domain/entity"
)

// LayoutsCLIRenderer renders non-interactive output for the layout commands.
type LayoutsCLIRenderer struct {
	theme *Theme
}

func NewLayoutsCLIRenderer(theme *Theme) *LayoutsCLIRenderer {
	return &LayoutsCLIRenderer{theme: theme}
}

func (r *LayoutsCLIRenderer) RenderEmptyList() string {
	return r.theme.Subtle.Render("No saved layouts found.")
}

func (r *LayoutsCLIRenderer) RenderList(items []entity.LayoutSummary) string {
	if len(items) == 0 {
		return r.RenderEmptyList()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", r.theme.Highlight.Render(IconLayout), r.theme.Title.Render("Layouts"))
	for _, s := range items {
		fmt.Fprintf(&b, "  %s  %s %s  %s\n",
			r.theme.Highlight.Render(s.Name),
			r.theme.CountBadge(s.GroupCount, "region"),
			r.theme.CountBadge(s.EditorCount, "editor"),
			r.theme.Subtle.Render(RelativeTime(s.UpdatedAt)),
		)
	}
	b.WriteString("\n")
	b.WriteString(r.theme.Subtle.Render("Tip: use `dumbed layouts` for the interactive browser."))
	return b.String()
}

// RenderOutline styles a split tree outline produced by the workspace.
func (r *LayoutsCLIRenderer) RenderOutline(title, outline string) string {
	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "%s %s\n", r.theme.Highlight.Render(IconLayout), r.theme.Title.Render(title))
	}
	b.WriteString(StyleOutline(r.theme, outline))
	return strings.TrimRight(b.String(), "\n")
}

// StyleOutline colors tree connectors, split directions and the active region.
func StyleOutline(t *Theme, outline string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(outline, "\n"), "\n") {
		body := strings.TrimLeft(line, "│├└─ ")
		prefix := line[:len(line)-len(body)]
		b.WriteString(t.TreeBranch.Render(prefix))
		switch {
		case body == entity.SplitHorizontal.String() || body == entity.SplitVertical.String():
			b.WriteString(t.TreeSplit.Render(body))
		case strings.HasPrefix(body, "> "):
			b.WriteString(t.TreeActive.Render(body))
		default:
			b.WriteString(t.Normal.Render(body))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (r *LayoutsCLIRenderer) RenderSaved(name string) string {
	return fmt.Sprintf("%s Layout %s saved.",
		r.theme.SuccessStyle.Render(IconSave),
		r.theme.Highlight.Render(name),
	)
}

func (r *LayoutsCLIRenderer) RenderRestored(name string) string {
	return fmt.Sprintf("%s Restored layout %s.",
		r.theme.SuccessStyle.Render(IconRestore),
		r.theme.Highlight.Render(name),
	)
}

func (r *LayoutsCLIRenderer) RenderDeleted(name string) string {
	return fmt.Sprintf("%s Layout %s deleted.",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(name),
	)
}

func (r *LayoutsCLIRenderer) RenderReplayed(commands int) string {
	return r.theme.Subtle.Render(fmt.Sprintf("%s %d command(s) applied", IconScript, commands))
}

func (r *LayoutsCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}

// ScriptCheck is the result of parsing one layout script.
type ScriptCheck struct {
	Path     string
	Commands int
	Err      error
}

// RenderChecks renders one line per script followed by a summary.
func (r *LayoutsCLIRenderer) RenderChecks(checks []ScriptCheck) string {
	var b strings.Builder
	failed := 0
	for _, c := range checks {
		if c.Err != nil {
			failed++
			fmt.Fprintf(&b, "%s %s  %s\n", r.theme.ErrorStyle.Render(IconX), c.Path, r.theme.ErrorStyle.Render(c.Err.Error()))
			continue
		}
		fmt.Fprintf(&b, "%s %s  %s\n", r.theme.SuccessStyle.Render(IconCheck), c.Path,
			r.theme.Subtle.Render(fmt.Sprintf("%d command(s)", c.Commands)))
	}

	summary := fmt.Sprintf("%d script(s), %d failed", len(checks), failed)
	if failed > 0 {
		b.WriteString(r.theme.WarningStyle.Render(summary))
	} else {
		b.WriteString(r.theme.SuccessStyle.Render(summary))
	}
	return b.String()
}
