package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbed/internal/domain/build"
)

// VersionRenderer renders build information.
type VersionRenderer struct {
	theme *Theme
}

// NewVersionRenderer creates a new VersionRenderer.
func NewVersionRenderer(theme *Theme) *VersionRenderer {
	return &VersionRenderer{theme: theme}
}

// Render renders one labelled line per build field.
func (r *VersionRenderer) Render(info build.Info) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	line := func(icon, label, value string) string {
		if value == "" {
			value = "unknown"
		}
		return fmt.Sprintf("%s %s %s", iconStyle.Render(icon), keyStyle.Render(label), valStyle.Render(value))
	}

	title := r.theme.Title.Render("dumbed")
	if info.IsDev() {
		title += " " + r.theme.WarningStyle.Render("development build")
	}

	return strings.Join([]string{
		title,
		line(IconVersion, "Version", info.Version),
		line(IconGitBranch, "Commit", info.ShortCommit()),
		line(IconCalendar, "Built", info.BuildDate),
		line(IconGo, "Go", info.GoVersion),
		keyStyle.Render(build.RepoURL()),
	}, "\n")
}
