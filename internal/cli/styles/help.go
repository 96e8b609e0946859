package styles

import (
	"github.com/charmbracelet/bubbles/help"
)

// NewStyledHelp creates a help model whose keys use the accent color.
func NewStyledHelp(theme *Theme) help.Model {
	key := theme.Highlight.UnsetBold()
	sep := theme.TreeBranch

	h := help.New()
	h.ShortSeparator = " · "
	h.Styles = help.Styles{
		Ellipsis:       sep,
		ShortKey:       key,
		ShortDesc:      theme.Subtle,
		ShortSeparator: sep,
		FullKey:        key,
		FullDesc:       theme.Normal,
		FullSeparator:  sep,
	}
	return h
}
