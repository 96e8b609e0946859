// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of base colors a Theme is built from.
type Palette struct {
	Background     string
	Surface        string
	SurfaceVariant string
	Text           string
	Muted          string
	Accent         string
	Border         string
	Error          string
	Warning        string
}

// Theme holds lipgloss colors and the styles derived from them.
type Theme struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Confirm dialog buttons
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style

	BadgeMuted lipgloss.Style

	// Split tree outlines
	TreeBranch lipgloss.Style
	TreeSplit  lipgloss.Style
	TreeActive lipgloss.Style

	Box lipgloss.Style
}

// DarkPalette is used on dark terminals.
func DarkPalette() Palette {
	return Palette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
		Error:          "#ef4444",
		Warning:        "#f59e0b",
	}
}

// LightPalette is used on light terminals.
func LightPalette() Palette {
	return Palette{
		Background:     "#fafafa",
		Surface:        "#ececec",
		SurfaceVariant: "#dcdcdc",
		Text:           "#111111",
		Muted:          "#6b6b6b",
		Accent:         "#15803d",
		Border:         "#c4c4c4",
		Error:          "#b91c1c",
		Warning:        "#b45309",
	}
}

// NewTheme picks the palette matching the terminal background.
func NewTheme() *Theme {
	if lipgloss.HasDarkBackground() {
		return NewThemeFromPalette(DarkPalette())
	}
	return NewThemeFromPalette(LightPalette())
}

// NewThemeFromPalette creates a Theme from a Palette.
func NewThemeFromPalette(p Palette) *Theme {
	t := &Theme{
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),
		Error:          lipgloss.Color(p.Error),
		Warning:        lipgloss.Color(p.Warning),
		Success:        lipgloss.Color(p.Accent),
	}

	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	t.Title = fg(t.Text).Bold(true)
	t.Normal = fg(t.Text)
	t.Subtle = fg(t.Muted)
	t.Highlight = fg(t.Accent).Bold(true)
	t.ErrorStyle = fg(t.Error)
	t.WarningStyle = fg(t.Warning)
	t.SuccessStyle = fg(t.Success)

	t.ActiveTab = fg(t.Background).Background(t.Accent).Padding(0, 2).Bold(true)
	t.InactiveTab = fg(t.Muted).Background(t.Surface).Padding(0, 2)
	t.BadgeMuted = fg(t.Text).Background(t.SurfaceVariant).Padding(0, 1)

	t.TreeBranch = fg(t.Border)
	t.TreeSplit = fg(t.Muted).Italic(true)
	t.TreeActive = fg(t.Accent).Bold(true)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
	return t
}
