package styles

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbed/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// LayoutTableColumns returns columns for the saved layouts table.
func LayoutTableColumns() []table.Column {
	return []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Regions", Width: 8},
		{Title: "Editors", Width: 8},
		{Title: "Size", Width: 8},
		{Title: "Updated", Width: 12},
	}
}

// LayoutSummaryRow converts a layout summary to a table row.
func LayoutSummaryRow(s entity.LayoutSummary) table.Row {
	return table.Row{
		s.Name,
		fmt.Sprintf("%d", s.GroupCount),
		fmt.Sprintf("%d", s.EditorCount),
		FormatBytes(s.SizeBytes),
		RelativeTime(s.UpdatedAt),
	}
}

// FormatBytes renders a byte count as B, KB or MB.
func FormatBytes(n int64) string {
	const unit = 1024
	switch {
	case n < unit:
		return fmt.Sprintf("%d B", n)
	case n < unit*unit:
		return fmt.Sprintf("%.1f KB", float64(n)/unit)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(unit*unit))
	}
}
