// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbed/internal/application/usecase"
	"github.com/bnema/dumbed/internal/cli/styles"
	"github.com/bnema/dumbed/internal/domain/entity"
	"github.com/bnema/dumbed/internal/logging"
)

// PreviewFunc renders the named layout as a split tree outline.
type PreviewFunc func(ctx context.Context, name string) (string, error)

// LayoutsModel is the Bubble Tea model for the interactive layout browser.
type LayoutsModel struct {
	// UI components
	table   table.Model
	help    help.Model
	keys    layoutsKeyMap
	confirm *styles.ConfirmModel

	// State
	layouts       []entity.LayoutSummary
	preview       string
	previewName   string
	width         int
	height        int
	err           error
	statusMessage string

	// Dependencies
	ctx      context.Context
	listUC   *usecase.ListLayoutsUseCase
	deleteUC *usecase.DeleteLayoutUseCase
	render   PreviewFunc
	theme    *styles.Theme
}

type layoutsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Preview key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k layoutsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Preview, k.Delete, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k layoutsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Preview},
		{k.Delete, k.Refresh},
		{k.Help, k.Quit},
	}
}

func defaultLayoutsKeyMap() layoutsKeyMap {
	return layoutsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Preview: key.NewBinding(
			key.WithKeys("enter", "p"),
			key.WithHelp("enter", "preview"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "delete"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LayoutsModelConfig holds the dependencies of the layouts model.
type LayoutsModelConfig struct {
	ListUC   *usecase.ListLayoutsUseCase
	DeleteUC *usecase.DeleteLayoutUseCase
	Preview  PreviewFunc
}

// NewLayoutsModel creates a new layout browser model.
func NewLayoutsModel(ctx context.Context, theme *styles.Theme, cfg LayoutsModelConfig) LayoutsModel {
	return LayoutsModel{
		table:    styles.NewStyledTable(theme, styles.LayoutTableColumns(), nil, 80, 10),
		help:     styles.NewStyledHelp(theme),
		keys:     defaultLayoutsKeyMap(),
		width:    80,
		height:   24,
		ctx:      ctx,
		listUC:   cfg.ListUC,
		deleteUC: cfg.DeleteUC,
		render:   cfg.Preview,
		theme:    theme,
	}
}

type layoutsLoadedMsg struct {
	layouts []entity.LayoutSummary
	err     error
}

type layoutDeletedMsg struct {
	name string
	err  error
}

type previewLoadedMsg struct {
	name    string
	outline string
	err     error
}

// Init implements tea.Model.
func (m LayoutsModel) Init() tea.Cmd {
	return m.loadLayouts
}

func (m LayoutsModel) loadLayouts() tea.Msg {
	log := logging.FromContext(m.ctx)
	if m.listUC == nil {
		return layoutsLoadedMsg{err: fmt.Errorf("layout storage not available")}
	}

	layouts, err := m.listUC.Execute(m.ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load layouts")
		return layoutsLoadedMsg{err: err}
	}
	log.Debug().Int("count", len(layouts)).Msg("loaded layouts")
	return layoutsLoadedMsg{layouts: layouts}
}

// Update implements tea.Model.
func (m LayoutsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.handleConfirmModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(max(3, msg.Height/2))
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case layoutsLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.setLayouts(msg.layouts)
		}
		return m, nil

	case layoutDeletedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.statusMessage = fmt.Sprintf("Layout %s deleted", msg.name)
		if m.previewName == msg.name {
			m.clearPreview()
		}
		return m, m.loadLayouts

	case previewLoadedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", msg.err)
			m.clearPreview()
			return m, nil
		}
		m.preview = msg.outline
		m.previewName = msg.name
		return m, nil
	}

	return m, nil
}

func (m *LayoutsModel) setLayouts(layouts []entity.LayoutSummary) {
	m.layouts = layouts
	rows := make([]table.Row, 0, len(layouts))
	for _, l := range layouts {
		rows = append(rows, styles.LayoutSummaryRow(l))
	}
	m.table.SetRows(rows)
	if cursor := m.table.Cursor(); cursor >= len(rows) {
		m.table.SetCursor(max(0, len(rows)-1))
	}
}

func (m *LayoutsModel) clearPreview() {
	m.preview = ""
	m.previewName = ""
}

// selected returns the summary under the cursor.
func (m LayoutsModel) selected() (entity.LayoutSummary, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.layouts) {
		return entity.LayoutSummary{}, false
	}
	return m.layouts[idx], true
}

func (m LayoutsModel) handleConfirmModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if !m.confirm.Done() {
		return m, cmd
	}
	if m.confirm.Result() {
		if layout, ok := m.selected(); ok {
			cmd = m.deleteLayout(layout.Name)
		}
	}
	m.confirm = nil
	return m, cmd
}

func (m LayoutsModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Preview):
		layout, ok := m.selected()
		if !ok {
			return m, nil
		}
		if m.previewName == layout.Name {
			m.clearPreview()
			return m, nil
		}
		return m, m.previewLayout(layout.Name)

	case key.Matches(msg, m.keys.Delete):
		if layout, ok := m.selected(); ok {
			confirm := styles.NewConfirm(m.theme, fmt.Sprintf("Delete layout %s?", layout.Name))
			m.confirm = &confirm
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.statusMessage = ""
		return m, m.loadLayouts

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	before := m.table.Cursor()
	m.table, cmd = m.table.Update(msg)
	if m.table.Cursor() != before {
		m.clearPreview()
	}
	return m, cmd
}

func (m LayoutsModel) deleteLayout(name string) tea.Cmd {
	return func() tea.Msg {
		logging.FromContext(m.ctx).Info().Str("layout", name).Msg("deleting layout")
		if m.deleteUC == nil {
			return layoutDeletedMsg{name: name, err: fmt.Errorf("layout storage not available")}
		}
		return layoutDeletedMsg{name: name, err: m.deleteUC.Execute(m.ctx, name)}
	}
}

func (m LayoutsModel) previewLayout(name string) tea.Cmd {
	return func() tea.Msg {
		if m.render == nil {
			return previewLoadedMsg{name: name, err: fmt.Errorf("preview not available")}
		}
		outline, err := m.render(m.ctx, name)
		return previewLoadedMsg{name: name, outline: outline, err: err}
	}
}

// View implements tea.Model.
func (m LayoutsModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	t := m.theme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%s Error: %v", styles.IconX, m.err)))
		b.WriteString("\n\n")
	}
	if m.statusMessage != "" {
		b.WriteString(t.Subtle.Render(m.statusMessage))
		b.WriteString("\n\n")
	}

	if len(m.layouts) == 0 {
		b.WriteString(t.Subtle.Render("  No saved layouts found."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	if m.preview != "" {
		b.WriteString("\n")
		body := t.Highlight.Render(m.previewName) + "\n" + strings.TrimRight(styles.StyleOutline(t, m.preview), "\n")
		b.WriteString(t.Box.PaddingTop(0).Render(body))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m LayoutsModel) renderHeader() string {
	t := m.theme
	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)

	editors := 0
	for _, l := range m.layouts {
		editors += l.EditorCount
	}
	stats := t.Subtle.Render(fmt.Sprintf("  %d saved  %s %d editors", len(m.layouts), styles.IconEditor, editors))
	return iconStyle.Render(styles.IconLayout) + t.Title.MarginLeft(1).Render("Layouts") + stats
}

var _ tea.Model = (*LayoutsModel)(nil)
