package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/dumbed/internal/application/usecase"
	"github.com/bnema/dumbed/internal/domain/entity"
	"github.com/bnema/dumbed/internal/infrastructure/eventbus"
	"github.com/bnema/dumbed/internal/logging"
	"github.com/bnema/dumbed/internal/ui/coordinator"
	"github.com/bnema/dumbed/internal/ui/dispatcher"
	"github.com/bnema/dumbed/internal/ui/layout"
)

// Workspace is one in-memory editor layout: event bus, split tree,
// coordinator and a script dispatcher driving them.
type Workspace struct {
	Events      *eventbus.Bus
	Tree        *layout.SplitTree
	Coordinator *coordinator.EditorLayoutCoordinator
	Dispatcher  *dispatcher.ScriptDispatcher
}

// WorkspaceConfig holds the layout settings for a new workspace.
type WorkspaceConfig struct {
	DefaultSide  string
	HistoryLimit int
	// GroupIDs defaults to g1, g2, ...
	GroupIDs usecase.IDGenerator
	// EditorIDs defaults to random UUIDs.
	EditorIDs usecase.IDGenerator
}

// NewWorkspace builds an empty layout. An invalid default side falls back to right.
func NewWorkspace(ctx context.Context, cfg WorkspaceConfig) *Workspace {
	log := logging.FromContext(ctx)

	groupIDs := cfg.GroupIDs
	if groupIDs == nil {
		groupIDs = usecase.NewSequenceGenerator("g")
	}
	editorIDs := cfg.EditorIDs
	if editorIDs == nil {
		editorIDs = usecase.NewUUIDGenerator()
	}
	side, err := entity.ParseSide(cfg.DefaultSide)
	if err != nil {
		log.Warn().Err(err).Msg("invalid default side, using right")
		side = entity.SideRight
	}

	bus := eventbus.New()
	tree := layout.NewSplitTree()
	coord := coordinator.NewEditorLayoutCoordinator(ctx, coordinator.EditorLayoutCoordinatorConfig{
		GroupFactory: usecase.NewEditorGroupFactory(groupIDs, cfg.HistoryLimit),
		Surface:      tree,
		Events:       bus,
		DefaultSide:  side,
	})

	return &Workspace{
		Events:      bus,
		Tree:        tree,
		Coordinator: coord,
		Dispatcher:  dispatcher.NewScriptDispatcher(ctx, coord, bus, editorIDs),
	}
}

// NewWorkspace builds a workspace from the loaded configuration.
func (a *App) NewWorkspace() *Workspace {
	return NewWorkspace(a.ctx, WorkspaceConfig{
		DefaultSide:  a.Config.Layout.DefaultSide,
		HistoryLimit: a.Config.Layout.HistoryLimit,
	})
}

// Close stops the coordinator from reacting to events.
func (w *Workspace) Close() {
	w.Coordinator.Close()
}

// Outline renders the split tree with each region's tabs. Active tabs get a
// '*' and hidden tabs are parenthesized. The active region is prefixed with '>'.
func (w *Workspace) Outline() string {
	active := w.Coordinator.ActiveGroup()
	groups := make(map[entity.GroupID][]string)
	for _, g := range w.Coordinator.Groups() {
		var tabs []string
		for _, e := range g.Editors() {
			tab := string(e.TabID)
			switch current := g.ActiveEditor(); {
			case current != nil && current.ID == e.ID:
				tab += "*"
			case g.IsHidden(e):
				tab = "(" + tab + ")"
			}
			tabs = append(tabs, tab)
		}
		groups[g.ID()] = tabs
	}

	return w.Tree.Render(func(id entity.GroupID) string {
		marker := ""
		if active != nil && active.ID() == id {
			marker = "> "
		}
		return fmt.Sprintf("%s%s [%s]", marker, id, strings.Join(groups[id], " "))
	})
}

// OutlineState renders a stored layout without touching any live workspace.
func OutlineState(ctx context.Context, state *entity.LayoutState) (string, error) {
	ws := NewWorkspace(ctx, WorkspaceConfig{DefaultSide: string(entity.SideRight)})
	defer ws.Close()
	if err := ws.Coordinator.Restore(ctx, state); err != nil {
		return "", err
	}
	return ws.Outline(), nil
}
