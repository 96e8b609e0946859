package entity

import (
	"errors"
	"fmt"
	"time"
)

// LayoutStateVersion is the current schema version for layout snapshots.
// Increment when making breaking changes to the serialization format.
const LayoutStateVersion = 1

// ErrInvalidLayoutState is returned when a snapshot cannot be restored.
var ErrInvalidLayoutState = errors.New("invalid layout state")

// LayoutState is a complete snapshot of the editor layout.
// This is serialized to JSON and stored in the database.
type LayoutState struct {
	Version          int             `json:"version"`
	Name             string          `json:"name"`
	Groups           []GroupSnapshot `json:"groups"`
	ActiveGroupIndex int             `json:"active_group_index"`
	SavedAt          time.Time       `json:"saved_at"`
}

// GroupSnapshot captures one editor group in creation order.
type GroupSnapshot struct {
	ID          GroupID            `json:"id"`
	Editors     []EditorSnapshot   `json:"editors"`
	ActiveTabID TabID              `json:"active_tab_id"`
	Placement   *PlacementSnapshot `json:"placement,omitempty"` // nil for a standalone region
}

// PlacementSnapshot records how a group was attached to the render surface.
type PlacementSnapshot struct {
	RelativeGroupID GroupID `json:"relative_group_id,omitempty"`
	Side            Side    `json:"side"`
}

// EditorSnapshot captures the essential state of an editor.
type EditorSnapshot struct {
	ID          EditorID `json:"id"`
	TabID       TabID    `json:"tab_id"`
	ResourceURI string   `json:"resource_uri"`
	Title       string   `json:"title"`
	Hidden      bool     `json:"hidden,omitempty"`
}

// LayoutSummary describes a stored layout without its full content.
type LayoutSummary struct {
	Name        string    `json:"name"`
	GroupCount  int       `json:"group_count"`
	EditorCount int       `json:"editor_count"`
	SizeBytes   int64     `json:"size_bytes"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SnapshotEditor captures an editor.
func SnapshotEditor(e *Editor) EditorSnapshot {
	return EditorSnapshot{
		ID:          e.ID,
		TabID:       e.TabID,
		ResourceURI: e.ResourceURI,
		Title:       e.Title,
	}
}

// ToEditor rebuilds an editor handle from its snapshot.
func (s EditorSnapshot) ToEditor() *Editor {
	e := NewEditor(s.ID, s.TabID, s.ResourceURI)
	if s.Title != "" {
		e.Title = s.Title
	}
	return e
}

// EditorCount returns the total number of editors across all groups.
func (s *LayoutState) EditorCount() int {
	count := 0
	for _, g := range s.Groups {
		count += len(g.Editors)
	}
	return count
}

// Validate checks that the snapshot can be replayed.
func (s *LayoutState) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil state", ErrInvalidLayoutState)
	}
	if s.Version < 1 || s.Version > LayoutStateVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidLayoutState, s.Version)
	}
	if s.ActiveGroupIndex < -1 || s.ActiveGroupIndex >= len(s.Groups) {
		return fmt.Errorf("%w: active group index %d out of range", ErrInvalidLayoutState, s.ActiveGroupIndex)
	}

	seenGroups := make(map[GroupID]bool, len(s.Groups))
	seenTabs := make(map[TabID]bool)
	seenEditors := make(map[EditorID]bool)
	for i, g := range s.Groups {
		if len(g.Editors) == 0 {
			return fmt.Errorf("%w: group %d is empty", ErrInvalidLayoutState, i)
		}
		if g.Placement != nil {
			if !g.Placement.Side.Valid() {
				return fmt.Errorf("%w: group %d has invalid side %q", ErrInvalidLayoutState, i, g.Placement.Side)
			}
			if g.Placement.RelativeGroupID != "" && !seenGroups[g.Placement.RelativeGroupID] {
				return fmt.Errorf("%w: group %d placed relative to unknown group %q",
					ErrInvalidLayoutState, i, g.Placement.RelativeGroupID)
			}
		}
		if seenGroups[g.ID] {
			return fmt.Errorf("%w: duplicate group id %q", ErrInvalidLayoutState, g.ID)
		}
		seenGroups[g.ID] = true

		activeFound := g.ActiveTabID == ""
		for _, e := range g.Editors {
			if seenTabs[e.TabID] {
				return fmt.Errorf("%w: duplicate tab id %q", ErrInvalidLayoutState, e.TabID)
			}
			seenTabs[e.TabID] = true
			// An editor belongs to at most one group.
			if seenEditors[e.ID] {
				return fmt.Errorf("%w: duplicate editor id %q", ErrInvalidLayoutState, e.ID)
			}
			seenEditors[e.ID] = true
			if e.TabID == g.ActiveTabID {
				activeFound = true
			}
		}
		if !activeFound {
			return fmt.Errorf("%w: group %d active tab %q not in group", ErrInvalidLayoutState, i, g.ActiveTabID)
		}
	}
	return nil
}

// Summary returns the listing view of the snapshot.
func (s *LayoutState) Summary() LayoutSummary {
	return LayoutSummary{
		Name:        s.Name,
		GroupCount:  len(s.Groups),
		EditorCount: s.EditorCount(),
		UpdatedAt:   s.SavedAt,
	}
}
