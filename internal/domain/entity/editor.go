// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"path"
	"strings"
	"time"
)

// EditorID uniquely identifies an open editor instance.
type EditorID string

// TabID identifies the tab an editor is shown in.
type TabID string

// GroupID uniquely identifies an editor group (one split region).
type GroupID string

// Editor is a handle to one open editor.
// Two editors may show the same resource; they never share a tab.
type Editor struct {
	ID          EditorID
	TabID       TabID
	ResourceURI string
	Title       string
	CreatedAt   time.Time
}

// NewEditor creates an editor handle titled after the resource's last path element.
func NewEditor(id EditorID, tabID TabID, resourceURI string) *Editor {
	return &Editor{
		ID:          id,
		TabID:       tabID,
		ResourceURI: resourceURI,
		Title:       titleFromResource(resourceURI),
		CreatedAt:   time.Now(),
	}
}

func titleFromResource(uri string) string {
	trimmed := strings.TrimRight(uri, "/")
	if i := strings.Index(trimmed, "://"); i >= 0 {
		trimmed = trimmed[i+3:]
	}
	if trimmed == "" {
		return "Untitled"
	}
	return path.Base(trimmed)
}
