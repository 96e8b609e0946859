// Package layout keeps the on-screen arrangement of editor group surfaces.
package layout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/dumbed/internal/application/port"
	"github.com/bnema/dumbed/internal/domain/entity"
	"github.com/bnema/dumbed/internal/logging"
)

// ErrNodeNotFound is returned when a node lookup fails.
var ErrNodeNotFound = errors.New("node not found")

// splitNode is either a leaf holding one group surface or a split
// container with exactly two children.
type splitNode struct {
	groupID  entity.GroupID
	dir      entity.SplitDirection
	parent   *splitNode
	children [2]*splitNode
}

func (n *splitNode) isLeaf() bool {
	return n.groupID != ""
}

// SplitTree is a headless port.RenderSurface. It records where each group
// surface sits as a binary tree of horizontal and vertical splits.
type SplitTree struct {
	root   *splitNode
	leaves map[entity.GroupID]*splitNode
	mu     sync.RWMutex
}

// NewSplitTree creates an empty surface.
func NewSplitTree() *SplitTree {
	return &SplitTree{
		leaves: make(map[entity.GroupID]*splitNode),
	}
}

// AttachGroup places group next to relative on side. With no relative (or an
// unknown one) the whole current tree is split instead.
func (t *SplitTree) AttachGroup(ctx context.Context, group, relative port.EditorGroup, side entity.Side) {
	if group == nil {
		return
	}
	log := logging.FromContext(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()

	id := group.ID()
	if _, exists := t.leaves[id]; exists {
		log.Warn().Str("group_id", string(id)).Msg("group surface already attached")
		return
	}

	leaf := &splitNode{groupID: id}
	t.leaves[id] = leaf

	if t.root == nil {
		t.root = leaf
		log.Debug().Str("group_id", string(id)).Msg("group surface attached as root")
		return
	}

	target := t.root
	if relative != nil {
		if node, ok := t.leaves[relative.ID()]; ok {
			target = node
		} else {
			log.Warn().
				Err(fmt.Errorf("%w: %s", ErrNodeNotFound, relative.ID())).
				Msg("relative group surface missing, splitting root")
		}
	}
	t.splitAround(target, leaf, side)

	log.Debug().
		Str("group_id", string(id)).
		Str("side", string(side)).
		Str("orientation", side.Orientation().String()).
		Msg("group surface attached")
}

// splitAround replaces target with a container holding target and leaf.
// Must be called with lock held.
func (t *SplitTree) splitAround(target, leaf *splitNode, side entity.Side) {
	dir := side.Orientation()
	if dir == entity.SplitNone {
		dir = entity.SplitHorizontal
	}
	container := &splitNode{dir: dir, parent: target.parent}
	if side.NewFirst() {
		container.children = [2]*splitNode{leaf, target}
	} else {
		container.children = [2]*splitNode{target, leaf}
	}

	t.replace(target, container)
	target.parent = container
	leaf.parent = container
}

// replace swaps old for repl in old's parent, or at the root.
// Must be called with lock held.
func (t *SplitTree) replace(old, repl *splitNode) {
	parent := old.parent
	repl.parent = parent
	if parent == nil {
		t.root = repl
		return
	}
	for i, child := range parent.children {
		if child == old {
			parent.children[i] = repl
			return
		}
	}
}

// DetachGroup removes the group's surface; its sibling takes the freed space.
func (t *SplitTree) DetachGroup(ctx context.Context, group port.EditorGroup) {
	if group == nil {
		return
	}
	log := logging.FromContext(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()

	id := group.ID()
	leaf, ok := t.leaves[id]
	if !ok {
		log.Debug().Str("group_id", string(id)).Msg("detach of unknown group surface ignored")
		return
	}
	delete(t.leaves, id)

	parent := leaf.parent
	if parent == nil {
		t.root = nil
		log.Debug().Str("group_id", string(id)).Msg("root group surface detached")
		return
	}

	sibling := parent.children[0]
	if sibling == leaf {
		sibling = parent.children[1]
	}
	t.replace(parent, sibling)

	log.Debug().Str("group_id", string(id)).Msg("group surface detached")
}

// Contains reports whether the group has an attached surface.
func (t *SplitTree) Contains(id entity.GroupID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.leaves[id]
	return ok
}

// Len returns the number of attached group surfaces.
func (t *SplitTree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.leaves)
}

// LeafIDs returns group ids in visual order (left to right, top to bottom).
func (t *SplitTree) LeafIDs() []entity.GroupID {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]entity.GroupID, 0, len(t.leaves))
	var walk func(n *splitNode)
	walk = func(n *splitNode) {
		if n == nil {
			return
		}
		if n.isLeaf() {
			ids = append(ids, n.groupID)
			return
		}
		walk(n.children[0])
		walk(n.children[1])
	}
	walk(t.root)
	return ids
}

// Render returns an indented outline of the tree. label formats a leaf;
// a nil label prints the group id.
func (t *SplitTree) Render(label func(entity.GroupID) string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if label == nil {
		label = func(id entity.GroupID) string { return string(id) }
	}
	if t.root == nil {
		return "(empty)\n"
	}

	var b strings.Builder
	var walk func(n *splitNode, prefix string, last, top bool)
	walk = func(n *splitNode, prefix string, last, top bool) {
		branch, childPrefix := "", prefix
		if !top {
			branch = "├─ "
			childPrefix = prefix + "│  "
			if last {
				branch = "└─ "
				childPrefix = prefix + "   "
			}
		}
		if n.isLeaf() {
			b.WriteString(prefix + branch + label(n.groupID) + "\n")
			return
		}
		b.WriteString(prefix + branch + n.dir.String() + "\n")
		walk(n.children[0], childPrefix, false, false)
		walk(n.children[1], childPrefix, true, false)
	}
	walk(t.root, "", true, true)
	return b.String()
}
