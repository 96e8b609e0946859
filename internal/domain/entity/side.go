package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSide is returned when a placement side cannot be parsed.
var ErrInvalidSide = errors.New("invalid side")

// SplitDirection indicates how a split container arranges its children.
type SplitDirection int

const (
	SplitNone       SplitDirection = iota // Leaf node
	SplitHorizontal                       // Left/right split
	SplitVertical                         // Top/bottom split
)

// String returns the direction name.
func (d SplitDirection) String() string {
	switch d {
	case SplitHorizontal:
		return "horizontal"
	case SplitVertical:
		return "vertical"
	default:
		return "none"
	}
}

// Side is where a new split region goes relative to a reference region.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
	SideUp    Side = "up"
	SideDown  Side = "down"
)

// ParseSide parses a side name. "above"/"below" are accepted as aliases.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return SideLeft, nil
	case "right":
		return SideRight, nil
	case "up", "above", "top":
		return SideUp, nil
	case "down", "below", "bottom":
		return SideDown, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSide, s)
}

// Valid reports whether s is one of the four known sides.
func (s Side) Valid() bool {
	switch s {
	case SideLeft, SideRight, SideUp, SideDown:
		return true
	}
	return false
}

// Orientation returns the split direction implied by the side.
func (s Side) Orientation() SplitDirection {
	switch s {
	case SideLeft, SideRight:
		return SplitHorizontal
	case SideUp, SideDown:
		return SplitVertical
	}
	return SplitNone
}

// NewFirst reports whether the new region precedes the reference region.
func (s Side) NewFirst() bool {
	return s == SideLeft || s == SideUp
}

// Constraint places a new editor group next to the group owning RelativeTabID.
type Constraint struct {
	RelativeTabID TabID
	Side          Side
}
