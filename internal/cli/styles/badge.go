package styles

import (
	"fmt"
	"time"
)

// CountBadge renders "n noun" with a naive plural.
func (t *Theme) CountBadge(n int, noun string) string {
	if n != 1 {
		noun += "s"
	}
	return t.BadgeMuted.Render(fmt.Sprintf("%d %s", n, noun))
}

// TimeBadge renders a relative time badge.
func (t *Theme) TimeBadge(tm time.Time) string {
	return t.BadgeMuted.Render(RelativeTime(tm))
}

// RelativeTime formats a time as a human-readable relative string.
func RelativeTime(tm time.Time) string {
	return relativeTo(time.Now(), tm)
}

func relativeTo(now, tm time.Time) string {
	diff := now.Sub(tm)

	unit := func(n int, suffix string) string {
		return fmt.Sprintf("%d%s ago", n, suffix)
	}

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return unit(int(diff.Minutes()), "m")
	case diff < 24*time.Hour:
		return unit(int(diff.Hours()), "h")
	case diff < 7*24*time.Hour:
		return unit(int(diff.Hours()/24), "d")
	case diff < 30*24*time.Hour:
		return unit(int(diff.Hours()/(24*7)), "w")
	case diff < 365*24*time.Hour:
		return unit(int(diff.Hours()/(24*30)), "mo")
	default:
		return unit(int(diff.Hours()/(24*365)), "y")
	}
}
