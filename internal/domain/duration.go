package domain

import (
	"fmt"
	"time"
)

// ComputeDuration returns the absolute distance between start and end in
// whole seconds. Never negative.
func ComputeDuration(start, end time.Time) int {
	d := end.Sub(start)
	if d < 0 {
		d = -d
	}
	return int(d / time.Second)
}

// FormatHMS renders seconds as zero-padded HH:MM:SS. Hours are unbounded;
// there is no 24-hour wraparound.
func FormatHMS(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// FormatHuman renders seconds as a compact duration such as "2h 30m", "45m"
// or "1h", omitting zero components. Anything under a minute is "< 1m".
func FormatHuman(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	switch {
	case hours == 0 && minutes == 0:
		return "< 1m"
	case hours == 0:
		return fmt.Sprintf("%dm", minutes)
	case minutes == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
}

// FormatRelative renders how long ago t was relative to now, for the session
// history list.
func FormatRelative(t, now time.Time) string {
	diff := now.Sub(t)
	mins := int(diff / time.Minute)
	hours := int(diff / time.Hour)
	days := int(diff / (24 * time.Hour))

	switch {
	case mins < 1:
		return "Just now"
	case mins < 60:
		return fmt.Sprintf("%dm ago", mins)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	default:
		return t.Format("Jan 2")
	}
}
