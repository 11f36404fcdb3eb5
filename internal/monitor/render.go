package monitor

import (
	"fmt"
	"strings"

	"github.com/five82/steamtail/internal/contentlog"
)

const (
	clockLayout  = "15:04:05"
	unknownSpeed = "unknown"
	unknownProg  = "progress: unknown"
	noActiveText = "No active Steam download/update detected"
	doneSpeed    = "0.00 MB/s (0.000 Mbps)"
	doneProgress = "progress: finished"
)

// BadgeFunc decorates the status column, e.g. with colour. Nil leaves it
// plain.
type BadgeFunc func(status string) string

// FormatLine renders one Report as a console line:
//
//	[HH:MM:SS] c/N  <name> | <STATUS> | <speed> | <progress>
func FormatLine(r Report, badge BadgeFunc) string {
	if badge == nil {
		badge = func(s string) string { return s }
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %d/%d  ", r.At.Format(clockLayout), r.Cycle, r.Total)

	switch r.Kind {
	case ReportNoActive:
		b.WriteString(noActiveText)
	case ReportDone:
		fmt.Fprintf(&b, "%s | %s | %s | %s", r.Name, badge(StatusDone), doneSpeed, doneProgress)
	default:
		fmt.Fprintf(&b, "%s | %s | %s | %s", r.Name, badge(r.Status()), FormatSpeed(r.Snapshot.RateMbps), FormatProgress(r.Snapshot))
	}
	return b.String()
}

// FormatSpeed renders a rate in megabytes and megabits per second.
func FormatSpeed(mbps *float64) string {
	if mbps == nil {
		return unknownSpeed
	}
	return fmt.Sprintf("%.2f MB/s (%.3f Mbps)", MegabytesPerSecond(*mbps), *mbps)
}

// FormatProgress renders done/total bytes with a percentage.
func FormatProgress(snap contentlog.Snapshot) string {
	pct, ok := snap.Percent()
	if !ok {
		return unknownProg
	}
	return fmt.Sprintf("%.1f%% (%d/%d bytes)", pct, *snap.Done, *snap.Total)
}

// MegabytesPerSecond converts megabits to megabytes.
func MegabytesPerSecond(mbps float64) float64 {
	return mbps / 8
}
