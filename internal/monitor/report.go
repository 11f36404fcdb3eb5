package monitor

import (
	"time"

	"github.com/five82/steamtail/internal/contentlog"
)

// ReportKind says which of the three line shapes a cycle produced.
type ReportKind int

const (
	// ReportLive carries a computed snapshot for the active app.
	ReportLive ReportKind = iota
	// ReportNoActive means no app was downloading or updating.
	ReportNoActive
	// ReportDone is emitted for every cycle after the run latched.
	ReportDone
)

// StatusDone is shown for latched cycles.
const StatusDone = "DONE"

// Report is the outcome of one cycle.
type Report struct {
	At       time.Time
	Cycle    int // 1-based
	Total    int
	Kind     ReportKind
	AppID    uint64
	Name     string
	Snapshot contentlog.Snapshot
}

// Status returns the label shown in the status column.
func (r Report) Status() string {
	switch r.Kind {
	case ReportDone:
		return StatusDone
	case ReportNoActive:
		return string(contentlog.StatusIdle)
	default:
		return string(r.Snapshot.Status)
	}
}
