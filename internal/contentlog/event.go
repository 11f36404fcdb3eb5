package contentlog

import (
	"strings"
	"time"
)

const logTimestampLayout = "2006-01-02 15:04:05"

// Kind identifies which line shape produced an Event.
type Kind int

const (
	KindAppUpdateChanged Kind = iota + 1
	KindStateChanged
	KindDownloadProgress
	KindDownloadRate
	KindUpdateCanceled
	KindUpdateFinished
)

func (k Kind) String() string {
	switch k {
	case KindAppUpdateChanged:
		return "app_update_changed"
	case KindStateChanged:
		return "state_changed"
	case KindDownloadProgress:
		return "download_progress"
	case KindDownloadRate:
		return "download_rate"
	case KindUpdateCanceled:
		return "update_canceled"
	case KindUpdateFinished:
		return "update_finished"
	default:
		return "unknown"
	}
}

// LogLine is a raw content log line plus its bracketed timestamp. Time is
// zero when the timestamp does not parse.
type LogLine struct {
	Text string
	Time time.Time
}

// Event is one classified content log line. The concrete types below are the
// only implementations.
type Event interface {
	Kind() Kind
	Source() LogLine
}

// AppUpdateChanged is "AppID <n> App update changed : <flags>".
type AppUpdateChanged struct {
	LogLine
	AppID uint64
	Flags string
}

// StateChanged is "AppID <n> state changed : <flags>".
type StateChanged struct {
	LogLine
	AppID uint64
	Flags string
}

// DownloadProgress is "AppID <n> update started : download <done>/<total>".
type DownloadProgress struct {
	LogLine
	AppID uint64
	Done  uint64
	Total uint64
}

// DownloadRate is "Current download rate: <x> Mbps". It carries no AppID.
type DownloadRate struct {
	LogLine
	Mbps float64
}

// UpdateCanceled is "AppID <n> update canceled : <reason>".
type UpdateCanceled struct {
	LogLine
	AppID  uint64
	Reason string
}

// UpdateFinished is "AppID <n> finished update".
type UpdateFinished struct {
	LogLine
	AppID uint64
}

func (AppUpdateChanged) Kind() Kind { return KindAppUpdateChanged }
func (StateChanged) Kind() Kind { return KindStateChanged }
func (DownloadProgress) Kind() Kind { return KindDownloadProgress }
func (DownloadRate) Kind() Kind { return KindDownloadRate }
func (UpdateCanceled) Kind() Kind { return KindUpdateCanceled }
func (UpdateFinished) Kind() Kind { return KindUpdateFinished }

func (l LogLine) Source() LogLine { return l }

func parseTimestamp(date, clock string) time.Time {
	ts, err := time.ParseInLocation(logTimestampLayout, strings.TrimSpace(date)+" "+strings.TrimSpace(clock), time.Local)
	if err != nil {
		return time.Time{}
	}
	return ts
}
