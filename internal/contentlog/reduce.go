package contentlog

import "strings"

// Status is the derived state of one app.
type Status string

const (
	StatusDownloading   Status = "DOWNLOADING"
	StatusPaused        Status = "PAUSED"
	StatusRunningUpdate Status = "RUNNING_UPDATE"
	StatusIdle          Status = "IDLE"
)

var pausedMarkers = []string{"suspended", "paused", "stopping", "disabled"}

// Snapshot is the status of one app computed from a single window. Nil
// pointers mean the window held no such information.
type Snapshot struct {
	Done     *uint64
	Total    *uint64
	RateMbps *float64
	Status   Status
}

// Percent returns done/total as a percentage. ok is false when progress is
// unknown or total is zero.
func (s Snapshot) Percent() (float64, bool) {
	if s.Done == nil || s.Total == nil || *s.Total == 0 {
		return 0, false
	}
	return float64(*s.Done) / float64(*s.Total) * 100, true
}

// ActiveApp returns the AppID of the last "App update changed" event whose
// flags mention Downloading or Running Update.
func ActiveApp(events []Event) (uint64, bool) {
	var (
		active uint64
		found  bool
	)
	for _, ev := range events {
		e, ok := ev.(AppUpdateChanged)
		if !ok {
			continue
		}
		if strings.Contains(e.Flags, "Downloading") || strings.Contains(e.Flags, "Running Update") {
			active, found = e.AppID, true
		}
	}
	return active, found
}

// Finished reports whether the window holds a "finished update" for appID.
func Finished(appID uint64, events []Event) bool {
	for _, ev := range events {
		if e, ok := ev.(UpdateFinished); ok && e.AppID == appID {
			return true
		}
	}
	return false
}

// Summarize folds the window into a Snapshot for appID. The download rate is
// taken from the last rate line regardless of app because the client does not
// say which app a rate belongs to.
func Summarize(appID uint64, events []Event) Snapshot {
	var (
		snap                        Snapshot
		appFlags, stateFlags, cause string
	)
	for _, ev := range events {
		switch e := ev.(type) {
		case AppUpdateChanged:
			if e.AppID == appID {
				appFlags = e.Flags
			}
		case StateChanged:
			if e.AppID == appID {
				stateFlags = e.Flags
			}
		case DownloadProgress:
			if e.AppID == appID {
				done, total := e.Done, e.Total
				snap.Done, snap.Total = &done, &total
			}
		case UpdateCanceled:
			if e.AppID == appID {
				cause = e.Reason
			}
		case DownloadRate:
			rate := e.Mbps
			snap.RateMbps = &rate
		}
	}

	snap.Status = applyRate(textStatus(appFlags, stateFlags, cause), snap.RateMbps)
	return snap
}

func textStatus(parts ...string) Status {
	present := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	combined := strings.ToLower(strings.Join(present, " "))

	switch {
	case strings.Contains(combined, "downloading"):
		return StatusDownloading
	case containsAny(combined, pausedMarkers):
		return StatusPaused
	case strings.Contains(combined, "running update"):
		return StatusRunningUpdate
	default:
		return StatusIdle
	}
}

// applyRate lets a measured rate override the textual status: any traffic
// means downloading, and a zero rate demotes an active status to paused.
func applyRate(status Status, rate *float64) Status {
	if rate == nil {
		return status
	}
	switch {
	case *rate > 0:
		return StatusDownloading
	case *rate == 0 && (status == StatusDownloading || status == StatusRunningUpdate):
		return StatusPaused
	}
	return status
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
