package app

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/five82/steamtail/internal/monitor"
)

type emitter interface {
	Emit(monitor.Report) error
}

type textEmitter struct {
	w     io.Writer
	badge monitor.BadgeFunc
}

func (e textEmitter) Emit(r monitor.Report) error {
	_, err := fmt.Fprintln(e.w, monitor.FormatLine(r, e.badge))
	return err
}

// jsonReport is the --json line shape.
type jsonReport struct {
	Time       string   `json:"time"`
	Cycle      int      `json:"cycle"`
	Cycles     int      `json:"cycles"`
	Kind       string   `json:"kind"`
	AppID      uint64   `json:"app_id,omitempty"`
	Name       string   `json:"name,omitempty"`
	Status     string   `json:"status"`
	RateMbps   *float64 `json:"rate_mbps"`
	RateMBps   *float64 `json:"rate_mb_s"`
	DoneBytes  *uint64  `json:"done_bytes"`
	TotalBytes *uint64  `json:"total_bytes"`
	Percent    *float64 `json:"percent"`
}

type jsonEmitter struct {
	enc *json.Encoder
}

func newJSONEmitter(w io.Writer) jsonEmitter {
	return jsonEmitter{enc: json.NewEncoder(w)}
}

func (e jsonEmitter) Emit(r monitor.Report) error {
	return e.enc.Encode(toJSONReport(r))
}

func toJSONReport(r monitor.Report) jsonReport {
	out := jsonReport{
		Time:   r.At.Format(time.RFC3339),
		Cycle:  r.Cycle,
		Cycles: r.Total,
		AppID:  r.AppID,
		Name:   r.Name,
		Status: r.Status(),
	}
	switch r.Kind {
	case monitor.ReportNoActive:
		out.Kind = "no_active"
	case monitor.ReportDone:
		out.Kind = "done"
	default:
		out.Kind = "live"
		snap := r.Snapshot
		out.RateMbps = snap.RateMbps
		if snap.RateMbps != nil {
			mbs := monitor.MegabytesPerSecond(*snap.RateMbps)
			out.RateMBps = &mbs
		}
		out.DoneBytes = snap.Done
		out.TotalBytes = snap.Total
		if pct, ok := snap.Percent(); ok {
			out.Percent = &pct
		}
	}
	return out
}
