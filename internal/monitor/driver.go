package monitor

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/five82/steamtail/internal/contentlog"
)

const (
	// DefaultCycles is how many polls a run makes.
	DefaultCycles = 5
	// DefaultInterval is the pause between polls.
	DefaultInterval = 60 * time.Second

	// idleLatch is how many idle cycles in a row end the run.
	idleLatch = 2
	// GenericDoneLabel names the latched line when no app was active.
	GenericDoneLabel = "Steam"
)

// DriverState is everything the poller carries from one cycle to the next.
type DriverState struct {
	IdleStreak int
	DoneMode   bool
	DoneLabel  string
	Cycle      int // completed cycles
}

// NameResolver maps an AppID to a display name.
type NameResolver interface {
	Name(appID uint64) string
}

// WindowFunc returns the current trailing lines of the content log.
type WindowFunc func() ([]string, error)

// Options configure a Driver. Zero values take defaults.
type Options struct {
	Cycles     int
	Interval   time.Duration
	Window     WindowFunc
	Names      NameResolver
	Classifier *contentlog.Classifier
	Logger     *slog.Logger
	Now        func() time.Time
	Sleep      func(ctx context.Context, d time.Duration) error
}

// Driver runs the fixed number of poll cycles.
type Driver struct {
	cycles     int
	interval   time.Duration
	window     WindowFunc
	names      NameResolver
	classifier *contentlog.Classifier
	log        *slog.Logger
	now        func() time.Time
	sleep      func(ctx context.Context, d time.Duration) error
}

// New builds a Driver from opts.
func New(opts Options) *Driver {
	d := &Driver{
		cycles:     opts.Cycles,
		interval:   opts.Interval,
		window:     opts.Window,
		names:      opts.Names,
		classifier: opts.Classifier,
		log:        opts.Logger,
		now:        opts.Now,
		sleep:      opts.Sleep,
	}
	if d.cycles <= 0 {
		d.cycles = DefaultCycles
	}
	if d.interval <= 0 {
		d.interval = DefaultInterval
	}
	if d.window == nil {
		d.window = func() ([]string, error) { return nil, nil }
	}
	if d.names == nil {
		d.names = fallbackNames{}
	}
	if d.classifier == nil {
		d.classifier = contentlog.NewClassifier()
	}
	if d.log == nil {
		d.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if d.now == nil {
		d.now = time.Now
	}
	if d.sleep == nil {
		d.sleep = sleepContext
	}
	return d
}

// Cycles returns the configured cycle count.
func (d *Driver) Cycles() int { return d.cycles }

// Interval returns the pause between cycles.
func (d *Driver) Interval() time.Duration { return d.interval }

// Finished reports whether st has used up every cycle.
func (d *Driver) Finished(st DriverState) bool { return st.Cycle >= d.cycles }

// Run executes every cycle, handing each Report to emit. It sleeps between
// cycles but not after the last one.
func (d *Driver) Run(ctx context.Context, emit func(Report) error) error {
	var st DriverState
	for !d.Finished(st) {
		var rep Report
		st, rep = d.Cycle(st)
		if err := emit(rep); err != nil {
			return err
		}
		if d.Finished(st) {
			break
		}
		if err := d.sleep(ctx, d.interval); err != nil {
			return err
		}
	}
	return nil
}

// Cycle reads a fresh window unless the run has latched, then steps.
func (d *Driver) Cycle(st DriverState) (DriverState, Report) {
	var lines []string
	if !st.DoneMode {
		var err error
		lines, err = d.window()
		if err != nil {
			d.log.Warn("read content log failed", slog.Int("cycle", st.Cycle+1), slog.Any("error", err))
		}
	}
	return d.Step(st, lines, d.now())
}

// Step computes the next state and this cycle's Report from a window. Apart
// from name resolution it has no side effects.
func (d *Driver) Step(st DriverState, lines []string, now time.Time) (DriverState, Report) {
	next := st
	next.Cycle = st.Cycle + 1
	rep := Report{At: now, Cycle: next.Cycle, Total: d.cycles}

	if st.DoneMode {
		rep.Kind = ReportDone
		rep.Name = st.DoneLabel
		return next, rep
	}

	events := d.classifier.Window(lines)
	appID, ok := contentlog.ActiveApp(events)
	if !ok {
		rep.Kind = ReportNoActive
		next.IdleStreak++
		if next.IdleStreak >= idleLatch {
			latch(&next, GenericDoneLabel)
		}
		d.log.Debug("no active app", slog.Int("cycle", next.Cycle), slog.Int("idle_streak", next.IdleStreak))
		return next, rep
	}

	snap := contentlog.Summarize(appID, events)
	rep.Kind = ReportLive
	rep.AppID = appID
	rep.Name = d.names.Name(appID)
	rep.Snapshot = snap

	if snap.Status == contentlog.StatusIdle {
		next.IdleStreak++
	} else {
		next.IdleStreak = 0
	}

	switch {
	case contentlog.Finished(appID, events):
		latch(&next, rep.Name)
		d.log.Info("update finished", slog.Uint64("app_id", appID), slog.String("name", rep.Name))
	case next.IdleStreak >= idleLatch:
		latch(&next, rep.Name)
		d.log.Info("app idle, stopping", slog.Uint64("app_id", appID), slog.Int("idle_streak", next.IdleStreak))
	}
	return next, rep
}

func latch(st *DriverState, label string) {
	st.DoneMode = true
	st.DoneLabel = label
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type fallbackNames struct{}

func (fallbackNames) Name(appID uint64) string {
	return "AppID " + strconv.FormatUint(appID, 10)
}
