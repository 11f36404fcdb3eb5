package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"

	"github.com/five82/steamtail/internal/config"
	"github.com/five82/steamtail/internal/contentlog"
	"github.com/five82/steamtail/internal/logtail"
	"github.com/five82/steamtail/internal/monitor"
	"github.com/five82/steamtail/internal/prefs"
	"github.com/five82/steamtail/internal/steam"
	"github.com/five82/steamtail/internal/ui"
)

// Options configure a steamtail run. Zero values defer to the config file.
type Options struct {
	ConfigPath string
	EnvFile    string
	PrefsPath  string
	SteamRoot  string
	Cycles     int
	Interval   time.Duration
	LogLevel   string
	JSON       bool
	TUI        bool

	// Stdout and Stderr default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
	// Fs defaults to the OS filesystem.
	Fs afero.Fs
}

// Run locates Steam, then polls its content log for the configured number of
// cycles.
func Run(ctx context.Context, opts Options) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}

	cfg, err := config.Load(opts.ConfigPath, opts.EnvFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyOverrides(&cfg, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := newLogger(opts.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	root, err := steam.Locate(opts.Fs, cfg.SteamRoot)
	if err != nil {
		return err
	}
	logPath, err := steam.ContentLog(opts.Fs, root)
	if err != nil {
		return err
	}
	libraries := steam.Libraries(opts.Fs, root)
	log.Debug("steam located", slog.String("root", root), slog.String("content_log", logPath), slog.Int("libraries", len(libraries)))

	warnIfClientStopped(ctx, log)

	driver := monitor.New(monitor.Options{
		Cycles:     cfg.Cycles,
		Interval:   cfg.Interval,
		Window:     func() ([]string, error) { return logtail.Read(logPath, cfg.WindowLines, cfg.WindowBytes) },
		Names:      steam.NewNameResolver(opts.Fs, libraries),
		Classifier: contentlog.NewClassifier(),
		Logger:     log,
	})

	theme := cfg.Theme
	store, err := prefs.Open(opts.Fs, opts.PrefsPath)
	if err != nil {
		log.Debug("prefs unavailable", slog.Any("error", err))
	} else if saved := store.Load(); saved.Theme != "" {
		theme = saved.Theme
	}

	styles := ui.GetTheme(theme).Styles()
	badge := monitor.BadgeFunc(styles.StatusText)
	if !isTerminal(opts.Stdout) {
		badge = nil
	}

	if opts.TUI && !opts.JSON {
		if isTerminal(opts.Stdout) {
			return ui.Run(ctx, ui.Options{
				Driver: driver,
				Theme:  theme,
				Prefs:  store,
			})
		}
		log.Warn("stdout is not a terminal, falling back to line output")
	}

	var emit emitter = textEmitter{w: opts.Stdout, badge: badge}
	if opts.JSON {
		emit = newJSONEmitter(opts.Stdout)
	}
	return driver.Run(ctx, emit.Emit)
}

func applyOverrides(cfg *config.Config, opts Options) {
	if opts.SteamRoot != "" {
		cfg.SteamRoot = opts.SteamRoot
	}
	if opts.Cycles != 0 {
		cfg.Cycles = opts.Cycles
	}
	if opts.Interval != 0 {
		cfg.Interval = opts.Interval
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
}

// warnIfClientStopped is advisory only; the log may still describe a
// download that was interrupted when the client exited.
func warnIfClientStopped(ctx context.Context, log *slog.Logger) {
	running, err := steam.ClientRunning(ctx)
	if err != nil {
		log.Debug("process check failed", slog.Any("error", err))
		return
	}
	if !running {
		log.Warn("steam client process not detected; status reflects the last logged activity")
	}
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
