package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/steamtail/internal/app"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "steamtail: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "steamtail",
		Short: "Report Steam download progress from the client's content log",
		Long: `steamtail polls Steam's content_log.txt a fixed number of times and prints
one status line per poll: the active app, its state, download speed and
byte progress. It stops polling once the app finishes or stays idle.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Stdout = stdout
			opts.Stderr = stderr
			return app.Run(cmd.Context(), opts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/steamtail/config.toml)")
	flags.StringVar(&opts.EnvFile, "env-file", "", "dotenv file with STEAMTAIL_* overrides (default .env)")
	flags.StringVar(&opts.SteamRoot, "steam-root", "", "Steam installation directory (default: auto-detect)")
	flags.IntVar(&opts.Cycles, "cycles", 0, "number of polls (default 5)")
	flags.DurationVar(&opts.Interval, "interval", 0, "pause between polls (default 60s)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "debug, info, warn or error (default warn)")
	flags.BoolVar(&opts.JSON, "json", false, "print one JSON object per poll")
	flags.BoolVar(&opts.TUI, "tui", false, "show a live view instead of status lines")
	cmd.MarkFlagsMutuallyExclusive("json", "tui")

	return cmd
}
