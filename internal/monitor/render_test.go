package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/five82/steamtail/internal/contentlog"
)

func u64(v uint64) *uint64 { return &v }
func f64(v float64) *float64 { return &v }

func TestFormatLine(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 5, 7, 0, time.Local)

	testCases := []struct {
		name     string
		report   Report
		expected string
	}{
		{
			name: "live with rate and progress",
			report: Report{At: at, Cycle: 1, Total: 5, Kind: ReportLive, Name: "Dota 2", Snapshot: contentlog.Snapshot{
				Done: u64(500), Total: u64(1000), RateMbps: f64(8), Status: contentlog.StatusDownloading,
			}},
			expected: "[09:05:07] 1/5  Dota 2 | DOWNLOADING | 1.00 MB/s (8.000 Mbps) | 50.0% (500/1000 bytes)",
		},
		{
			name: "live without rate or progress",
			report: Report{At: at, Cycle: 2, Total: 5, Kind: ReportLive, Name: "AppID 10", Snapshot: contentlog.Snapshot{
				Status: contentlog.StatusRunningUpdate,
			}},
			expected: "[09:05:07] 2/5  AppID 10 | RUNNING_UPDATE | unknown | progress: unknown",
		},
		{
			name: "zero total is unknown progress",
			report: Report{At: at, Cycle: 2, Total: 5, Kind: ReportLive, Name: "X", Snapshot: contentlog.Snapshot{
				Done: u64(0), Total: u64(0), RateMbps: f64(0), Status: contentlog.StatusPaused,
			}},
			expected: "[09:05:07] 2/5  X | PAUSED | 0.00 MB/s (0.000 Mbps) | progress: unknown",
		},
		{
			name:     "no active app",
			report:   Report{At: at, Cycle: 3, Total: 5, Kind: ReportNoActive},
			expected: "[09:05:07] 3/5  No active Steam download/update detected",
		},
		{
			name:     "latched",
			report:   Report{At: at, Cycle: 4, Total: 5, Kind: ReportDone, Name: "Steam"},
			expected: "[09:05:07] 4/5  Steam | DONE | 0.00 MB/s (0.000 Mbps) | progress: finished",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, FormatLine(tc.report, nil))
		})
	}
}

func TestFormatLine_Badge(t *testing.T) {
	r := Report{Cycle: 1, Total: 1, Kind: ReportDone, Name: "Steam"}
	line := FormatLine(r, func(s string) string { return "<" + s + ">" })
	require.Contains(t, line, "Steam | <DONE> | ")
}

func TestFormatSpeed(t *testing.T) {
	require.Equal(t, "unknown", FormatSpeed(nil))
	require.Equal(t, "1.00 MB/s (8.000 Mbps)", FormatSpeed(f64(8)))
	require.Equal(t, "12.35 MB/s (98.765 Mbps)", FormatSpeed(f64(98.765)))
}
