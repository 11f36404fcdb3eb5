// Package monitor drives the fixed number of content log polls and renders
// one status line per poll.
//
// # Cycle
//
// Each cycle the Driver:
//
//  1. Reads a fresh window of trailing log lines
//  2. Picks the active app (contentlog.ActiveApp)
//  3. Summarises it and resolves its display name
//  4. Updates DriverState and returns a Report
//
// Run sleeps for the interval between cycles and stops after the configured
// count regardless of state.
//
// # Latching
//
// Two idle cycles in a row (no active app, or an active app whose status is
// IDLE) latch the run into done mode. So does a "finished update" line for the
// active app, after that cycle's live line has been reported. Once latched,
// every remaining cycle reports the same DONE line and the log is no longer
// read:
//
//	[14:02:00] 3/5  Counter-Strike 2 | DONE | 0.00 MB/s (0.000 Mbps) | progress: finished
//
// DriverState is a plain value passed into and returned from Step, so the
// state machine can be exercised without a clock or a log file.
package monitor
