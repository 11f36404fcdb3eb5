// Package contentlog classifies Steam content_log.txt lines and reduces a
// window of them to the current status of one app.
//
// # Line Shapes
//
// Six shapes are recognised, each starting with a "[YYYY-MM-DD HH:MM:SS]"
// bracket:
//
//	[2024-05-01 10:00:00] AppID 730 App update changed : Running Update,Downloading,
//	[2024-05-01 10:00:00] AppID 730 state changed : Update Required,Fully Installed,
//	[2024-05-01 10:00:01] AppID 730 update started : download 5242880/10485760, store 0/0
//	[2024-05-01 10:00:02] Current download rate: 48.000 Mbps
//	[2024-05-01 10:00:03] AppID 730 update canceled : Suspended (Download paused)
//	[2024-05-01 10:00:04] AppID 730 finished update (BuildID 123 => 124)
//
// Patterns are plain data (see Pattern) matched by a small cursor; there are
// no regular expressions. A line whose shape matches but whose numbers do not
// parse is dropped, the same as an unrelated line.
//
// # Status Derivation
//
// Summarize joins the app's last "App update changed" flags, last "state
// changed" flags and last cancel reason, lowercases them and picks the first
// rule that applies:
//
//  1. "downloading" → DOWNLOADING
//  2. "suspended", "paused", "stopping" or "disabled" → PAUSED
//  3. "running update" → RUNNING_UPDATE
//  4. otherwise IDLE
//
// A rate line then overrides the text: a positive rate forces DOWNLOADING and
// a zero rate turns DOWNLOADING or RUNNING_UPDATE into PAUSED.
//
// Rate lines carry no AppID, so the last rate in the window is attributed to
// whichever app is being summarised. With two apps downloading at once the
// rate cannot be split between them.
package contentlog
