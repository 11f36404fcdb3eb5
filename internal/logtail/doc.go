// Package logtail reads bounded windows from the end of an append-only log.
//
// # Overview
//
// Steam's content_log.txt grows for as long as the client is installed and
// can reach tens of megabytes. Each poll only needs the most recent activity,
// so Read never looks at more than a fixed trailing byte range:
//
//	lines, err := logtail.Read(path, logtail.DefaultMaxLines, logtail.DefaultMaxBytes)
//	if err != nil {
//		return fmt.Errorf("tail content log: %w", err)
//	}
//
// # Algorithm
//
//  1. Open the file and stat it for its current size
//  2. Seek to size - maxBytes (or 0 for small files)
//  3. Read at most maxBytes
//  4. Drop invalid UTF-8 sequences
//  5. Split into lines, keeping the last maxLines in a ring buffer
//
// When the seek lands mid-line the first line of the window is a fragment.
// Callers parse lines with anchored patterns, so the fragment is ignored.
//
// # Ring Buffer
//
// Lines uses a circular buffer of size maxLines:
//
//	1. Store each line at the current index
//	2. Advance the index, wrapping at maxLines
//	3. Once full, the oldest line sits at the current index
//
// Memory is bounded by maxBytes for the raw read plus the kept lines.
//
// # Error Handling
//
// Read returns nil, nil for a missing file so a log that disappears between
// polls degrades to an empty window. Other errors (permission denied, I/O)
// are returned wrapped.
//
// # Design Rationale
//
// The file is opened fresh on every call. No handle is held across the
// minute-long sleep between polls, so truncation or replacement of the log by
// the client is picked up on the next read.
package logtail
