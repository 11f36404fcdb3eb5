package logtail

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	// DefaultMaxLines is how many trailing lines a window keeps.
	DefaultMaxLines = 800
	// DefaultMaxBytes is how much of the end of the file is read.
	DefaultMaxBytes = 600_000
)

// Read returns at most maxLines from the last maxBytes of the file at path.
// A non-positive limit disables that bound. Invalid UTF-8 is dropped.
func Read(path string, maxLines int, maxBytes int64) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log: %w", err)
	}

	var src io.Reader = file
	if maxBytes > 0 {
		if size := info.Size(); size > maxBytes {
			if _, err := file.Seek(size-maxBytes, io.SeekStart); err != nil {
				return nil, fmt.Errorf("seek log: %w", err)
			}
		}
		src = io.LimitReader(file, maxBytes)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return Lines(data, maxLines), nil
}

// Lines splits data into lines and keeps the last maxLines of them.
func Lines(data []byte, maxLines int) []string {
	data = bytes.ToValidUTF8(data, nil)
	if len(data) == 0 {
		return nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	limit := 1024 * 1024
	if len(data)+1 > limit {
		limit = len(data) + 1
	}
	scanner.Buffer(make([]byte, 0, 64*1024), limit)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		return lines
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines
}
