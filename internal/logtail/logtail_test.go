package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	// Create a temporary log file
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "content_log.txt")

	// Write 10 lines of content
	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		maxBytes int64
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			maxBytes: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
		{
			// "Line 9\nLine 10\n" is 15 bytes
			name:     "byte bound on line boundary",
			maxLines: 20,
			maxBytes: 15,
			expected: expectedAll[8:],
		},
		{
			name:     "byte bound mid line keeps partial first line",
			maxLines: 20,
			maxBytes: 12,
			expected: []string{"e 9", "Line 10"},
		},
		{
			name:     "both bounds",
			maxLines: 1,
			maxBytes: 15,
			expected: expectedAll[9:],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines, tt.maxBytes)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "missing.txt"), DefaultMaxLines, DefaultMaxBytes)
	if err != nil {
		t.Fatalf("Read() error = %v, want nil", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestRead_SeesAppendedLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "content_log.txt")
	if err := os.WriteFile(logPath, []byte("first\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if got, _ := Read(logPath, 10, 0); !reflect.DeepEqual(got, []string{"first"}) {
		t.Fatalf("Read() = %v, want [first]", got)
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if _, err := f.WriteString("second\n"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	f.Close()

	if got, _ := Read(logPath, 10, 0); !reflect.DeepEqual(got, []string{"first", "second"}) {
		t.Fatalf("Read() = %v, want [first second]", got)
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		maxLines int
		expected []string
	}{
		{"empty", "", 5, nil},
		{"crlf endings", "a\r\nb\r\n", 5, []string{"a", "b"}},
		{"no trailing newline", "a\nb", 5, []string{"a", "b"}},
		{"invalid utf8 dropped", "ok\xff\xfe line\nnext", 5, []string{"ok line", "next"}},
		{"ring wraps", "1\n2\n3\n4\n5\n", 2, []string{"4", "5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines([]byte(tt.data), tt.maxLines)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Lines() = %q, want %q", got, tt.expected)
			}
		})
	}
}
