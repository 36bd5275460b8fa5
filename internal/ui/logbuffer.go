package ui

import (
	"strings"
	"sync"
)

// logBuffer keeps the most recent log lines, dropping the oldest past max
type logBuffer struct {
	mu    sync.Mutex
	lines []string
	max   int
}

func newLogBuffer(max int) *logBuffer {
	if max < 1 {
		max = 1
	}
	return &logBuffer{max: max}
}

// Append adds a line and returns the whole buffer as text
func (b *logBuffer) Append(line string) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lines = append(b.lines, line)
	if over := len(b.lines) - b.max; over > 0 {
		b.lines = append(b.lines[:0], b.lines[over:]...)
	}
	return strings.Join(b.lines, "\n")
}

// Reset replaces the buffer content with lines
func (b *logBuffer) Reset(lines ...string) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lines = append(b.lines[:0], lines...)
	if over := len(b.lines) - b.max; over > 0 {
		b.lines = b.lines[over:]
	}
	return strings.Join(b.lines, "\n")
}

// Len returns the number of buffered lines
func (b *logBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}
