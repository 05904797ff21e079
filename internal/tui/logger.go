package tui

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// LogLevel represents the severity of a log line.
type LogLevel int

const (
	LogInfo LogLevel = iota
	LogWarning
	LogError
)

// LogEntry represents a single captured output line.
type LogEntry struct {
	Time    time.Time
	Level   LogLevel
	Message string
}

// Logger is a bounded ring of output lines. The orchestrator and the
// external processes write into it; the dashboard renders the tail.
type Logger struct {
	entries []LogEntry
	mu      sync.RWMutex
	maxSize int
}

// NewLogger creates a logger with a maximum number of entries.
func NewLogger(maxSize int) *Logger {
	return &Logger{
		entries: make([]LogEntry, 0, maxSize),
		maxSize: maxSize,
	}
}

// Log adds a log entry.
func (l *Logger) Log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, LogEntry{
		Time:    time.Now(),
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})

	// Keep only the last maxSize entries.
	if len(l.entries) > l.maxSize {
		l.entries = l.entries[len(l.entries)-l.maxSize:]
	}
}

// Recent returns the most recent n entries, oldest first.
func (l *Logger) Recent(n int) []LogEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n > len(l.entries) {
		n = len(l.entries)
	}
	entries := make([]LogEntry, n)
	copy(entries, l.entries[len(l.entries)-n:])
	return entries
}

// logWriter adapts a Logger to io.Writer so process output streams can
// feed the ring line by line.
type logWriter struct {
	logger *Logger
	level  LogLevel

	mu  sync.Mutex
	buf bytes.Buffer
}

// NewLogWriter returns a writer that records each complete line at the
// given level.
func NewLogWriter(logger *Logger, level LogLevel) io.Writer {
	return &logWriter{logger: logger, level: level}
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Partial line, keep it buffered for the next write.
			w.buf.WriteString(line)
			break
		}
		w.logger.Log(w.level, "%s", bytes.TrimRight([]byte(line), "\r\n"))
	}
	return len(p), nil
}
