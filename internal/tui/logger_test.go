package tui

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerRing(t *testing.T) {
	l := NewLogger(3)
	for i := 0; i < 5; i++ {
		l.Log(LogInfo, "line %d", i)
	}

	recent := l.Recent(10)
	require.Len(t, recent, 3, "ring keeps only the last maxSize entries")
	require.Equal(t, "line 2", recent[0].Message)
	require.Equal(t, "line 4", recent[2].Message)
}

func TestLogWriterSplitsLines(t *testing.T) {
	l := NewLogger(10)
	w := NewLogWriter(l, LogError)

	_, err := io.WriteString(w, "first line\nsecond ")
	require.NoError(t, err)
	_, err = io.WriteString(w, "half\r\n")
	require.NoError(t, err)

	recent := l.Recent(10)
	require.Len(t, recent, 2)
	require.Equal(t, "first line", recent[0].Message)
	require.Equal(t, "second half", recent[1].Message)
	require.Equal(t, LogError, recent[0].Level)
}

func TestLogWriterPartialLineBuffered(t *testing.T) {
	l := NewLogger(10)
	w := NewLogWriter(l, LogInfo)

	fmt.Fprint(w, "no newline yet")
	require.Empty(t, l.Recent(10))

	fmt.Fprint(w, " and now\n")
	recent := l.Recent(10)
	require.Len(t, recent, 1)
	require.Equal(t, "no newline yet and now", recent[0].Message)
}
