package launch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/animotion/launchpad/internal/config"
	"github.com/animotion/launchpad/internal/env"
)

func TestStartNonBlocking(t *testing.T) {
	l := &Launcher{Command: []string{"sleep", "5"}}

	start := time.Now()
	h, err := l.Start()
	elapsed := time.Since(start)

	require.NoError(t, err)
	require.Greater(t, h.Pid, 0)
	require.Less(t, elapsed, time.Second, "Start must not wait for the child")

	// Don't leak the sleep.
	require.NoError(t, h.Terminate())
	select {
	case <-h.Watch():
	case <-time.After(5 * time.Second):
		t.Fatal("child never reaped after terminate")
	}
}

func TestStartMissingBinary(t *testing.T) {
	l := &Launcher{Command: []string{"definitely-not-a-binary-a6f3"}}

	_, err := l.Start()
	require.Error(t, err)
	require.Contains(t, err.Error(), "definitely-not-a-binary-a6f3")
}

func TestStartEmptyCommand(t *testing.T) {
	l := &Launcher{}
	_, err := l.Start()
	require.Error(t, err)
}

func TestEnvPropagation(t *testing.T) {
	out := filepath.Join(t.TempDir(), "observed")

	overlay := env.Prepare(config.Env{
		AuthPass:  "animotion123",
		SecretKey: "animotion-secret-key-2024",
		NgrokMode: true,
	})
	overlay["OUT_FILE"] = out

	l := &Launcher{
		Command: []string{"sh", "-c", `printf '%s|%s|%s' "$AUTH_PASS" "$SECRET_KEY" "$NGROK_MODE" > "$OUT_FILE"`},
		Env:     env.Merge(os.Environ(), overlay),
	}

	h, err := l.Start()
	require.NoError(t, err)

	select {
	case ev := <-h.Watch():
		require.NoError(t, ev.Err)
	case <-time.After(5 * time.Second):
		t.Fatal("child did not exit")
	}

	observed, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "animotion123|animotion-secret-key-2024|true", string(observed))
}

func TestWatchReportsExit(t *testing.T) {
	tests := []struct {
		name    string
		command []string
		wantErr bool
	}{
		{"clean exit", []string{"true"}, false},
		{"non-zero exit", []string{"false"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := (&Launcher{Command: tt.command}).Start()
			require.NoError(t, err)

			select {
			case ev := <-h.Watch():
				require.Equal(t, h.Pid, ev.Pid)
				if tt.wantErr {
					require.Error(t, ev.Err)
				} else {
					require.NoError(t, ev.Err)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("no exit event")
			}
		})
	}
}

func TestWatchSingleChannel(t *testing.T) {
	h, err := (&Launcher{Command: []string{"true"}}).Start()
	require.NoError(t, err)

	first := h.Watch()
	second := h.Watch()
	require.Equal(t, first, second, "Watch must not spawn a second reaper")
}
