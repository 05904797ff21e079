package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordBootstrapCountsOnlySuccess(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.Empty(t, RecordBootstrap(errors.New("port 5000 already in use")))
	require.Equal(t, 0, Load().Launches, "a failed run must not be counted")

	RecordBootstrap(nil)
	require.Equal(t, 1, Load().Launches)
}

func TestRecordBootstrapMilestone(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, save(Stats{Launches: 9}))

	msg := RecordBootstrap(nil)
	require.Contains(t, msg, "10 launches")
	require.Empty(t, RecordBootstrap(nil), "a milestone fires only once")
}
