package boot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStageString(t *testing.T) {
	require.Equal(t, "Preflight", StagePreflight.String())
	require.Equal(t, "Publish", StagePublish.String())
	require.Equal(t, "Failed", StageFailed.String())
	require.Contains(t, Stage(42).String(), "Unknown")
}

func TestValidTransition(t *testing.T) {
	tests := []struct {
		name string
		from Stage
		to   Stage
		want bool
	}{
		{"preflight to prepare", StagePreflight, StagePrepare, true},
		{"prepare to launch", StagePrepare, StageLaunch, true},
		{"launch to ready", StageLaunch, StageReady, true},
		{"ready to auth", StageReady, StageAuth, true},
		{"ready skips tunnel", StageReady, StageReport, true},
		{"auth to publish", StageAuth, StagePublish, true},
		{"publish to report", StagePublish, StageReport, true},
		{"no skipping launch", StagePrepare, StageReady, false},
		{"no going back", StageAuth, StageLaunch, false},
		{"auth cannot skip publish", StageAuth, StageReport, false},
		{"anything can fail", StageLaunch, StageFailed, true},
		{"report cannot fail", StageReport, StageFailed, false},
		{"failed is terminal", StageFailed, StagePrepare, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ValidTransition(tt.from, tt.to))
		})
	}
}

func TestStagesOrder(t *testing.T) {
	stages := Stages()
	require.Len(t, stages, 7)
	for i := 0; i < len(stages)-1; i++ {
		require.True(t, ValidTransition(stages[i], stages[i+1]),
			"%s -> %s must be a valid step", stages[i], stages[i+1])
	}
}
