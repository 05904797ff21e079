package boot

import "fmt"

// Stage represents one step of the bootstrap sequence.
type Stage int

const (
	StagePreflight Stage = iota // Port and binary checks
	StagePrepare                // Build the child environment
	StageLaunch                 // Spawn the application
	StageReady                  // Wait for the application port
	StageAuth                   // Persist the tunnel token
	StagePublish                // Foreground tunnel, blocks
	StageReport                 // Operator access summary
	StageFailed                 // Halted on an error
)

func (s Stage) String() string {
	switch s {
	case StagePreflight:
		return "Preflight"
	case StagePrepare:
		return "Prepare"
	case StageLaunch:
		return "Launch"
	case StageReady:
		return "Ready"
	case StageAuth:
		return "Auth"
	case StagePublish:
		return "Publish"
	case StageReport:
		return "Report"
	case StageFailed:
		return "Failed"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// ValidTransition checks whether moving from one stage to another is
// allowed. The sequence is strictly linear:
//
//	Preflight -> Prepare -> Launch -> Ready -> Auth -> Publish -> Report
//
// Any stage before Report may fail. The tunnel pair is skippable,
// in which case Ready jumps straight to Report.
func ValidTransition(from, to Stage) bool {
	if to == StageFailed {
		return from != StageReport && from != StageFailed
	}
	switch from {
	case StagePreflight:
		return to == StagePrepare
	case StagePrepare:
		return to == StageLaunch
	case StageLaunch:
		return to == StageReady
	case StageReady:
		return to == StageAuth || to == StageReport
	case StageAuth:
		return to == StagePublish
	case StagePublish:
		return to == StageReport
	default:
		return false
	}
}

// Stages lists the visible pipeline stages in execution order, for
// progress displays.
func Stages() []Stage {
	return []Stage{
		StagePreflight,
		StagePrepare,
		StageLaunch,
		StageReady,
		StageAuth,
		StagePublish,
		StageReport,
	}
}
