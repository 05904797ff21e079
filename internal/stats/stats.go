package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Stats tracks persistent usage data across runs.
type Stats struct {
	Launches int `json:"launches"`
}

// Milestone messages keyed by launch count thresholds.
var milestones = map[int]string{
	10:   "10 launches. The demo is becoming a lifestyle.",
	50:   "50 launches. Maybe deploy it somewhere?",
	100:  "100 launches. This ngrok URL deserves a DNS record.",
	1000: "1000 launches. You ARE the production environment.",
}

// milestoneThresholds in ascending order for crossing detection.
var milestoneThresholds = []int{10, 50, 100, 1000}

func statsPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".launchpad", "stats.json")
}

// Load reads the stats file. Returns zero stats if the file doesn't exist.
func Load() Stats {
	data, err := os.ReadFile(statsPath())
	if err != nil {
		return Stats{}
	}
	var s Stats
	if err := json.Unmarshal(data, &s); err != nil {
		return Stats{}
	}
	return s
}

// save writes stats to disk, creating the directory if needed.
func save(s Stats) error {
	p := statsPath()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o644)
}

// RecordBootstrap counts one completed bootstrap. Runs that ended in
// an error are not counted. Returns a milestone message if a threshold
// was just crossed, or empty string otherwise.
func RecordBootstrap(runErr error) string {
	if runErr != nil {
		return ""
	}
	return AddLaunch()
}

// AddLaunch increments the launch counter and saves. Returns a
// milestone message if a threshold was just crossed, or empty string
// otherwise.
func AddLaunch() string {
	s := Load()
	prev := s.Launches
	s.Launches++
	_ = save(s) // best-effort, don't break the bootstrap if this fails

	for _, threshold := range milestoneThresholds {
		if prev < threshold && s.Launches >= threshold {
			return milestones[threshold]
		}
	}
	return ""
}
