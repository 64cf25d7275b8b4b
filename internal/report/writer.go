// Package report defines the JSON conversion report written after a batch
// run and consumed by the stats and validate commands.
package report

import (
	"encoding/json"
	"os"
	"time"
)

// New creates an empty report with defaults.
func New(presetName string) *Report {
	return &Report{
		Version:     SupportedReportVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Preset:      presetName,
		BasePath:    "./",
		Entries:     make(map[string]Entry),
	}
}

// ComputeStats recalculates aggregate statistics from the entries.
func (r *Report) ComputeStats() {
	var s Stats
	s.TotalSources = len(r.Entries)
	for _, e := range r.Entries {
		s.TotalInputBytes += e.Source.Size
		s.TotalOutputs += len(e.Outputs)
		for _, o := range e.Outputs {
			s.TotalOutputBytes += o.Size
			if o.Codec == "webp" {
				s.FallbackOutputs++
			}
		}
	}
	r.Stats = s
}

// WriteJSON serializes the report to a JSON file.
func WriteJSON(r *Report, path string) error {
	r.ComputeStats()

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
