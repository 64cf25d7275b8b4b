package report

// Report is the top-level output of an avifpix conversion run.
type Report struct {
	Version     int              `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Preset      string           `json:"preset"`
	BasePath    string           `json:"base_path"`
	RunInfo     *RunInfo         `json:"run_info,omitempty"`
	Entries     map[string]Entry `json:"entries"`
	Stats       Stats            `json:"stats"`
}

// RunInfo captures run-time parameters for diagnostics.
type RunInfo struct {
	Workers int    `json:"workers"`
	Codec   string `json:"codec"` // backend used for AVIF outputs
}

// Entry describes one source image and everything encoded from it.
type Entry struct {
	Source  SourceInfo `json:"source"`
	Outputs []Output   `json:"outputs"`
}

// SourceInfo holds metadata about the source image.
type SourceInfo struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Size   int64  `json:"size"`
}

// Output is one encoded file produced from a source.
type Output struct {
	Codec   string `json:"codec"` // "avif" or "webp"
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Size    int64  `json:"size"`
	Quality int    `json:"quality"`
	Speed   int    `json:"speed,omitempty"` // AVIF only
	Hash    string `json:"hash"`            // first 16 hex chars of xxhash64
	Path    string `json:"path"`            // relative to base_path
}

// Stats aggregates run metrics.
type Stats struct {
	TotalInputBytes  int64 `json:"total_input_bytes"`
	TotalOutputBytes int64 `json:"total_output_bytes"`
	TotalSources     int   `json:"total_sources"`
	TotalOutputs     int   `json:"total_outputs"`
	FallbackOutputs  int   `json:"fallback_outputs,omitempty"` // WebP emitted instead of AVIF
}

// SupportedReportVersion is the current schema version.
const SupportedReportVersion = 1
