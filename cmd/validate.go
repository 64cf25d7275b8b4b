package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnyUserName/avifpix/internal/report"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <report_path>",
	Short: "Validate a conversion report and check referenced files exist",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	reportPath := args[0]

	data, err := os.ReadFile(reportPath)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	var r report.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("parse report: %w", err)
	}

	baseDir := filepath.Dir(reportPath)
	problems := validateReport(&r, baseDir)

	if len(problems) == 0 {
		fmt.Println("  ✓ Report is valid")
		fmt.Printf("  ✓ %d sources, %d outputs — all files present\n",
			r.Stats.TotalSources, r.Stats.TotalOutputs)
		return nil
	}

	fmt.Printf("  ✗ Report has %d error(s):\n", len(problems))
	for _, p := range problems {
		fmt.Printf("    • %s\n", p)
	}
	return fmt.Errorf("validation failed with %d errors", len(problems))
}

func validateReport(r *report.Report, baseDir string) []string {
	var errs []string

	if r.Version != report.SupportedReportVersion {
		errs = append(errs, fmt.Sprintf("unsupported report version: %d", r.Version))
	}

	for key, entry := range r.Entries {
		if entry.Source.Width <= 0 || entry.Source.Height <= 0 {
			errs = append(errs, fmt.Sprintf("entry %q: invalid source dimensions %dx%d",
				key, entry.Source.Width, entry.Source.Height))
		}
		if len(entry.Outputs) == 0 {
			errs = append(errs, fmt.Sprintf("entry %q: no outputs", key))
		}

		seenPaths := map[string]bool{}
		for i, o := range entry.Outputs {
			if o.Codec == "" {
				errs = append(errs, fmt.Sprintf("entry %q output[%d]: empty codec", key, i))
			}
			if o.Width <= 0 || o.Height <= 0 {
				errs = append(errs, fmt.Sprintf("entry %q output[%d]: invalid dimensions %dx%d",
					key, i, o.Width, o.Height))
			}
			if o.Hash == "" {
				errs = append(errs, fmt.Sprintf("entry %q output[%d]: missing hash", key, i))
			}
			if o.Path == "" {
				errs = append(errs, fmt.Sprintf("entry %q output[%d]: missing path", key, i))
				continue
			}

			if seenPaths[o.Path] {
				errs = append(errs, fmt.Sprintf("entry %q output[%d]: duplicate path %q", key, i, o.Path))
			}
			seenPaths[o.Path] = true

			fullPath := filepath.Join(baseDir, o.Path)
			info, err := os.Stat(fullPath)
			if err != nil {
				errs = append(errs, fmt.Sprintf("entry %q output[%d]: file not found: %s", key, i, o.Path))
			} else if o.Size > 0 && info.Size() != o.Size {
				errs = append(errs, fmt.Sprintf("entry %q output[%d]: size mismatch: report=%d, disk=%d",
					key, i, o.Size, info.Size()))
			}
		}
	}

	// Verify stats consistency.
	sourceCount := len(r.Entries)
	outputCount := 0
	for _, e := range r.Entries {
		outputCount += len(e.Outputs)
	}
	if r.Stats.TotalSources != sourceCount {
		errs = append(errs, fmt.Sprintf("stats.total_sources mismatch: %d != %d", r.Stats.TotalSources, sourceCount))
	}
	if r.Stats.TotalOutputs != outputCount {
		errs = append(errs, fmt.Sprintf("stats.total_outputs mismatch: %d != %d", r.Stats.TotalOutputs, outputCount))
	}

	return errs
}
