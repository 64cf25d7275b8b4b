package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AnyUserName/avifpix/internal/pipeline"
	"github.com/AnyUserName/avifpix/internal/preset"
	"github.com/AnyUserName/avifpix/internal/report"
	"github.com/spf13/cobra"
)

var (
	convertOutDir  string
	convertPreset  string
	convertWorkers int
	convertQuality int
	convertSpeed   int
)

var convertCmd = &cobra.Command{
	Use:   "convert <input_dir>",
	Short: "Batch-convert a directory of images to AVIF",
	Long: `Scans the input directory for images (png, jpg, jpeg, webp, gif,
bmp, tiff), converts each to AVIF via avifenc, and writes a JSON
conversion report. When avifenc is not installed, presets with a
fallback emit WebP in-process instead.

Output filenames are content-addressed: <key>.<hash>.ext`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutDir, "out", "o", "./avifpix_out", "output directory")
	convertCmd.Flags().StringVarP(&convertPreset, "preset", "p", "balanced", "encode preset")
	convertCmd.Flags().IntVarP(&convertWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	convertCmd.Flags().IntVarP(&convertQuality, "quality", "q", -1, "quality 0-100 (-1 = preset default)")
	convertCmd.Flags().IntVarP(&convertSpeed, "speed", "s", -1, "speed 0-10 (-1 = preset default)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(_ *cobra.Command, args []string) error {
	inputDir := args[0]
	start := time.Now()

	absInput, err := filepath.Abs(inputDir)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	absOutput, err := filepath.Abs(convertOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	pre := preset.Get(convertPreset)
	if convertQuality >= 0 {
		pre.Quality = convertQuality
	}
	if convertSpeed >= 0 {
		pre.Speed = convertSpeed
	}

	logVerbose("input:  %s", absInput)
	logVerbose("output: %s", absOutput)
	logVerbose("preset: %s (quality=%d, speed=%d)", pre.Name, pre.Quality, pre.Speed)

	if err := os.MkdirAll(absOutput, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	p := pipeline.New(pipeline.Config{
		InputDir:  absInput,
		OutputDir: absOutput,
		Preset:    pre,
		Workers:   convertWorkers,
		Verbose:   verbose,
	})

	r, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	reportPath := filepath.Join(absOutput, "avifpix.report.json")
	if err := report.WriteJSON(r, reportPath); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	printConvertReport(r, time.Since(start))
	return nil
}

func printConvertReport(r *report.Report, elapsed time.Duration) {
	s := r.Stats
	ratio := float64(0)
	if s.TotalInputBytes > 0 {
		ratio = float64(s.TotalOutputBytes) / float64(s.TotalInputBytes) * 100
	}

	fmt.Println()
	fmt.Printf("  Sources:     %d\n", s.TotalSources)
	fmt.Printf("  Outputs:     %d\n", s.TotalOutputs)
	if s.FallbackOutputs > 0 {
		fmt.Printf("  Fallbacks:   %d (WebP, avifenc unavailable)\n", s.FallbackOutputs)
	}
	fmt.Printf("  Input size:  %s\n", formatBytes(s.TotalInputBytes))
	fmt.Printf("  Output size: %s\n", formatBytes(s.TotalOutputBytes))
	fmt.Printf("  Ratio:       %.1f%% of original\n", ratio)
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	if r.RunInfo != nil {
		fmt.Printf("  Workers:     %d (codec: %s)\n", r.RunInfo.Workers, r.RunInfo.Codec)
	}
	fmt.Println()
	fmt.Printf("  Report:      avifpix.report.json\n")
	fmt.Println()
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
