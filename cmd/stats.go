package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/AnyUserName/avifpix/internal/report"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <out_dir_or_report>",
	Short: "Display statistics for a conversion report",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	path := args[0]

	// If path is a directory, look for the report inside.
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, "avifpix.report.json")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	var r report.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("parse report: %w", err)
	}

	printStats(&r)
	return nil
}

func printStats(r *report.Report) {
	fmt.Println()
	fmt.Printf("  Report version: %d\n", r.Version)
	fmt.Printf("  Generated:      %s\n", r.GeneratedAt)
	fmt.Printf("  Preset:         %s\n", r.Preset)
	if r.RunInfo != nil {
		fmt.Printf("  Workers:        %d\n", r.RunInfo.Workers)
		fmt.Printf("  Codec:          %s\n", r.RunInfo.Codec)
	}
	fmt.Println()

	s := r.Stats
	fmt.Printf("  Total sources:  %d\n", s.TotalSources)
	fmt.Printf("  Total outputs:  %d\n", s.TotalOutputs)
	fmt.Printf("  Input size:     %s\n", formatBytes(s.TotalInputBytes))
	fmt.Printf("  Output size:    %s\n", formatBytes(s.TotalOutputBytes))
	if s.TotalInputBytes > 0 {
		ratio := float64(s.TotalOutputBytes) / float64(s.TotalInputBytes) * 100
		fmt.Printf("  Compression:    %.1f%% of original\n", ratio)
	}
	fmt.Println()

	// Per-codec breakdown.
	codecStats := map[string]struct {
		count int
		bytes int64
	}{}
	for _, e := range r.Entries {
		for _, o := range e.Outputs {
			cs := codecStats[o.Codec]
			cs.count++
			cs.bytes += o.Size
			codecStats[o.Codec] = cs
		}
	}
	fmt.Println("  Codec breakdown:")
	for _, c := range []string{"avif", "webp"} {
		if cs, ok := codecStats[c]; ok {
			fmt.Printf("    %-5s  %4d files  %s\n", c, cs.count, formatBytes(cs.bytes))
		}
	}
	fmt.Println()

	// Top 10 heaviest sources (original → encoded).
	type entrySize struct {
		key        string
		inputSize  int64
		outputSize int64
	}
	var items []entrySize
	for key, e := range r.Entries {
		var outSum int64
		for _, o := range e.Outputs {
			outSum += o.Size
		}
		items = append(items, entrySize{key, e.Source.Size, outSum})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].inputSize > items[j].inputSize
	})
	n := len(items)
	if n > 10 {
		n = 10
	}
	if n > 0 {
		fmt.Printf("  Top %d heaviest (original → encoded):\n", n)
		for _, it := range items[:n] {
			saved := float64(0)
			if it.inputSize > 0 {
				saved = (1 - float64(it.outputSize)/float64(it.inputSize)) * 100
			}
			fmt.Printf("    %-40s %8s → %8s  (−%.0f%%)\n",
				truncKey(it.key, 40),
				formatBytes(it.inputSize),
				formatBytes(it.outputSize),
				saved,
			)
		}
		fmt.Println()
	}
}

func truncKey(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
