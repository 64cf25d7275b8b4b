package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "avifpix",
	Short: "AVIF conversion front-end for raw and decoded pixel buffers",
	Long: `avifpix — converts images to AVIF through a validated, typed pixel
boundary: zero-copy for RGBA8 sources, one checked conversion for
everything else (luma, luma+alpha, RGB/BGR, 16-bit variants).

AVIF bitstreams come from avifenc (libavif); batch runs can fall back
to in-process WebP when avifenc is not installed.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"avifpix %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[avifpix] "+format+"\n", args...)
	}
}
