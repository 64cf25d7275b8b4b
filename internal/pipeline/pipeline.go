// Package pipeline batch-converts a directory of images to AVIF, one
// encoder session per worker.
package pipeline

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/AnyUserName/avifpix/internal/avif"
	"github.com/AnyUserName/avifpix/internal/preset"
	"github.com/AnyUserName/avifpix/internal/report"
)

// Config holds all parameters for a conversion run.
type Config struct {
	InputDir  string
	OutputDir string
	Preset    preset.Preset
	Workers   int
	Verbose   bool

	// NewCodec builds the codec backend for each worker session.
	// Nil selects the bundled avifenc backend.
	NewCodec func() avif.Codec
}

// Pipeline orchestrates batch conversion.
type Pipeline struct {
	cfg Config
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.NewCodec == nil {
		cfg.NewCodec = func() avif.Codec { return &avif.AvifencCodec{} }
	}
	return &Pipeline{cfg: cfg}
}

// Run executes the conversion and returns the report.
func (p *Pipeline) Run() (*report.Report, error) {
	// Probe the codec once; workers build their own instances, but
	// availability is a process-wide fact.
	probe := p.cfg.NewCodec()
	useFallback := !probe.Available()
	if useFallback {
		if !p.cfg.Preset.FallbackWebP {
			return nil, fmt.Errorf("codec %s is not available and the %q preset has no fallback",
				probe.Name(), p.cfg.Preset.Name)
		}
		fmt.Fprintf(os.Stderr, "[avifpix] warn: %s unavailable, emitting WebP fallback\n", probe.Name())
	}

	sources, err := ScanImages(p.cfg.InputDir, p.cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no images found in %s", p.cfg.InputDir)
	}
	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[avifpix] found %d images\n", len(sources))
	}

	// Each worker owns one session: the session scratch buffer is
	// exclusive by construction, so no locking is needed around encodes.
	results := make([]processResult, len(sources))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < p.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess := avif.NewSession(p.cfg.NewCodec())
			for idx := range jobs {
				src := sources[idx]
				if p.cfg.Verbose {
					fmt.Fprintf(os.Stderr, "[avifpix] processing: %s\n", src.Key)
				}
				results[idx] = processSource(src, p.cfg, sess, useFallback)
			}
		}()
	}
	for i := range sources {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	// Collect results.
	r := report.New(p.cfg.Preset.Name)
	r.RunInfo = &report.RunInfo{Workers: p.cfg.Workers, Codec: probe.Name()}

	var errs []error
	for _, res := range results {
		if res.err != nil {
			errs = append(errs, res.err)
			continue
		}
		r.Entries[res.key] = res.entry
	}

	// Report errors but don't fail the entire run for partial failures.
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[avifpix] error: %v\n", e)
		}
		if len(errs) == len(sources) {
			return nil, fmt.Errorf("all %d images failed to convert", len(errs))
		}
		fmt.Fprintf(os.Stderr, "[avifpix] warning: %d of %d images had errors\n",
			len(errs), len(sources))
	}

	r.ComputeStats()
	return r, nil
}
