package avif

import (
	"fmt"
	"image/png"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/AnyUserName/avifpix/internal/pixel"
)

// Atomic counter for unique temp file names across goroutines.
var tempCounter atomic.Int64

// AvifencCodec encodes by shelling out to avifenc from libavif.
// This avoids CGO while still producing real AV1 bitstreams.
// Install: brew install libavif / apt install libavif-bin
type AvifencCodec struct {
	once      sync.Once
	available bool
	binPath   string
}

func (c *AvifencCodec) Name() string { return "avifenc" }

func (c *AvifencCodec) Available() bool {
	c.once.Do(func() {
		path, err := exec.LookPath("avifenc")
		if err == nil {
			c.available = true
			c.binPath = path
		}
	})
	return c.available
}

func (c *AvifencCodec) Encode(img *pixel.Image, cfg Config) ([]byte, error) {
	if !c.Available() {
		return nil, fmt.Errorf("avifenc not found in PATH; install with: brew install libavif")
	}

	// avifenc reads files, so stage the pixels as a temp PNG. The NRGBA
	// wrap reuses the view's backing bytes without a pixel copy.
	id := tempCounter.Add(1)
	srcFile, err := os.CreateTemp("", fmt.Sprintf("avifpix_src_%d_*.png", id))
	if err != nil {
		return nil, fmt.Errorf("create temp: %w", err)
	}
	srcPath := srcFile.Name()
	dstFile, err := os.CreateTemp("", fmt.Sprintf("avifpix_dst_%d_*.avif", id))
	if err != nil {
		srcFile.Close()
		os.Remove(srcPath)
		return nil, fmt.Errorf("create temp: %w", err)
	}
	dstPath := dstFile.Name()
	dstFile.Close()
	defer os.Remove(srcPath)
	defer os.Remove(dstPath)

	if err := png.Encode(srcFile, img.NRGBA()); err != nil {
		srcFile.Close()
		return nil, fmt.Errorf("encode temp png: %w", err)
	}
	srcFile.Close()

	// avifenc quantizers run 0-63 with lower = better; map quality 0-100
	// onto that scale. Speed shares our 0-10 scale directly.
	quant := 63 - cfg.Quality*63/100
	alphaQuant := 63 - cfg.AlphaQuality*63/100

	// CICP matrix coefficient 0 is identity (RGB), 1 is BT.709 luma-chroma.
	matrix := "0"
	if cfg.ColorSpace == ColorSpaceYCbCr {
		matrix = "1"
	}

	cmd := exec.Command(c.binPath,
		"--min", fmt.Sprintf("%d", quant),
		"--max", fmt.Sprintf("%d", quant),
		"--minalpha", fmt.Sprintf("%d", alphaQuant),
		"--maxalpha", fmt.Sprintf("%d", alphaQuant),
		"--speed", fmt.Sprintf("%d", cfg.Speed),
		"--cicp", "1/13/"+matrix,
		"-j", "all",
		srcPath,
		dstPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("avifenc: %w: %s", err, string(out))
	}

	return os.ReadFile(dstPath)
}
