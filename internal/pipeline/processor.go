package pipeline

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/AnyUserName/avifpix/internal/avif"
	"github.com/AnyUserName/avifpix/internal/hasher"
	"github.com/AnyUserName/avifpix/internal/report"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// processResult holds the result of converting a single source image.
type processResult struct {
	key   string
	entry report.Entry
	err   error
}

// processSource handles one source image: decode, downscale if the preset
// asks for it, encode, write a content-addressed output file.
func processSource(src Source, cfg Config, sess *avif.Session, useFallback bool) processResult {
	result := processResult{key: src.Key}

	f, err := os.Open(src.AbsPath)
	if err != nil {
		result.err = fmt.Errorf("open %s: %w", src.RelPath, err)
		return result
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		result.err = fmt.Errorf("decode %s: %w", src.RelPath, err)
		return result
	}

	bounds := img.Bounds()
	origW, origH := bounds.Dx(), bounds.Dy()

	result.entry.Source = report.SourceInfo{
		Width:  origW,
		Height: origH,
		Format: src.Format,
		Size:   src.Size,
	}

	// Downscale to the preset ceiling, never upscale.
	outW, outH := origW, origH
	if tw := cfg.Preset.TargetWidth(origW); tw != origW {
		outW = tw
		outH = origH * tw / origW
		if outH < 1 {
			outH = 1
		}
		img = imaging.Resize(img, outW, outH, imaging.Lanczos)
	}

	var data []byte
	var codecName, ext string
	if useFallback {
		var buf bytes.Buffer
		err := webp.Encode(&buf, imaging.Clone(img), &webp.Options{Quality: float32(cfg.Preset.Quality)})
		if err != nil {
			result.err = fmt.Errorf("webp fallback %s: %w", src.RelPath, err)
			return result
		}
		data, codecName, ext = buf.Bytes(), "webp", "webp"
	} else {
		var buf bytes.Buffer
		ecfg := avif.NewConfig(cfg.Preset.Quality, cfg.Preset.Speed)
		if err := sess.Encode(avif.FromImage(img), ecfg, &buf); err != nil {
			result.err = fmt.Errorf("encode %s: %w", src.RelPath, err)
			return result
		}
		data, codecName, ext = buf.Bytes(), "avif", "avif"
	}

	contentHash := hasher.ContentHash(data, 16)

	// Build filename: key.hash.ext
	keyDir := filepath.Dir(src.Key)
	fileName := fmt.Sprintf("%s.%s.%s", filepath.Base(src.Key), contentHash[:8], ext)
	relPath := filepath.ToSlash(filepath.Join(keyDir, fileName))

	if keyDir != "." {
		os.MkdirAll(filepath.Join(cfg.OutputDir, keyDir), 0o755)
	}
	outPath := filepath.Join(cfg.OutputDir, relPath)
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		result.err = fmt.Errorf("write %s: %w", relPath, err)
		return result
	}

	out := report.Output{
		Codec:   codecName,
		Width:   outW,
		Height:  outH,
		Size:    int64(len(data)),
		Quality: cfg.Preset.Quality,
		Hash:    contentHash,
		Path:    relPath,
	}
	if codecName == "avif" {
		out.Speed = cfg.Preset.Speed
	}
	result.entry.Outputs = append(result.entry.Outputs, out)

	return result
}
