package pipeline

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AnyUserName/avifpix/internal/avif"
	"github.com/AnyUserName/avifpix/internal/pixel"
	"github.com/AnyUserName/avifpix/internal/preset"
)

// memCodec is an always-available in-memory backend for pipeline tests.
type memCodec struct{}

func (memCodec) Name() string    { return "mem" }
func (memCodec) Available() bool { return true }

func (memCodec) Encode(img *pixel.Image, cfg avif.Config) ([]byte, error) {
	// A fake bitstream whose size tracks the pixel count, so stats have
	// something meaningful to add up.
	return make([]byte, 16+img.Pixels()), nil
}

// unavailableCodec simulates a missing encoder binary.
type unavailableCodec struct{}

func (unavailableCodec) Name() string    { return "ghost" }
func (unavailableCodec) Available() bool { return false }

func (unavailableCodec) Encode(img *pixel.Image, cfg avif.Config) ([]byte, error) {
	return nil, os.ErrNotExist
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 37), G: uint8(y * 53), B: 128, A: 255})
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func writeJPEGFile(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatal(err)
	}
}

func TestScanImages(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 2, 2)
	writePNG(t, filepath.Join(dir, "nested", "b.png"), 2, 2)
	writePNG(t, filepath.Join(dir, ".hidden", "c.png"), 2, 2)
	writePNG(t, filepath.Join(dir, ".thumb.png"), 2, 2)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "done.avif"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	sources, err := ScanImages(dir, "")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("got %d sources, want 2", len(sources))
	}

	keys := map[string]bool{}
	for _, s := range sources {
		keys[s.Key] = true
		if s.Format != "png" {
			t.Errorf("%s: format %q, want png", s.Key, s.Format)
		}
		if s.Size == 0 {
			t.Errorf("%s: zero size", s.Key)
		}
	}
	if !keys["a"] || !keys["nested/b"] {
		t.Errorf("unexpected keys: %v", keys)
	}
}

func TestScanImages_NormalizesFormatNames(t *testing.T) {
	dir := t.TempDir()
	writeJPEGFile(t, filepath.Join(dir, "photo.JPG"))
	writeJPEGFile(t, filepath.Join(dir, "scan.jpeg"))

	sources, err := ScanImages(dir, "")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("got %d sources, want 2", len(sources))
	}
	for _, s := range sources {
		if s.Format != "jpeg" {
			t.Errorf("%s: format %q, want jpeg", s.Key, s.Format)
		}
	}
}

func TestScanImages_SkipsNestedOutputDir(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "optimized")
	writePNG(t, filepath.Join(dir, "a.png"), 2, 2)
	writePNG(t, filepath.Join(outDir, "a.12345678.webp"), 2, 2)

	sources, err := ScanImages(dir, outDir)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(sources) != 1 || sources[0].Key != "a" {
		t.Fatalf("earlier outputs fed back into the scan: %+v", sources)
	}
}

func TestRun_ConvertsTree(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	writePNG(t, filepath.Join(inDir, "one.png"), 8, 8)
	writePNG(t, filepath.Join(inDir, "sub", "two.png"), 4, 4)

	p := New(Config{
		InputDir:  inDir,
		OutputDir: outDir,
		Preset:    preset.Get("balanced"),
		Workers:   2,
		NewCodec:  func() avif.Codec { return memCodec{} },
	})

	r, err := p.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(r.Entries) != 2 {
		t.Fatalf("entries: got %d, want 2", len(r.Entries))
	}
	if r.Stats.TotalSources != 2 || r.Stats.TotalOutputs != 2 {
		t.Errorf("stats: %+v", r.Stats)
	}
	if r.RunInfo == nil || r.RunInfo.Codec != "mem" {
		t.Errorf("run_info: %+v", r.RunInfo)
	}

	for key, e := range r.Entries {
		if len(e.Outputs) != 1 {
			t.Fatalf("%s: %d outputs", key, len(e.Outputs))
		}
		out := e.Outputs[0]
		if out.Codec != "avif" {
			t.Errorf("%s: codec %q", key, out.Codec)
		}
		if !strings.HasSuffix(out.Path, ".avif") {
			t.Errorf("%s: output path %q", key, out.Path)
		}
		fi, err := os.Stat(filepath.Join(outDir, filepath.FromSlash(out.Path)))
		if err != nil {
			t.Fatalf("%s: output missing: %v", key, err)
		}
		if fi.Size() != out.Size {
			t.Errorf("%s: size on disk %d, report says %d", key, fi.Size(), out.Size)
		}
	}
}

func TestRun_DownscalesToPresetCeiling(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	writePNG(t, filepath.Join(inDir, "wide.png"), 64, 16)

	pr := preset.Get("balanced")
	pr.MaxWidth = 32

	p := New(Config{
		InputDir:  inDir,
		OutputDir: outDir,
		Preset:    pr,
		Workers:   1,
		NewCodec:  func() avif.Codec { return memCodec{} },
	})

	r, err := p.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	out := r.Entries["wide"].Outputs[0]
	if out.Width != 32 || out.Height != 8 {
		t.Errorf("output dimensions: %dx%d, want 32x8", out.Width, out.Height)
	}
	if src := r.Entries["wide"].Source; src.Width != 64 || src.Height != 16 {
		t.Errorf("source dimensions: %dx%d, want 64x16", src.Width, src.Height)
	}
}

func TestRun_UnavailableCodecWithoutFallbackFails(t *testing.T) {
	inDir := t.TempDir()
	writePNG(t, filepath.Join(inDir, "a.png"), 2, 2)

	pr := preset.Get("balanced")
	pr.FallbackWebP = false

	p := New(Config{
		InputDir:  inDir,
		OutputDir: t.TempDir(),
		Preset:    pr,
		Workers:   1,
		NewCodec:  func() avif.Codec { return unavailableCodec{} },
	})

	if _, err := p.Run(); err == nil {
		t.Fatal("expected error when codec is unavailable and fallback is off")
	}
}

func TestRun_UnavailableCodecFallsBackToWebP(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	writePNG(t, filepath.Join(inDir, "a.png"), 4, 4)

	pr := preset.Get("balanced")
	pr.FallbackWebP = true

	p := New(Config{
		InputDir:  inDir,
		OutputDir: outDir,
		Preset:    pr,
		Workers:   1,
		NewCodec:  func() avif.Codec { return unavailableCodec{} },
	})

	r, err := p.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	out := r.Entries["a"].Outputs[0]
	if out.Codec != "webp" {
		t.Fatalf("codec: got %q, want webp", out.Codec)
	}
	if !strings.HasSuffix(out.Path, ".webp") {
		t.Errorf("output path: %q", out.Path)
	}
	if r.Stats.FallbackOutputs != 1 {
		t.Errorf("fallback outputs: got %d, want 1", r.Stats.FallbackOutputs)
	}
	if _, err := os.Stat(filepath.Join(outDir, filepath.FromSlash(out.Path))); err != nil {
		t.Fatalf("fallback output missing: %v", err)
	}
}

func TestRun_EmptyInputDirFails(t *testing.T) {
	p := New(Config{
		InputDir:  t.TempDir(),
		OutputDir: t.TempDir(),
		Preset:    preset.Get("balanced"),
		NewCodec:  func() avif.Codec { return memCodec{} },
	})
	if _, err := p.Run(); err == nil {
		t.Fatal("expected error for empty input directory")
	}
}
