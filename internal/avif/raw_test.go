package avif

import (
	"encoding/binary"
	"image"
	"image/color"
	"testing"

	"github.com/AnyUserName/avifpix/internal/pixel"
)

func TestFromImage_NRGBABorrowed(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 9, G: 8, B: 7, A: 6})

	raw := FromImage(src)
	if raw.Format != pixel.RGBA8 {
		t.Fatalf("format: got %s, want rgba8", raw.Format)
	}
	if raw.Width != 3 || raw.Height != 2 {
		t.Fatalf("dimensions: got %dx%d", raw.Width, raw.Height)
	}
	if &raw.Pix[0] != &src.Pix[0] {
		t.Fatal("tightly packed NRGBA was copied")
	}
}

func TestFromImage_GrayBorrowed(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	raw := FromImage(src)
	if raw.Format != pixel.L8 {
		t.Fatalf("format: got %s, want l8", raw.Format)
	}
	if &raw.Pix[0] != &src.Pix[0] {
		t.Fatal("tightly packed Gray was copied")
	}
}

func TestFromImage_NRGBA64RepackedNative(t *testing.T) {
	src := image.NewNRGBA64(image.Rect(0, 0, 1, 1))
	src.SetNRGBA64(0, 0, color.NRGBA64{R: 0x1234, G: 0x5678, B: 0x9abc, A: 0xffff})

	raw := FromImage(src)
	if raw.Format != pixel.RGBA16 {
		t.Fatalf("format: got %s, want rgba16", raw.Format)
	}
	if len(raw.Pix) != 8 {
		t.Fatalf("bytes: got %d, want 8", len(raw.Pix))
	}
	got := binary.NativeEndian.Uint16(raw.Pix[0:2])
	if got != 0x1234 {
		t.Fatalf("red sample: got %#04x, want 0x1234", got)
	}
}

func TestFromImage_Gray16RepackedNative(t *testing.T) {
	src := image.NewGray16(image.Rect(0, 0, 2, 1))
	src.SetGray16(0, 0, color.Gray16{Y: 0xbeef})

	raw := FromImage(src)
	if raw.Format != pixel.L16 {
		t.Fatalf("format: got %s, want l16", raw.Format)
	}
	got := binary.NativeEndian.Uint16(raw.Pix[0:2])
	if got != 0xbeef {
		t.Fatalf("sample: got %#04x, want 0xbeef", got)
	}
}

func TestFromImage_SubImageNormalized(t *testing.T) {
	base := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	sub := base.SubImage(image.Rect(2, 2, 6, 6)).(*image.NRGBA)

	raw := FromImage(sub)
	if raw.Format != pixel.RGBA8 {
		t.Fatalf("format: got %s, want rgba8", raw.Format)
	}
	if raw.Width != 4 || raw.Height != 4 {
		t.Fatalf("dimensions: got %dx%d, want 4x4", raw.Width, raw.Height)
	}
	if len(raw.Pix) != 4*4*4 {
		t.Fatalf("bytes: got %d, want 64", len(raw.Pix))
	}
}

func TestFromImage_YCbCrNormalized(t *testing.T) {
	src := image.NewYCbCr(image.Rect(0, 0, 4, 4), image.YCbCrSubsampleRatio420)
	raw := FromImage(src)
	if raw.Format != pixel.RGBA8 {
		t.Fatalf("format: got %s, want rgba8", raw.Format)
	}
	if len(raw.Pix) != 4*4*4 {
		t.Fatalf("bytes: got %d, want 64", len(raw.Pix))
	}
}
