package avif

import (
	"encoding/binary"
	"image"

	"github.com/AnyUserName/avifpix/internal/pixel"
	"github.com/disintegration/imaging"
)

// RawImage is a borrowed, loosely typed pixel buffer as supplied by a
// caller: bytes plus declared dimensions and layout. The front-end only
// ever reads it. A well-formed image satisfies
// len(Pix) == Width*Height*Format.PixelStride().
type RawImage struct {
	Pix    []byte
	Width  int
	Height int
	Format pixel.Format
}

// FromImage bridges a decoded image.Image into a RawImage, preferring
// layouts that avoid conversion work downstream.
//
// Tightly packed NRGBA and Gray images are borrowed as-is. Sixteen-bit
// stdlib images store big-endian samples, so they are repacked once into
// machine-native order (the byte order 16-bit raw buffers are declared
// in). Everything else is normalized to NRGBA via imaging.
func FromImage(img image.Image) RawImage {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch src := img.(type) {
	case *image.NRGBA:
		if src.Stride == 4*w && b == src.Rect {
			return RawImage{Pix: src.Pix[:4*w*h], Width: w, Height: h, Format: pixel.RGBA8}
		}
	case *image.Gray:
		if src.Stride == w && b == src.Rect {
			return RawImage{Pix: src.Pix[:w*h], Width: w, Height: h, Format: pixel.L8}
		}
	case *image.Gray16:
		if src.Stride == 2*w && b == src.Rect {
			return RawImage{Pix: repackNative(src.Pix[:2*w*h]), Width: w, Height: h, Format: pixel.L16}
		}
	case *image.NRGBA64:
		if src.Stride == 8*w && b == src.Rect {
			return RawImage{Pix: repackNative(src.Pix[:8*w*h]), Width: w, Height: h, Format: pixel.RGBA16}
		}
	}

	clone := imaging.Clone(img)
	return RawImage{Pix: clone.Pix, Width: w, Height: h, Format: pixel.RGBA8}
}

// repackNative rewrites big-endian 16-bit samples into machine-native
// byte order. On big-endian hosts this is a plain copy.
func repackNative(be []byte) []byte {
	out := make([]byte, len(be))
	for i := 0; i+1 < len(be); i += 2 {
		binary.NativeEndian.PutUint16(out[i:], binary.BigEndian.Uint16(be[i:]))
	}
	return out
}
