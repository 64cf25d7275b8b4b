package avif

import (
	"errors"
	"fmt"
	"math"

	"github.com/AnyUserName/avifpix/internal/pixel"
	"github.com/AnyUserName/avifpix/internal/samples"
)

// convPath describes how one source layout reaches the native RGBA8
// layout. Wide formats are reified through the samples package first;
// 8-bit formats convert straight from the caller's bytes.
type convPath struct {
	wide        bool
	convert     func(src, dst []byte)
	convertWide func(src []uint16, dst []byte)
}

// paths keys every supported non-native layout to its conversion.
// RGBA8 is absent on purpose: it is the zero-copy case.
var paths = map[pixel.Format]convPath{
	pixel.L8:    {convert: pixel.Gray8ToRGBA},
	pixel.LA8:   {convert: pixel.GrayAlpha8ToRGBA},
	pixel.RGB8:  {convert: pixel.RGB8ToRGBA},
	pixel.BGR8:  {convert: pixel.BGR8ToRGBA},
	pixel.BGRA8: {convert: pixel.BGRA8ToRGBA},

	pixel.L16:    {wide: true, convertWide: pixel.Gray16ToRGBA},
	pixel.LA16:   {wide: true, convertWide: pixel.GrayAlpha16ToRGBA},
	pixel.RGB16:  {wide: true, convertWide: pixel.RGB16ToRGBA},
	pixel.RGBA16: {wide: true, convertWide: pixel.RGBA16ToRGBA},
}

// prepare validates raw and produces the RGBA8 view handed to the codec.
//
// Native RGBA8 input is returned as a borrowed view over the caller's
// bytes with no allocation. Every other supported layout is converted into
// the session scratch buffer, which is replaced (not appended to) on each
// call, so only the most recent conversion survives. raw.Pix is never
// written to.
func (s *Session) prepare(raw RawImage) (*pixel.Image, error) {
	if !raw.Format.Supported() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, raw.Format)
	}

	// Bound the dimension products before multiplying: both the declared
	// byte count and the 4-byte-per-pixel output must stay addressable,
	// or the length check below compares against a wrapped value.
	stride := raw.Format.PixelStride()
	lim := stride
	if lim < 4 {
		lim = 4
	}
	if raw.Width < 0 || raw.Height < 0 ||
		(raw.Height > 0 && raw.Width > math.MaxInt/lim/raw.Height) {
		return nil, fmt.Errorf("%w: dimensions %dx%d are not addressable",
			ErrDimensionMismatch, raw.Width, raw.Height)
	}

	want := raw.Width * raw.Height * stride
	if len(raw.Pix) != want {
		return nil, fmt.Errorf("%w: %dx%d %s expects %d bytes, have %d",
			ErrDimensionMismatch, raw.Width, raw.Height, raw.Format, want, len(raw.Pix))
	}

	if raw.Format == pixel.RGBA8 {
		// The codec's addressing assumes at least one pixel.
		if raw.Width == 0 || raw.Height == 0 {
			return nil, fmt.Errorf("%w: zero-pixel image", ErrDimensionMismatch)
		}
		return &pixel.Image{Pix: raw.Pix, Width: raw.Width, Height: raw.Height}, nil
	}

	// Scratch is allocated only once the input is fully validated and, for
	// wide formats, reified; no failure path leaves a fresh buffer behind.
	path := paths[raw.Format]
	if path.wide {
		view, err := samples.Uint16s(raw.Pix)
		if err != nil {
			if errors.Is(err, samples.ErrSlop) {
				return nil, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
			}
			return nil, fmt.Errorf("%w: %v", ErrReinterpret, err)
		}
		s.scratch = make([]byte, 4*raw.Width*raw.Height)
		path.convertWide(view.Data, s.scratch)
	} else {
		s.scratch = make([]byte, 4*raw.Width*raw.Height)
		path.convert(raw.Pix, s.scratch)
	}

	return &pixel.Image{Pix: s.scratch, Width: raw.Width, Height: raw.Height}, nil
}
