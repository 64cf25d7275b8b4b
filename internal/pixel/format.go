// Package pixel defines the pixel layouts accepted by the encoder front-end
// and the conversions between them and the encoder's native RGBA8 layout.
package pixel

import "fmt"

// Format tags the channel layout of a raw pixel buffer.
//
// The set is closed: 8-bit and 16-bit variants of luma, luma+alpha, RGB
// (plus reversed-order BGR for the 8-bit depth) and RGBA. Sixteen-bit
// samples are machine-native unsigned integers, two bytes per channel.
type Format uint8

const (
	// L8 is single-channel 8-bit luma.
	L8 Format = iota
	// LA8 is 8-bit luma with alpha.
	LA8
	// RGB8 is 3-channel 8-bit, R first.
	RGB8
	// BGR8 is 3-channel 8-bit, B first.
	BGR8
	// RGBA8 is the encoder's native layout: 4 channels, 8 bits each,
	// straight (non-premultiplied) alpha, row-major.
	RGBA8
	// BGRA8 is 4-channel 8-bit, B first.
	BGRA8
	// L16 is single-channel 16-bit luma.
	L16
	// LA16 is 16-bit luma with alpha.
	LA16
	// RGB16 is 3-channel 16-bit.
	RGB16
	// RGBA16 is 4-channel 16-bit.
	RGBA16
)

var formatInfo = map[Format]struct {
	name     string
	channels int
	depth    int // bytes per channel
}{
	L8:     {"l8", 1, 1},
	LA8:    {"la8", 2, 1},
	RGB8:   {"rgb8", 3, 1},
	BGR8:   {"bgr8", 3, 1},
	RGBA8:  {"rgba8", 4, 1},
	BGRA8:  {"bgra8", 4, 1},
	L16:    {"l16", 1, 2},
	LA16:   {"la16", 2, 2},
	RGB16:  {"rgb16", 3, 2},
	RGBA16: {"rgba16", 4, 2},
}

// Channels returns the number of channels per pixel, or 0 for an
// unrecognized tag.
func (f Format) Channels() int { return formatInfo[f].channels }

// BytesPerChannel returns the width of one channel sample in bytes,
// or 0 for an unrecognized tag.
func (f Format) BytesPerChannel() int { return formatInfo[f].depth }

// PixelStride returns the number of bytes occupied by one pixel.
func (f Format) PixelStride() int {
	info := formatInfo[f]
	return info.channels * info.depth
}

// Wide reports whether the format carries 16-bit channels.
func (f Format) Wide() bool { return formatInfo[f].depth == 2 }

// Supported reports whether f is a member of the closed format set.
func (f Format) Supported() bool {
	_, ok := formatInfo[f]
	return ok
}

func (f Format) String() string {
	if info, ok := formatInfo[f]; ok {
		return info.name
	}
	return fmt.Sprintf("format(%d)", uint8(f))
}
