package avif

// ColorSpace selects the internal color representation the codec encodes in.
type ColorSpace int

const (
	// ColorSpaceRGB keeps pixels in perceptual RGB.
	ColorSpaceRGB ColorSpace = iota
	// ColorSpaceYCbCr encodes in a luma-chroma representation.
	ColorSpaceYCbCr
)

func (c ColorSpace) String() string {
	if c == ColorSpaceYCbCr {
		return "ycbcr"
	}
	return "rgb"
}

// Config carries the encoding parameters handed to the codec capability.
// It is immutable once an encode call starts.
//
// PremultipliedAlpha is always false: the front-end hands the codec
// straight-alpha pixels and no constructor flips the flag. The field is
// kept so the codec boundary carries the complete parameter set.
type Config struct {
	Quality            int // 0-100
	AlphaQuality       int // 0-100, mirrors Quality at construction
	Speed              int // 0 slowest - 10 fastest
	PremultipliedAlpha bool
	ColorSpace         ColorSpace
}

// NewConfig builds a Config with quality and speed saturated into their
// valid ranges. Out-of-range values are clamped, never rejected: quality
// 255 stores 100, speed 255 stores 10, negatives store 0. Alpha quality
// mirrors quality.
func NewConfig(quality, speed int) Config {
	quality = clamp(quality, 0, 100)
	return Config{
		Quality:      quality,
		AlphaQuality: quality,
		Speed:        clamp(speed, 0, 10),
		ColorSpace:   ColorSpaceRGB,
	}
}

// WithColorSpace returns a copy of c encoding in the given color space.
func (c Config) WithColorSpace(cs ColorSpace) Config {
	c.ColorSpace = cs
	return c
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
