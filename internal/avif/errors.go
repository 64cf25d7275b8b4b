package avif

import "errors"

// Error kinds surfaced by the encode front-end. All failures wrap exactly
// one of these sentinels, so callers classify with errors.Is and never need
// to match message text. Nothing is retried internally and nothing is
// downgraded; every error is terminal for the current call.
var (
	// ErrDimensionMismatch reports that the declared width, height and
	// pixel format disagree with the actual buffer length, or that the
	// implied pixel count is zero.
	ErrDimensionMismatch = errors.New("avif: buffer size does not match image dimensions")

	// ErrUnsupportedFormat reports a pixel format tag with no conversion
	// path to the encoder's native RGBA8 layout.
	ErrUnsupportedFormat = errors.New("avif: unsupported pixel format")

	// ErrReinterpret reports that a byte buffer could not be reinterpreted
	// as the element type a 16-bit layout requires, for a reason other
	// than size or alignment.
	ErrReinterpret = errors.New("avif: buffer reinterpretation failed")

	// ErrEncode reports a failure inside the codec capability itself.
	ErrEncode = errors.New("avif: encoder failure")

	// ErrSink reports that the output sink did not accept the full
	// encoded payload.
	ErrSink = errors.New("avif: payload write failed")
)
