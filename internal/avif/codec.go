package avif

import "github.com/AnyUserName/avifpix/internal/pixel"

// Codec turns a prepared RGBA8 pixel view into an encoded AVIF payload.
// Implementations treat the view as read-only and must not retain it past
// the call.
type Codec interface {
	// Name identifies the backend in error messages and reports.
	Name() string

	// Available reports whether the backend is ready to encode.
	// External binaries may not be installed.
	Available() bool

	// Encode compresses the view with the given parameters and returns
	// the finished payload, or a codec-level error.
	Encode(img *pixel.Image, cfg Config) ([]byte, error)
}
