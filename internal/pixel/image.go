package pixel

import "image"

// Image is a reified RGBA8 pixel view: 4 bytes per pixel in R, G, B, A
// order, row-major, straight alpha, len(Pix) == 4*Width*Height.
//
// Pix may alias caller memory (the zero-copy path) or a session-owned
// scratch buffer; either way the view is read-only for its holder and
// valid only for the duration of one encode call.
type Image struct {
	Pix    []byte
	Width  int
	Height int
}

// Pixels returns the number of addressable pixels.
func (m *Image) Pixels() int { return m.Width * m.Height }

// NRGBA wraps the view in an *image.NRGBA header without copying the
// pixel data. NRGBA is the stdlib's straight-alpha RGBA8 layout, so the
// reinterpretation is byte-exact.
func (m *Image) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    m.Pix,
		Stride: 4 * m.Width,
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
}
