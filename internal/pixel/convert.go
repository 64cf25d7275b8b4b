package pixel

// Converters from each supported source layout into RGBA8. Every function
// reads pixel i from src at the source stride and writes 4 bytes at dst[4i];
// dst must hold 4 bytes per source pixel. Eight-bit sources convert
// losslessly. Sixteen-bit sources narrow by keeping the most significant
// byte (v >> 8), the same truncation the stdlib image/color package applies
// when reducing 16-bit samples to 8 bits.

// Gray8ToRGBA replicates luma into R, G and B with opaque alpha.
func Gray8ToRGBA(src, dst []byte) {
	di := 0
	for _, v := range src {
		dst[di] = v
		dst[di+1] = v
		dst[di+2] = v
		dst[di+3] = 0xff
		di += 4
	}
}

// GrayAlpha8ToRGBA replicates luma and carries alpha through.
func GrayAlpha8ToRGBA(src, dst []byte) {
	di := 0
	for si := 0; si < len(src); si += 2 {
		v := src[si]
		dst[di] = v
		dst[di+1] = v
		dst[di+2] = v
		dst[di+3] = src[si+1]
		di += 4
	}
}

// RGB8ToRGBA copies the three channels and sets opaque alpha.
func RGB8ToRGBA(src, dst []byte) {
	di := 0
	for si := 0; si < len(src); si += 3 {
		dst[di] = src[si]
		dst[di+1] = src[si+1]
		dst[di+2] = src[si+2]
		dst[di+3] = 0xff
		di += 4
	}
}

// BGR8ToRGBA swaps the B and R channels and sets opaque alpha.
func BGR8ToRGBA(src, dst []byte) {
	di := 0
	for si := 0; si < len(src); si += 3 {
		dst[di] = src[si+2]
		dst[di+1] = src[si+1]
		dst[di+2] = src[si]
		dst[di+3] = 0xff
		di += 4
	}
}

// BGRA8ToRGBA swaps the B and R channels, keeping alpha in place.
func BGRA8ToRGBA(src, dst []byte) {
	di := 0
	for si := 0; si < len(src); si += 4 {
		dst[di] = src[si+2]
		dst[di+1] = src[si+1]
		dst[di+2] = src[si]
		dst[di+3] = src[si+3]
		di += 4
	}
}

// Gray16ToRGBA narrows 16-bit luma and replicates it with opaque alpha.
func Gray16ToRGBA(src []uint16, dst []byte) {
	di := 0
	for _, s := range src {
		v := byte(s >> 8)
		dst[di] = v
		dst[di+1] = v
		dst[di+2] = v
		dst[di+3] = 0xff
		di += 4
	}
}

// GrayAlpha16ToRGBA narrows 16-bit luma+alpha pairs.
func GrayAlpha16ToRGBA(src []uint16, dst []byte) {
	di := 0
	for si := 0; si < len(src); si += 2 {
		v := byte(src[si] >> 8)
		dst[di] = v
		dst[di+1] = v
		dst[di+2] = v
		dst[di+3] = byte(src[si+1] >> 8)
		di += 4
	}
}

// RGB16ToRGBA narrows 16-bit RGB triples and sets opaque alpha.
func RGB16ToRGBA(src []uint16, dst []byte) {
	di := 0
	for si := 0; si < len(src); si += 3 {
		dst[di] = byte(src[si] >> 8)
		dst[di+1] = byte(src[si+1] >> 8)
		dst[di+2] = byte(src[si+2] >> 8)
		dst[di+3] = 0xff
		di += 4
	}
}

// RGBA16ToRGBA narrows all four 16-bit channels.
func RGBA16ToRGBA(src []uint16, dst []byte) {
	di := 0
	for si := 0; si < len(src); si += 4 {
		dst[di] = byte(src[si] >> 8)
		dst[di+1] = byte(src[si+1] >> 8)
		dst[di+2] = byte(src[si+2] >> 8)
		dst[di+3] = byte(src[si+3] >> 8)
		di += 4
	}
}
