// Package samples reifies raw byte buffers into strongly typed sample
// slices. The fast path aliases the caller's memory; the slow path makes
// exactly one bit-for-bit copy. Nothing here is ever mutated through the
// returned view, so aliasing the source is safe for read-only use.
package samples

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unsafe"
)

// ErrSlop reports that a buffer's length is not an exact multiple of the
// requested element size. The leftover bytes cannot belong to any sample,
// so the caller's buffer is malformed; no allocation is attempted.
var ErrSlop = errors.New("samples: buffer length is not a multiple of the element size")

// CastError reports that a buffer cannot be reinterpreted as the requested
// element type for a reason other than length or alignment.
type CastError struct {
	ElemSize int
	Reason   string
}

func (e *CastError) Error() string {
	return fmt.Sprintf("samples: cannot cast to %d-byte elements: %s", e.ElemSize, e.Reason)
}

// View is a typed reading of a byte buffer as machine-native uint16
// samples. Owned reports whether Data is a fresh allocation; when false,
// Data aliases the source bytes and shares their lifetime.
type View struct {
	Data  []uint16
	Owned bool
}

// Uint16s reinterprets b as a slice of machine-native uint16 samples.
//
// When len(b) is even and the base address is 2-byte aligned, the returned
// view borrows b directly with zero copies. When the length is fine but the
// address is misaligned, the samples are copied once into a fresh,
// correctly aligned buffer whose content is byte-identical to b. An odd
// length fails with ErrSlop.
func Uint16s(b []byte) (View, error) {
	return Reinterpret(b, 2)
}

// Reinterpret reads b as a sequence of elemSize-byte samples. Only
// elemSize == 2 has a typed representation here; any other size fails with
// a *CastError carrying a diagnostic.
func Reinterpret(b []byte, elemSize int) (View, error) {
	if elemSize != 2 {
		return View{}, &CastError{ElemSize: elemSize, Reason: "only 2-byte samples are representable"}
	}
	if len(b)%2 != 0 {
		return View{}, ErrSlop
	}
	if len(b) == 0 {
		return View{}, nil
	}
	if uintptr(unsafe.Pointer(&b[0]))%unsafe.Alignof(uint16(0)) == 0 {
		return View{Data: unsafe.Slice((*uint16)(unsafe.Pointer(&b[0])), len(b)/2)}, nil
	}
	// Misaligned start: one owned copy. Reading through NativeEndian keeps
	// the content bit-identical to what the aliasing path would observe.
	data := make([]uint16, len(b)/2)
	for i := range data {
		data[i] = binary.NativeEndian.Uint16(b[2*i:])
	}
	return View{Data: data, Owned: true}, nil
}
