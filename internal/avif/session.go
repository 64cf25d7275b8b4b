// Package avif prepares loosely typed pixel buffers for an AVIF codec:
// it validates dimensions against the declared layout, reifies the bytes
// into the codec's native RGBA8 view (zero-copy where the layout already
// matches, one conversion into session scratch otherwise) and hands the
// result to a codec backend.
package avif

import (
	"fmt"
	"io"
)

// Session owns the state reused across encode calls: the codec backend and
// the scratch buffer conversions land in. One call owns the session for
// its full duration; concurrent encodes need one session each, which is
// why no locking exists here.
type Session struct {
	codec   Codec
	scratch []byte
}

// NewSession creates a session around the given codec backend.
// A nil codec selects the bundled avifenc backend.
func NewSession(codec Codec) *Session {
	if codec == nil {
		codec = &AvifencCodec{}
	}
	return &Session{codec: codec}
}

// Codec returns the session's codec backend.
func (s *Session) Codec() Codec { return s.codec }

// Encode prepares raw, compresses it with cfg and writes the finished
// payload to w. Preparation errors propagate unchanged; codec failures are
// wrapped as ErrEncode with the backend identity; a failed or short sink
// write is ErrSink. Nothing is written to w on any failure before the
// payload exists, so a reported error never follows partial output.
func (s *Session) Encode(raw RawImage, cfg Config, w io.Writer) error {
	view, err := s.prepare(raw)
	if err != nil {
		return err
	}

	payload, err := s.codec.Encode(view, cfg)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, s.codec.Name(), err)
	}

	n, err := w.Write(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSink, err)
	}
	if n < len(payload) {
		return fmt.Errorf("%w: short write (%d of %d bytes)", ErrSink, n, len(payload))
	}
	return nil
}
