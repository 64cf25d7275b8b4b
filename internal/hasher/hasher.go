// Package hasher produces short content hashes for encoded payloads,
// used in content-addressed output filenames and the conversion report.
package hasher

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// ContentHash returns the xxHash64 of data as a hex string truncated to
// hexLen characters. 16 hex chars carry the full 64 bits, which is
// collision-safe for practical output counts; hexLen <= 0 keeps the full
// digest.
func ContentHash(data []byte, hexLen int) string {
	var sum [8]byte
	binary.BigEndian.PutUint64(sum[:], xxhash.Sum64(data))
	full := hex.EncodeToString(sum[:])
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}
