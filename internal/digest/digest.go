package digest

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"golang.org/x/crypto/blake2b"

	"diffimp/internal/domain"
)

// Stackup returns a short hex fingerprint of every layer in s.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Stackup(s domain.Stackup) string {
	sum := blake2b.Sum256(canonical(s))
	return hex.EncodeToString(sum[:10])
}

// canonical encodes s as length-prefixed fields so adjacent names cannot
// collide. Numbers are written as IEEE-754 bits.
func canonical(s domain.Stackup) []byte {
	var b []byte
	b = binary.BigEndian.AppendUint32(b, uint32(s.CopperCount))
	b = binary.BigEndian.AppendUint32(b, uint32(len(s.Layers)))
	for _, l := range s.Layers {
		b = appendString(b, l.Name)
		b = appendString(b, string(l.Class))
		b = appendString(b, string(l.Kind))
		b = append(b, byte(l.Position))
		b = binary.BigEndian.AppendUint64(b, math.Float64bits(l.ThicknessMM))
		b = binary.BigEndian.AppendUint64(b, math.Float64bits(l.Er))
	}
	return b
}

func appendString(b []byte, s string) []byte {
	b = binary.BigEndian.AppendUint32(b, uint32(len(s)))
	return append(b, s...)
}
