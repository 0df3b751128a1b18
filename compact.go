package swifft

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// CompactBlock is the non-composable 512-bit encoding a Compactor reduces a
// Hash to. Unlike Hash, a CompactBlock no longer supports the ring algebra —
// it exists purely as an output encoding.
type CompactBlock [CompactBlockSize]byte

// Compactor is the external compaction boundary: a pure function of its
// 128-byte input. Callers who need bit-compatibility with another SWIFFT
// implementation's compaction supply their own.
type Compactor interface {
	Compact(h *Hash) CompactBlock
}

// shakeCompactor is the default Compactor: it encodes the hash's 64
// elements as little-endian uint16s (its natural 128-byte form) and feeds
// them through a SHAKE256 XOF, squeezing exactly CompactBlockSize bytes. A
// XOF is a natural fit for turning a composable, structured value into an
// opaque fixed-size digest.
type shakeCompactor struct{}

func (shakeCompactor) Compact(h *Hash) CompactBlock {
	var buf [OutputBlockSizeBytes]byte
	for i, v := range h {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(v))
	}

	var out CompactBlock
	x := sha3.NewShake256()
	x.Write(buf[:])
	x.Read(out[:])
	return out
}

// OutputBlockSizeBytes is the byte size of one Hash's natural encoding
// (64 elements * 2 bytes each = 128 bytes, i.e. OUTPUT_BLOCK).
const OutputBlockSizeBytes = N * 2

// DefaultCompactor is used by Compact and CompactMultiple when the caller
// does not provide their own.
var DefaultCompactor Compactor = shakeCompactor{}

// Compact reduces h to its non-composable compact encoding using
// DefaultCompactor.
func Compact(h *Hash, out *CompactBlock) {
	*out = DefaultCompactor.Compact(h)
}

// CompactWith is Compact parameterized by an explicit Compactor.
func CompactWith(c Compactor, h *Hash, out *CompactBlock) {
	*out = c.Compact(h)
}

// CompactMultiple applies Compact independently across nblocks hash blocks,
// under the same batch/parallel policy as every other …Multiple op.
func CompactMultiple(hashes []Hash, outs []CompactBlock, opts Options) {
	n := minLen(len(hashes), len(outs))
	runBatched(n, opts, func(i int) {
		Compact(&hashes[i], &outs[i])
	})
}
