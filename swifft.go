// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package swifft implements the arithmetic core of the SWIFFT lattice-based
// compression function: per-block compression (Compute/ComputeSigned), the
// element-wise ring algebra that keeps hash blocks composable (Set, Add,
// Sub, Mul and their constant-operand variants), a batched driver that fans
// every single-block operation out across independent blocks, and a
// boundary to an external, non-composable Compact encoding.
package swifft

import (
	"github.com/xtaci/swifft/internal/fft"
	"github.com/xtaci/swifft/internal/lane"
	"github.com/xtaci/swifft/internal/swifftdata"
)

const (
	// InputBlockSize is the size of one SWIFFT input block, in bytes.
	InputBlockSize = 256
	// SignBlockSize is the size of one sign-selector block, in bytes.
	SignBlockSize = 256
	// CompactBlockSize is the size of one non-composable compacted hash.
	CompactBlockSize = 64
	// P is the modulus defining the arithmetic ring.
	P = 257
	// N is the number of elements in one composable hash block.
	N = swifftdata.N
	// M is the default group count for a full input block.
	M = swifftdata.M
	// DefaultBlocksParallelizationThreshold is the minimum nblocks above
	// which batched drivers are permitted to parallelize.
	DefaultBlocksParallelizationThreshold = 8
)

// Hash is one composable SWIFFT output: 64 signed 16-bit elements, each a
// canonical residue mod P (i.e. in [0, 256]). Its in-memory size is exactly
// the 128-byte OUTPUT_BLOCK shape.
type Hash [N]int16

// InputBlock is one 2048-bit SWIFFT input block.
type InputBlock [InputBlockSize]byte

// SignBlock is the per-byte sign selector paired with an InputBlock. The
// zero value is the all-zero sentinel ComputeSigned and Compute agree on.
type SignBlock [SignBlockSize]byte

// Compute is ComputeSigned with an all-zero sign block.
func Compute(input *InputBlock, out *Hash) {
	ComputeSigned(input, (*SignBlock)(&swifftdata.ZeroSign), out)
}

// ComputeSigned runs the FFT phase followed by the keyed FFT-sum phase over
// a single input block, producing one composable hash block. input and sign
// are read-only; out must not alias any FFT scratch (there is none visible
// to the caller — it is allocated internally per call).
func ComputeSigned(input *InputBlock, sign *SignBlock, out *Hash) {
	var scratch [swifftdata.M * 8]lane.Vector
	fft.Compute(input[:], sign[:], swifftdata.M, scratch[:])
	fft.Sum(scratch[:], swifftdata.Key[:], swifftdata.M, (*[64]int16)(out))
}
