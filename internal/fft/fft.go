// Package fft implements the two SWIFFT transform phases: the per-group
// radix-2 butterfly network ("fft") and the keyed multiply-accumulate
// reduction that collapses its output down to one hash block ("fftsum").
package fft

import (
	"github.com/xtaci/swifft/internal/lane"
	"github.com/xtaci/swifft/internal/swifftdata"
)

// Output holds the intermediate FFT result for m groups: m*8 row vectors,
// m*64 elements total.
type Output []lane.Vector

// NewOutput allocates scratch for m groups.
func NewOutput(m int) Output {
	return make(Output, m*8)
}

// Compute runs the 8-row, 3-stage butterfly network over m groups of 8
// input bytes (and their paired sign bytes), writing m*64 elements into out.
// input and sign must each have at least m*8 bytes; out must have length
// m*8 (as produced by NewOutput).
func Compute(input, sign []byte, m int, out Output) {
	for g := 0; g < m; g++ {
		base := g * 8
		var v [8]lane.Vector

		// Load stage: v[k] = T[sign[k], input[k]] * M[k].
		for k := 0; k < 8; k++ {
			s := 0
			if sign[base+k] != 0 {
				s = 1
			}
			b := input[base+k]
			t := swifftdata.Twiddle[s][b]
			if k == 0 {
				v[0] = t
			} else {
				v[k] = lane.SafeMult(t, swifftdata.Multiplier[k])
			}
		}

		// Butterfly stage 1.
		lane.AddSub(&v[0], &v[1])
		lane.AddSub(&v[2], &v[3])
		lane.AddSub(&v[4], &v[5])
		lane.AddSub(&v[6], &v[7])

		// Reduce/rotate.
		v[2] = lane.QReduce(v[2])
		v[3] = lane.Shift(v[3], 4, swifftdata.OmegaPow)
		v[6] = lane.QReduce(v[6])
		v[7] = lane.Shift(v[7], 4, swifftdata.OmegaPow)

		// Butterfly stage 2.
		lane.AddSub(&v[0], &v[2])
		lane.AddSub(&v[1], &v[3])
		lane.AddSub(&v[4], &v[6])
		lane.AddSub(&v[5], &v[7])

		// Reduce/rotate.
		v[4] = lane.QReduce(v[4])
		v[5] = lane.Shift(v[5], 2, swifftdata.OmegaPow)
		v[6] = lane.Shift(v[6], 4, swifftdata.OmegaPow)
		v[7] = lane.Shift(v[7], 6, swifftdata.OmegaPow)

		// Butterfly stage 3.
		lane.AddSub(&v[0], &v[4])
		lane.AddSub(&v[1], &v[5])
		lane.AddSub(&v[2], &v[6])
		lane.AddSub(&v[3], &v[7])

		// Final reduce and store, contiguous per group.
		for k := 0; k < 8; k++ {
			out[g*8+k] = lane.QReduce(v[k])
		}
	}
}
