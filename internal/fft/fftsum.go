package fft

import "github.com/xtaci/swifft/internal/lane"

// Sum collapses m groups of FFT output (fftout, m*8 row vectors) into the
// 64-element hash block out, accumulating fftout[i][j]*key[i][j] for every
// group i and row j, reducing after each product, and canonicalizing once
// at the end. The running accumulator is left unreduced between groups: for
// the architectural m=32, the largest possible sum of QReduce outputs
// (each within [-127, 383]) stays well inside int16 range.
func Sum(fftout Output, key [][8]lane.Vector, m int, out *[64]int16) {
	var acc [8]lane.Vector

	for i := 0; i < m; i++ {
		for j := 0; j < 8; j++ {
			p := lane.SafeMult(fftout[i*8+j], key[i][j])
			acc[j] = addVector(acc[j], lane.QReduce(p))
		}
	}

	for j := 0; j < 8; j++ {
		r := lane.ModP(acc[j])
		for c := 0; c < lane.Width; c++ {
			out[j*lane.Width+c] = r[c]
		}
	}
}

func addVector(a, b lane.Vector) lane.Vector {
	var out lane.Vector
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}
