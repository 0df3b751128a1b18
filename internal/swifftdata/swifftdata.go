// Package swifftdata supplies the fixed, process-wide constant tables the
// SWIFFT core treats as externally provided: the public key, the twiddle
// table, the row multiplier table, and the all-zero sign sentinel. None of
// it is ever mutated after package init.
package swifftdata

import (
	"math"

	"github.com/xtaci/swifft/internal/lane"
)

// M is the default group count: a full 256-byte input block is M groups of
// 8 bytes.
const M = 32

// N is the number of elements in one composable hash block.
const N = 64

// Omega is the primitive 16th root of unity mod 257 (3^16 mod 257, for
// primitive root 3): the base every twiddle and multiplier entry is a power
// of.
const Omega int16 = 249

// OmegaPow holds omega^0 .. omega^15 mod 257, precomputed once so Shift
// never recomputes a power.
var OmegaPow [16]int16

// Twiddle is T[sign][byte], each entry an 8-wide lane vector: the radix-2
// phase factor applied to input byte b under sign selector s at the FFT
// load stage.
var Twiddle [2][256]lane.Vector

// Multiplier is the per-row scaling table used at the FFT load stage.
// Multiplier[0] is the identity vector (row 0 skips multiplication).
var Multiplier [8]lane.Vector

// Key is the fixed public SWIFFT key: M groups of 8 row-vectors (M*8*8 =
// M*64 elements), the same shape as one block's FFT output.
var Key [M][8]lane.Vector

// ZeroSign is the all-zero 256-byte sign block Compute pairs with its input
// when the caller has no sign bits of their own.
var ZeroSign [256]byte

func init() {
	OmegaPow[0] = 1
	for i := 1; i < 16; i++ {
		OmegaPow[i] = int16((int32(OmegaPow[i-1]) * int32(Omega)) % lane.P)
		if OmegaPow[i] < 0 {
			OmegaPow[i] += lane.P
		}
	}

	for b := 0; b < 256; b++ {
		for j := 0; j < lane.Width; j++ {
			e := (2*j + 1) * b % 16
			Twiddle[0][b][j] = OmegaPow[e]
			Twiddle[1][b][j] = negate(OmegaPow[e])
		}
	}

	for j := 0; j < lane.Width; j++ {
		Multiplier[0][j] = 1
	}
	for k := 1; k < 8; k++ {
		for j := 0; j < lane.Width; j++ {
			e := (k * (2*j + 1)) % 16
			Multiplier[k][j] = OmegaPow[e]
		}
	}

	idx := 0
	for g := 0; g < M; g++ {
		for row := 0; row < 8; row++ {
			for j := 0; j < lane.Width; j++ {
				Key[g][row][j] = piDerived(idx)
				idx++
			}
		}
	}
}

func negate(x int16) int16 {
	r := (lane.P - x) % lane.P
	return r
}

// piDerived produces the idx-th public key element from the fractional part
// of successive multiples of math.Pi, reduced mod 257. This is the same
// family of technique used to derive round constants from irrational
// numbers: deterministic, reproducible, and genuinely pi-derived without
// requiring thousands of hand-transcribed decimal digits.
func piDerived(idx int) int16 {
	x := math.Pi * float64(idx+1)
	frac := x - math.Floor(x)
	scaled := math.Floor(frac * 1e8)
	r := int64(scaled) % lane.P
	if r < 0 {
		r += lane.P
	}
	return int16(r)
}
