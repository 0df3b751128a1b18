package swifft

import "github.com/xtaci/swifft/internal/lane"

// Set copies in into out, canonicalizing every element.
func Set(out *Hash, in *Hash) {
	for i := range out {
		out[i] = lane.ModPInt32(int32(in[i]))
	}
}

// Add computes out[i] = out[i] + in[i] mod P for every element. out and in
// may alias (Add(h, h) doubles h); otherwise they must be disjoint.
func Add(out *Hash, in *Hash) {
	for i := range out {
		out[i] = lane.ModPInt32(int32(out[i]) + int32(in[i]))
	}
}

// Sub computes out[i] = out[i] - in[i] mod P for every element.
func Sub(out *Hash, in *Hash) {
	for i := range out {
		out[i] = lane.ModPInt32(int32(out[i]) - int32(in[i]))
	}
}

// Mul computes out[i] = out[i] * in[i] mod P for every element.
func Mul(out *Hash, in *Hash) {
	for i := range out {
		out[i] = lane.ModPInt32(int32(out[i]) * int32(in[i]))
	}
}

// ConstSet sets every element of out to the canonicalized constant c.
func ConstSet(out *Hash, c int16) {
	cc := lane.ModPInt32(int32(c))
	for i := range out {
		out[i] = cc
	}
}

// ConstAdd adds the constant c to every element of out.
func ConstAdd(out *Hash, c int16) {
	cc := int32(lane.ModPInt32(int32(c)))
	for i := range out {
		out[i] = lane.ModPInt32(int32(out[i]) + cc)
	}
}

// ConstSub subtracts the constant c from every element of out.
func ConstSub(out *Hash, c int16) {
	cc := int32(lane.ModPInt32(int32(c)))
	for i := range out {
		out[i] = lane.ModPInt32(int32(out[i]) - cc)
	}
}

// ConstMul multiplies every element of out by the constant c.
func ConstMul(out *Hash, c int16) {
	cc := int32(lane.ModPInt32(int32(c)))
	for i := range out {
		out[i] = lane.ModPInt32(int32(out[i]) * cc)
	}
}
