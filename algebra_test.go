package swifft

import "testing"

func sampleHash(seed int16) Hash {
	var h Hash
	for i := range h {
		h[i] = int16((int(seed) + i*13) % 257)
	}
	return h
}

func TestAddIdentity(t *testing.T) {
	a := sampleHash(5)
	var zero Hash
	ConstSet(&zero, 0)

	got := a
	Add(&got, &zero)
	if got != a {
		t.Fatalf("Add(h, 0) = %v, want %v", got, a)
	}
}

func TestSubSelfIsZero(t *testing.T) {
	a := sampleHash(17)
	got := a
	Sub(&got, &a)

	var zero Hash
	for _, v := range got {
		if v != zero[0] {
			t.Fatalf("Sub(h, h) = %v, want all-zero", got)
		}
	}
}

func TestAddIsCommutativeAndAssociative(t *testing.T) {
	a := sampleHash(1)
	b := sampleHash(2)
	c := sampleHash(3)

	ab := a
	Add(&ab, &b)
	ba := b
	Add(&ba, &a)
	if ab != ba {
		t.Fatalf("Add not commutative: a+b=%v b+a=%v", ab, ba)
	}

	abc1 := ab
	Add(&abc1, &c)

	bc := b
	Add(&bc, &c)
	abc2 := a
	Add(&abc2, &bc)

	if abc1 != abc2 {
		t.Fatalf("Add not associative: (a+b)+c=%v a+(b+c)=%v", abc1, abc2)
	}
}

func TestMulIdentityAndZero(t *testing.T) {
	a := sampleHash(9)

	one := a
	ConstSet(&one, 1)
	got := a
	Mul(&got, &one)
	if got != a {
		t.Fatalf("Mul(h, 1) = %v, want %v", got, a)
	}

	var zero Hash
	ConstSet(&zero, 0)
	got2 := a
	Mul(&got2, &zero)
	for _, v := range got2 {
		if v != 0 {
			t.Fatalf("Mul(h, 0) = %v, want all-zero", got2)
		}
	}
}

func TestMulDistributesOverAdd(t *testing.T) {
	a := sampleHash(4)
	b := sampleHash(11)
	c := sampleHash(21)

	bc := b
	Add(&bc, &c)
	lhs := a
	Mul(&lhs, &bc)

	ab := a
	Mul(&ab, &b)
	ac := a
	Mul(&ac, &c)
	rhs := ab
	Add(&rhs, &ac)

	if lhs != rhs {
		t.Fatalf("Mul(a, b+c) = %v, want Add(Mul(a,b), Mul(a,c)) = %v", lhs, rhs)
	}
}

func TestConstOpsMatchTheirHashEquivalents(t *testing.T) {
	a := sampleHash(6)
	const c = 42

	var cset Hash
	ConstSet(&cset, c)

	gotAdd := a
	ConstAdd(&gotAdd, c)
	wantAdd := a
	Add(&wantAdd, &cset)
	if gotAdd != wantAdd {
		t.Fatalf("ConstAdd(h,c) = %v, want Add(h, ConstSet(c)) = %v", gotAdd, wantAdd)
	}

	gotSub := a
	ConstSub(&gotSub, c)
	wantSub := a
	Sub(&wantSub, &cset)
	if gotSub != wantSub {
		t.Fatalf("ConstSub(h,c) = %v, want Sub(h, ConstSet(c)) = %v", gotSub, wantSub)
	}

	gotMul := a
	ConstMul(&gotMul, c)
	wantMul := a
	Mul(&wantMul, &cset)
	if gotMul != wantMul {
		t.Fatalf("ConstMul(h,c) = %v, want Mul(h, ConstSet(c)) = %v", gotMul, wantMul)
	}
}

// E5: ConstSet(h, 300); ConstSub(h, 43) yields all-zero, since 300-43=257≡0.
func TestConstSetThenConstSubModularWraparound(t *testing.T) {
	var h Hash
	ConstSet(&h, 300)
	ConstSub(&h, 43)

	for i, v := range h {
		if v != 0 {
			t.Fatalf("element %d = %d, want 0 (300-43 ≡ 0 mod 257)", i, v)
		}
	}
}

// E6: Add(a, b) then Sub(result, b) equals a byte-for-byte after
// canonicalization.
func TestAddThenSubRoundTrips(t *testing.T) {
	a := sampleHash(50)
	b := sampleHash(123)

	var canonicalA Hash
	Set(&canonicalA, &a)

	got := a
	Add(&got, &b)
	Sub(&got, &b)

	if got != canonicalA {
		t.Fatalf("Add then Sub = %v, want original %v", got, canonicalA)
	}
}

func TestAddDoublingAliasedOperands(t *testing.T) {
	a := sampleHash(8)
	doubled := a
	Add(&doubled, &doubled)

	want := a
	ConstMul(&want, 2)
	if doubled != want {
		t.Fatalf("Add(h,h) = %v, want 2*h = %v", doubled, want)
	}
}
