package skew

import (
	"io"
	"testing"

	"skewff/internal/kfield"
	"skewff/internal/sample"
)

// gf125Ring is GF(5^3)[x, Frob] with t^3 + 3t + 3 as field modulus.
func gf125Ring(t testing.TB, opts ...Option) *Ring {
	t.Helper()
	f, err := kfield.New(5, 3, []uint64{3, 3, 0, 1})
	if err != nil {
		t.Fatalf("kfield.New: %v", err)
	}
	r, err := NewRing(f, 1, opts...)
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}
	return r
}

// gf81Ring is GF(3^4)[x, Frob^2]; σ has order 2 and fixes GF(9).
func gf81Ring(t testing.TB, opts ...Option) *Ring {
	t.Helper()
	f, err := kfield.New(3, 4, []uint64{2, 0, 0, 2, 1})
	if err != nil {
		t.Fatalf("kfield.New: %v", err)
	}
	r, err := NewRing(f, 2, opts...)
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}
	return r
}

func stream(t testing.TB, label string) io.Reader {
	t.Helper()
	s, err := sample.NewStream(label)
	if err != nil {
		t.Fatalf("sample.NewStream: %v", err)
	}
	return s
}

func randPoly(t testing.TB, r *Ring, rd io.Reader, deg int) *Poly {
	t.Helper()
	c, err := sample.Coeffs(r.Field(), deg, false, rd)
	if err != nil {
		t.Fatalf("sample.Coeffs: %v", err)
	}
	return r.NewPoly(c)
}

func randElem(t testing.TB, r *Ring, rd io.Reader) kfield.Elem {
	t.Helper()
	e, err := r.Field().RandomElement(rd)
	if err != nil {
		t.Fatalf("RandomElement: %v", err)
	}
	return e
}

// naivePow multiplies a by itself n times.
func naivePow(a *Poly, n int) *Poly {
	acc := a.Ring().One()
	for i := 0; i < n; i++ {
		acc = acc.Mul(a)
	}
	return acc
}

// scenario returns a = x + t and m = x^3 + t·x^2 + (t+3)·x - 2 over GF(5^3).
func scenario(r *Ring) (a, m *Poly) {
	a = r.NewPolyCoords([][]uint64{{0, 1}, {1}})
	m = r.NewPolyCoords([][]uint64{{3}, {3, 1}, {0, 1}, {1}})
	return a, m
}
