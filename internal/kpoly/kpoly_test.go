package kpoly

import (
	"math/rand"
	"testing"

	"skewff/internal/kfield"
)

func testRing(t *testing.T) *Ring {
	t.Helper()
	f, err := kfield.New(5, 3, []uint64{3, 3, 0, 1})
	if err != nil {
		t.Fatalf("kfield.New: %v", err)
	}
	return NewRing(f, "z")
}

func randPoly(t *testing.T, r *Ring, rnd *rand.Rand, deg int) Poly {
	t.Helper()
	out := make(Poly, deg+1)
	for i := range out {
		e, err := r.Field.RandomElement(rnd)
		if err != nil {
			t.Fatalf("RandomElement: %v", err)
		}
		out[i] = e
	}
	return r.Trim(out)
}

func TestDivModIdentity(t *testing.T) {
	r := testRing(t)
	rnd := rand.New(rand.NewSource(11))
	for i := 0; i < 40; i++ {
		a := randPoly(t, r, rnd, rnd.Intn(7))
		b := randPoly(t, r, rnd, rnd.Intn(4))
		if len(b) == 0 {
			continue
		}
		q, rem, err := r.DivMod(a, b)
		if err != nil {
			t.Fatalf("DivMod: %v", err)
		}
		if r.Degree(rem) >= r.Degree(b) {
			t.Fatalf("deg rem %d >= deg b %d", r.Degree(rem), r.Degree(b))
		}
		if got := r.Add(r.Mul(q, b), rem); !r.Equal(got, a) {
			t.Fatalf("q*b + rem != a")
		}
	}
	if _, _, err := r.DivMod(r.One(), Poly{}); err != ErrDivisionByZero {
		t.Fatalf("division by zero: got %v", err)
	}
}

// cofactorDet is the Laplace expansion along the first row.
func cofactorDet(r *Ring, a [][]Poly) Poly {
	n := len(a)
	if n == 1 {
		return a[0][0]
	}
	det := Poly{}
	for j := 0; j < n; j++ {
		minor := make([][]Poly, n-1)
		for i := 1; i < n; i++ {
			row := append([]Poly(nil), a[i][:j]...)
			minor[i-1] = append(row, a[i][j+1:]...)
		}
		term := r.Mul(a[0][j], cofactorDet(r, minor))
		if j%2 == 1 {
			term = r.Neg(term)
		}
		det = r.Add(det, term)
	}
	return det
}

func TestDetMatchesCofactor(t *testing.T) {
	r := testRing(t)
	rnd := rand.New(rand.NewSource(12))
	for n := 1; n <= 4; n++ {
		for trial := 0; trial < 5; trial++ {
			m := r.ZeroMatrix(n, n)
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					m.Set(i, j, randPoly(t, r, rnd, rnd.Intn(3)))
				}
			}
			got, err := r.Det(m)
			if err != nil {
				t.Fatalf("Det: %v", err)
			}
			if want := cofactorDet(r, m.Entries); !r.Equal(got, want) {
				t.Fatalf("n=%d: Bareiss %s cofactor %s", n, r.Format(got, "t"), r.Format(want, "t"))
			}
		}
	}
}

func TestDetPivotSwap(t *testing.T) {
	r := testRing(t)
	f := r.Field
	m := r.ZeroMatrix(2, 2)
	// [[0, 1], [z, 0]] has determinant -z.
	m.Set(0, 1, r.One())
	m.Set(1, 0, r.New([]kfield.Elem{f.Zero(), f.One()}))
	got, err := r.Det(m)
	if err != nil {
		t.Fatalf("Det: %v", err)
	}
	want := r.New([]kfield.Elem{f.Zero(), f.EmbedF(4)})
	if !r.Equal(got, want) {
		t.Fatalf("det = %s want %s", r.Format(got, "t"), r.Format(want, "t"))
	}
	if _, err := r.Det(r.ZeroMatrix(2, 3)); err == nil {
		t.Fatalf("non-square determinant accepted")
	}
}

func TestFormat(t *testing.T) {
	r := testRing(t)
	f := r.Field
	p := r.New([]kfield.Elem{f.EmbedF(3), f.Phi([]uint64{3, 1}), f.Gen(), f.One()})
	if got, want := r.Format(p, "t"), "z^3 + t*z^2 + (t + 3)*z + 3"; got != want {
		t.Fatalf("Format = %q want %q", got, want)
	}
	if got := r.Format(Poly{}, "t"); got != "0" {
		t.Fatalf("Format(0) = %q", got)
	}
}
