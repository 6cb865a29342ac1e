package skew

import (
	"errors"
	"testing"

	"skewff/internal/kfield"
)

func TestNewRingOrder(t *testing.T) {
	f, err := kfield.New(3, 4, []uint64{2, 0, 0, 2, 1})
	if err != nil {
		t.Fatalf("kfield.New: %v", err)
	}
	cases := []struct{ twist, order, fixed int }{
		{0, 1, 4}, {1, 4, 1}, {2, 2, 2}, {3, 4, 1}, {-1, 4, 1}, {6, 2, 2},
	}
	for _, c := range cases {
		r, err := NewRing(f, c.twist)
		if err != nil {
			t.Fatalf("NewRing(%d): %v", c.twist, err)
		}
		if r.Order() != c.order || r.FixedFieldDegree() != c.fixed {
			t.Fatalf("twist %d: order %d fixed %d want %d %d", c.twist, r.Order(), r.FixedFieldDegree(), c.order, c.fixed)
		}
	}
	if _, err := NewRing(nil, 1); err == nil {
		t.Fatalf("nil field accepted")
	}
}

func TestCommutationRule(t *testing.T) {
	r := gf125Ring(t)
	rd := stream(t, "commutation")
	x := r.Gen()
	for i := 0; i < 20; i++ {
		c := r.Constant(randElem(t, r, rd))
		lhs := x.Mul(c)
		rhs := r.Constant(r.Twist(c.Coeff(0), 1)).Mul(x)
		if !lhs.Equal(rhs) {
			t.Fatalf("X·c = %s, σ(c)·X = %s", lhs, rhs)
		}
	}
}

func TestMulAssociativeDistributive(t *testing.T) {
	for _, r := range []*Ring{gf125Ring(t), gf81Ring(t)} {
		rd := stream(t, "assoc")
		for i := 0; i < 15; i++ {
			a := randPoly(t, r, rd, i%4)
			b := randPoly(t, r, rd, (i+1)%5)
			c := randPoly(t, r, rd, (i+2)%3)
			if lhs, rhs := a.Mul(b).Mul(c), a.Mul(b.Mul(c)); !lhs.Equal(rhs) {
				t.Fatalf("(ab)c = %s, a(bc) = %s", lhs, rhs)
			}
			if lhs, rhs := a.Mul(b.Add(c)), a.Mul(b).Add(a.Mul(c)); !lhs.Equal(rhs) {
				t.Fatalf("a(b+c) = %s, ab+ac = %s", lhs, rhs)
			}
			if lhs, rhs := a.Add(b).Mul(c), a.Mul(c).Add(b.Mul(c)); !lhs.Equal(rhs) {
				t.Fatalf("(a+b)c = %s, ac+bc = %s", lhs, rhs)
			}
		}
	}
}

func TestMulIsNotCommutative(t *testing.T) {
	r := gf125Ring(t)
	a, m := scenario(r)
	if a.Mul(m).Equal(m.Mul(a)) {
		t.Fatalf("a·m == m·a for %s and %s", a, m)
	}
}

func TestScalarMul(t *testing.T) {
	r := gf125Ring(t)
	rd := stream(t, "scalar")
	p := randPoly(t, r, rd, 4)
	c := randElem(t, r, rd)
	if got, want := p.ScalarMulRight(c), p.Mul(r.Constant(c)); !got.Equal(want) {
		t.Fatalf("p·c = %s want %s", got, want)
	}
	if got, want := p.ScalarMulLeft(c), r.Constant(c).Mul(p); !got.Equal(want) {
		t.Fatalf("c·p = %s want %s", got, want)
	}
}

func TestSubNeg(t *testing.T) {
	r := gf81Ring(t)
	rd := stream(t, "sub")
	p := randPoly(t, r, rd, 3)
	if !p.Sub(p).IsZero() {
		t.Fatalf("p - p != 0")
	}
	if !p.Add(p.Neg()).IsZero() {
		t.Fatalf("p + (-p) != 0")
	}
}

func TestString(t *testing.T) {
	r := gf125Ring(t)
	a, m := scenario(r)
	cases := []struct {
		p    *Poly
		want string
	}{
		{r.Zero(), "0"},
		{r.One(), "1"},
		{r.Gen(), "x"},
		{a, "x + t"},
		{m, "x^3 + t*x^2 + (t + 3)*x + 3"},
	}
	for _, c := range cases {
		if got := c.p.String(); got != c.want {
			t.Fatalf("String = %q want %q", got, c.want)
		}
	}
}

func TestPredicates(t *testing.T) {
	r := gf125Ring(t)
	a, m := scenario(r)
	if !r.Gen().IsGenerator() || a.IsGenerator() {
		t.Fatalf("IsGenerator")
	}
	if !m.IsMonic() || r.Zero().IsMonic() {
		t.Fatalf("IsMonic")
	}
	if r.Zero().Degree() != -1 || m.Degree() != 3 {
		t.Fatalf("Degree")
	}
	if !r.NewPolyCoords([][]uint64{{1}, {0}, {0, 0, 0}}).IsOne() {
		t.Fatalf("trailing zeros not stripped")
	}
}

func TestInverse(t *testing.T) {
	r := gf125Ring(t)
	c := r.NewPolyCoords([][]uint64{{2, 1}})
	inv, err := c.Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	if !inv.Mul(c).IsOne() {
		t.Fatalf("c^-1·c = %s", inv.Mul(c))
	}
	if _, err := r.Gen().Inverse(); !errors.Is(err, ErrNotInvertible) {
		t.Fatalf("Inverse(X): %v", err)
	}
	if _, err := r.Zero().Inverse(); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("Inverse(0): %v", err)
	}
}

func TestCrossRingPanics(t *testing.T) {
	a := gf125Ring(t).Gen()
	b := gf125Ring(t).Gen()
	defer func() {
		if recover() == nil {
			t.Fatalf("Mul across rings did not panic")
		}
	}()
	a.Mul(b)
}

func TestConjugateCache(t *testing.T) {
	r := gf125Ring(t)
	rd := stream(t, "conjugates")
	p := randPoly(t, r, rd, 3)
	tb := p.conjugate(2)
	if p.conjugateCount() != 3 {
		t.Fatalf("cached %d conjugates want 3", p.conjugateCount())
	}
	for j, c := range p.coeffs {
		if !r.Field().Equal(tb[j], r.Twist(c, 2)) {
			t.Fatalf("conjugate 2 slot %d wrong", j)
		}
	}
	// A destructive update must invalidate the table.
	p.setCoeffs(r.Gen().coeffs)
	if p.conjugateCount() != 0 {
		t.Fatalf("stale conjugates survived an update")
	}
	if got := p.conjugate(1); len(got) != 2 {
		t.Fatalf("rebuilt conjugate has %d entries want 2", len(got))
	}
}
