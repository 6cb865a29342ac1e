package skew

import (
	"fmt"
	"math/big"
	"sync"

	"skewff/internal/kfield"
	"skewff/internal/kpoly"
)

// Poly is a dense skew polynomial Σ a_i X^i. Index = degree; the leading coefficient is
// non-zero and the zero polynomial has no coefficients.
//
// Exported methods never modify the receiver. The unexported in-place routines are only
// applied to polynomials created inside this package.
type Poly struct {
	ring   *Ring
	coeffs []kfield.Elem

	// epoch counts destructive updates of coeffs; the conjugate table is valid only for the
	// epoch recorded in conjEpoch.
	epoch     uint64
	mu        sync.Mutex
	conj      [][]kfield.Elem
	conjEpoch uint64
}

// Ring returns the parent ring.
func (p *Poly) Ring() *Ring { return p.ring }

// Degree returns deg p, -1 for the zero polynomial.
func (p *Poly) Degree() int { return len(p.coeffs) - 1 }

// Coeff returns the coefficient of X^i (zero outside the support).
func (p *Poly) Coeff(i int) kfield.Elem {
	if i < 0 || i >= len(p.coeffs) {
		return p.ring.field.Zero()
	}
	return p.ring.field.Normalize(p.coeffs[i])
}

// Coeffs returns a copy of the coefficient vector.
func (p *Poly) Coeffs() []kfield.Elem {
	out := make([]kfield.Elem, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = p.ring.field.Normalize(c)
	}
	return out
}

// Leading returns the leading coefficient, zero for the zero polynomial.
func (p *Poly) Leading() kfield.Elem {
	return p.Coeff(p.Degree())
}

// Clone returns an independent copy of p with an empty conjugate cache.
func (p *Poly) Clone() *Poly {
	return &Poly{ring: p.ring, coeffs: append([]kfield.Elem(nil), p.coeffs...)}
}

// IsZero reports whether p = 0.
func (p *Poly) IsZero() bool { return len(p.coeffs) == 0 }

// IsConstant reports whether deg p <= 0.
func (p *Poly) IsConstant() bool { return len(p.coeffs) <= 1 }

// IsOne reports whether p = 1.
func (p *Poly) IsOne() bool {
	return len(p.coeffs) == 1 && p.ring.field.IsOne(p.coeffs[0])
}

// IsGenerator reports whether p = X.
func (p *Poly) IsGenerator() bool {
	f := p.ring.field
	return len(p.coeffs) == 2 && f.IsZero(p.coeffs[0]) && f.IsOne(p.coeffs[1])
}

// IsMonic reports whether the leading coefficient is 1.
func (p *Poly) IsMonic() bool {
	return len(p.coeffs) > 0 && p.ring.field.IsOne(p.coeffs[len(p.coeffs)-1])
}

// Equal reports whether p and q are the same element of the same ring.
func (p *Poly) Equal(q *Poly) bool {
	if p.ring != q.ring || len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.ring.field.Equal(p.coeffs[i], q.coeffs[i]) {
			return false
		}
	}
	return true
}

func sameRing(ps ...*Poly) error {
	for _, q := range ps[1:] {
		if q.ring != ps[0].ring {
			return ErrRingMismatch
		}
	}
	return nil
}

func mustSameRing(p, q *Poly) {
	if p.ring != q.ring {
		panic(ErrRingMismatch)
	}
}

// Add returns p + q. It panics if the operands belong to different rings.
func (p *Poly) Add(q *Poly) *Poly {
	mustSameRing(p, q)
	f := p.ring.field
	n := max(len(p.coeffs), len(q.coeffs))
	out := make([]kfield.Elem, n)
	for i := 0; i < n; i++ {
		out[i] = f.Add(p.Coeff(i), q.Coeff(i))
	}
	return &Poly{ring: p.ring, coeffs: p.ring.trim(out)}
}

// Sub returns p - q. It panics if the operands belong to different rings.
func (p *Poly) Sub(q *Poly) *Poly {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p *Poly) Neg() *Poly {
	out := make([]kfield.Elem, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = p.ring.field.Neg(c)
	}
	return &Poly{ring: p.ring, coeffs: out}
}

// ScalarMulLeft returns c·p.
func (p *Poly) ScalarMulLeft(c kfield.Elem) *Poly {
	out := make([]kfield.Elem, len(p.coeffs))
	for i, a := range p.coeffs {
		out[i] = p.ring.field.Mul(c, a)
	}
	return &Poly{ring: p.ring, coeffs: p.ring.trim(out)}
}

// ScalarMulRight returns p·c = Σ a_i σ^i(c) X^i.
func (p *Poly) ScalarMulRight(c kfield.Elem) *Poly {
	out := make([]kfield.Elem, len(p.coeffs))
	for i, a := range p.coeffs {
		out[i] = p.ring.field.Mul(a, p.ring.Twist(c, i))
	}
	return &Poly{ring: p.ring, coeffs: p.ring.trim(out)}
}

// Mul returns p·q = Σ a_i σ^i(b_j) X^{i+j}. It panics if the operands belong to different
// rings.
func (p *Poly) Mul(q *Poly) *Poly {
	mustSameRing(p, q)
	if p.IsZero() || q.IsZero() {
		return p.ring.Zero()
	}
	f := p.ring.field
	out := p.ring.zeros(len(p.coeffs) + len(q.coeffs) - 1)
	for i, a := range p.coeffs {
		if f.IsZero(a) {
			continue
		}
		tb := q.conjugate(i % p.ring.order)
		for j, b := range tb {
			out[i+j] = f.Add(out[i+j], f.Mul(a, b))
		}
	}
	return &Poly{ring: p.ring, coeffs: p.ring.trim(out)}
}

// Pow returns p^n without reduction.
func (p *Poly) Pow(n uint64) *Poly {
	r := p.Clone()
	r.inplacePow(new(big.Int).SetUint64(n))
	return r
}

// Inverse returns p^{-1}. Only non-zero constants are units of k[X, σ].
func (p *Poly) Inverse() (*Poly, error) {
	switch {
	case p.IsZero():
		return nil, fmt.Errorf("skew: inverse of zero: %w", ErrDivisionByZero)
	case p.Degree() > 0:
		return nil, fmt.Errorf("skew: inverse of degree %d polynomial: %w", p.Degree(), ErrNotInvertible)
	}
	return p.ring.Constant(p.ring.field.Inv(p.coeffs[0])), nil
}

// String renders p as in "x^3 + t*x^2 + (t + 3)*x + 3".
func (p *Poly) String() string {
	return p.ring.coeffRing.Format(kpoly.Poly(p.coeffs), p.ring.genName)
}

// setCoeffs replaces the coefficient vector and starts a new epoch.
func (p *Poly) setCoeffs(c []kfield.Elem) {
	p.coeffs = c
	p.epoch++
}

// touch records an in-place update of coeffs.
func (p *Poly) touch() {
	p.epoch++
}
