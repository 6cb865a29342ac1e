package skew

import (
	"fmt"

	"skewff/internal/kpoly"
)

// BoundFinder returns a central multiple N of m (m divides N on both sides), or ok == false
// when none is available. LeftPow and RightPow fall back to unreduced squaring in that case.
type BoundFinder func(m *Poly) (n *Poly, ok bool)

// NoBound never finds a central multiple.
func NoBound(*Poly) (*Poly, bool) { return nil, false }

// ReducedNormBound returns the monic reduced norm of m, read back in k[X, σ] through
// Z = X^r. It is central and both a left and a right multiple of m.
// The zero polynomial has no bound; a non-zero constant has bound 1.
func ReducedNormBound(m *Poly) (*Poly, bool) {
	r := m.ring
	switch {
	case m.IsZero():
		return nil, false
	case m.Degree() == 0:
		return r.One(), true
	case r.maxBoundDegree > 0 && r.order*m.Degree() > r.maxBoundDegree:
		return nil, false
	}
	norm, err := m.ReducedNorm()
	if err != nil {
		// MulMatrix is square and Bareiss over k[Z] divides exactly.
		panic(fmt.Errorf("skew: reduced norm of %s: %w", m, err))
	}
	return r.FromCenter(r.center.Monic(norm)), true
}

// Bound returns a central multiple of p using the ring's BoundFinder.
func (p *Poly) Bound() (*Poly, bool) {
	return p.ring.boundFinder(p)
}

// ReducedNorm returns det(MulMatrix) of the right-monic associate of p, an element of
// k[Z] with Z = X^r. The zero polynomial has norm zero.
func (p *Poly) ReducedNorm() (kpoly.Poly, error) {
	if p.IsZero() {
		return kpoly.Poly{}, nil
	}
	return p.ring.center.Det(p.RightMonic().MulMatrix())
}

// IsCentral reports whether p commutes with X and with every constant: its support lies in
// multiples of r and its coefficients are fixed by σ.
func (p *Poly) IsCentral() bool {
	r := p.ring
	for i, c := range p.coeffs {
		if r.field.IsZero(c) {
			continue
		}
		if i%r.order != 0 || !r.field.Equal(r.Twist(c, 1), c) {
			return false
		}
	}
	return true
}
