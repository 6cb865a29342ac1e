// Package skew implements the skew polynomial ring k[X, σ] over a finite field k, where σ is a
// power of the Frobenius endomorphism and X·a = σ(a)·X.
//
// Left and right Euclidean division, right and left gcd and left and right exponentiation
// modulo a polynomial are separate operations. Every exported method is value-returning: the
// destructive routines only ever run on private copies.
package skew

import (
	"errors"
	"fmt"

	"skewff/internal/kfield"
	"skewff/internal/kpoly"
)

const defaultMaxDirectPower = 1 << 20

// Ring is the context shared by polynomials of k[X, σ]. It is immutable once built.
type Ring struct {
	field *kfield.Field
	twist int // σ = Frob^twist, 0 <= twist < θ
	order int

	varName string
	genName string

	boundFinder    BoundFinder
	maxBoundDegree int
	maxDirectPower int64

	coeffRing *kpoly.Ring // used for printing
	center    *kpoly.Ring // k[X^r]
}

// Option configures a Ring.
type Option func(*Ring)

// WithVariable names the indeterminate (default "x").
func WithVariable(name string) Option {
	return func(r *Ring) { r.varName = name }
}

// WithGenerator names the field generator used when printing coefficients (default "t").
func WithGenerator(name string) Option {
	return func(r *Ring) { r.genName = name }
}

// WithBoundFinder replaces the central multiple search used by LeftPow and RightPow.
func WithBoundFinder(f BoundFinder) Option {
	return func(r *Ring) { r.boundFinder = f }
}

// WithMaxBoundDegree makes ReducedNormBound give up when the bound would exceed n in X.
// Zero means unlimited.
func WithMaxBoundDegree(n int) Option {
	return func(r *Ring) { r.maxBoundDegree = n }
}

// WithMaxDirectPower sets the largest exponent for which X^n is written out directly.
func WithMaxDirectPower(n int64) Option {
	return func(r *Ring) { r.maxDirectPower = n }
}

// NewRing returns k[X, σ] with σ = Frob^twist. twist may be negative.
func NewRing(f *kfield.Field, twist int, opts ...Option) (*Ring, error) {
	if f == nil {
		return nil, errors.New("skew: nil field")
	}
	s := twist % f.Theta
	if s < 0 {
		s += f.Theta
	}
	r := &Ring{
		field:          f,
		twist:          s,
		order:          f.Theta / gcd(s, f.Theta),
		varName:        "x",
		genName:        "t",
		boundFinder:    ReducedNormBound,
		maxDirectPower: defaultMaxDirectPower,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.boundFinder == nil {
		r.boundFinder = NoBound
	}
	if r.maxBoundDegree < 0 {
		return nil, fmt.Errorf("skew: negative max bound degree %d", r.maxBoundDegree)
	}
	r.coeffRing = kpoly.NewRing(f, r.varName)
	r.center = kpoly.NewRing(f, fmt.Sprintf("(%s^%d)", r.varName, r.order))
	return r, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Field returns the coefficient field.
func (r *Ring) Field() *kfield.Field { return r.field }

// TwistPower returns s with σ = Frob^s.
func (r *Ring) TwistPower() int { return r.twist }

// Order returns the order of σ: the smallest r > 0 with σ^r = id.
func (r *Ring) Order() int { return r.order }

// FixedFieldDegree returns g such that the fixed field of σ is F_{p^g}.
func (r *Ring) FixedFieldDegree() int { return r.field.Theta / r.order }

// Center returns k[Z] where Z stands for X^Order().
func (r *Ring) Center() *kpoly.Ring { return r.center }

// Variable returns the name of the indeterminate.
func (r *Ring) Variable() string { return r.varName }

// Generator returns the name printed for the generator of k.
func (r *Ring) Generator() string { return r.genName }

// Twist returns σ^k(e). k may be negative.
func (r *Ring) Twist(e kfield.Elem, k int) kfield.Elem {
	k %= r.order
	if k < 0 {
		k += r.order
	}
	return r.field.Frobenius(e, r.twist*k)
}

// Zero returns the zero polynomial.
func (r *Ring) Zero() *Poly {
	return &Poly{ring: r}
}

// One returns the constant 1.
func (r *Ring) One() *Poly {
	return &Poly{ring: r, coeffs: []kfield.Elem{r.field.One()}}
}

// Gen returns the indeterminate X.
func (r *Ring) Gen() *Poly {
	return &Poly{ring: r, coeffs: []kfield.Elem{r.field.Zero(), r.field.One()}}
}

// Constant returns the degree-0 polynomial c.
func (r *Ring) Constant(c kfield.Elem) *Poly {
	return r.NewPoly([]kfield.Elem{c})
}

// NewPoly returns Σ coeffs[i]·X^i. coeffs is copied.
func (r *Ring) NewPoly(coeffs []kfield.Elem) *Poly {
	out := make([]kfield.Elem, len(coeffs))
	for i, c := range coeffs {
		out[i] = r.field.Normalize(c)
	}
	return &Poly{ring: r, coeffs: r.trim(out)}
}

// NewPolyCoords builds a polynomial from power-basis coordinates, one slice per coefficient.
func (r *Ring) NewPolyCoords(coords [][]uint64) *Poly {
	coeffs := make([]kfield.Elem, len(coords))
	for i, c := range coords {
		coeffs[i] = r.field.Phi(c)
	}
	return &Poly{ring: r, coeffs: r.trim(coeffs)}
}

// FromCenter maps z ∈ k[Z] to z(X^r).
func (r *Ring) FromCenter(z kpoly.Poly) *Poly {
	z = r.center.Trim(z)
	if len(z) == 0 {
		return r.Zero()
	}
	coeffs := make([]kfield.Elem, (len(z)-1)*r.order+1)
	for i := range coeffs {
		coeffs[i] = r.field.Zero()
	}
	for i, c := range z {
		coeffs[i*r.order] = r.field.Normalize(c)
	}
	return &Poly{ring: r, coeffs: coeffs}
}

func (r *Ring) trim(c []kfield.Elem) []kfield.Elem {
	n := len(c)
	for n > 0 && r.field.IsZero(c[n-1]) {
		n--
	}
	return c[:n]
}

func (r *Ring) zeros(n int) []kfield.Elem {
	out := make([]kfield.Elem, n)
	for i := range out {
		out[i] = r.field.Zero()
	}
	return out
}
