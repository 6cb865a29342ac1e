// Package kpoly implements dense commutative polynomials K[Z] over a kfield.Field and the
// small matrices over K[Z] built by the skew multiplication-matrix routine.
package kpoly

import (
	"errors"
	"strconv"
	"strings"

	"skewff/internal/kfield"
)

// ErrDivisionByZero is returned when dividing by the zero polynomial.
var ErrDivisionByZero = errors.New("kpoly: division by zero polynomial")

// Poly is a polynomial in Z with coefficients indexed by degree.
// The zero polynomial is the empty slice; otherwise the last coefficient is non-zero.
type Poly []kfield.Elem

// Ring is K[Var].
type Ring struct {
	Field *kfield.Field
	Var   string
}

// NewRing returns the polynomial ring over f in the variable v.
func NewRing(f *kfield.Field, v string) *Ring {
	return &Ring{Field: f, Var: v}
}

// Trim strips trailing zero coefficients.
func (r *Ring) Trim(a Poly) Poly {
	n := len(a)
	for n > 0 && r.Field.IsZero(a[n-1]) {
		n--
	}
	return a[:n]
}

// New copies coeffs into a normalized polynomial.
func (r *Ring) New(coeffs []kfield.Elem) Poly {
	out := make(Poly, len(coeffs))
	for i, c := range coeffs {
		out[i] = r.Field.Normalize(c)
	}
	return r.Trim(out)
}

// Constant returns the degree-0 polynomial c (or zero).
func (r *Ring) Constant(c kfield.Elem) Poly {
	return r.New([]kfield.Elem{c})
}

// One returns the constant 1.
func (r *Ring) One() Poly {
	return Poly{r.Field.One()}
}

// Degree returns deg a, with -1 for the zero polynomial.
func (r *Ring) Degree(a Poly) int {
	return len(r.Trim(a)) - 1
}

// Add returns a + b.
func (r *Ring) Add(a, b Poly) Poly {
	n := max(len(a), len(b))
	out := make(Poly, n)
	for i := 0; i < n; i++ {
		switch {
		case i >= len(a):
			out[i] = b[i]
		case i >= len(b):
			out[i] = a[i]
		default:
			out[i] = r.Field.Add(a[i], b[i])
		}
	}
	return r.Trim(out)
}

// Sub returns a - b.
func (r *Ring) Sub(a, b Poly) Poly {
	return r.Add(a, r.Neg(b))
}

// Neg returns -a.
func (r *Ring) Neg(a Poly) Poly {
	out := make(Poly, len(a))
	for i, c := range a {
		out[i] = r.Field.Neg(c)
	}
	return out
}

// ScalarMul returns c*a.
func (r *Ring) ScalarMul(c kfield.Elem, a Poly) Poly {
	out := make(Poly, len(a))
	for i := range a {
		out[i] = r.Field.Mul(c, a[i])
	}
	return r.Trim(out)
}

// Mul returns a*b.
func (r *Ring) Mul(a, b Poly) Poly {
	a, b = r.Trim(a), r.Trim(b)
	if len(a) == 0 || len(b) == 0 {
		return Poly{}
	}
	out := make(Poly, len(a)+len(b)-1)
	for i := range out {
		out[i] = r.Field.Zero()
	}
	for i, ai := range a {
		if r.Field.IsZero(ai) {
			continue
		}
		for j, bj := range b {
			out[i+j] = r.Field.Add(out[i+j], r.Field.Mul(ai, bj))
		}
	}
	return r.Trim(out)
}

// DivMod returns q, rem with a = q*b + rem and deg rem < deg b.
func (r *Ring) DivMod(a, b Poly) (Poly, Poly, error) {
	b = r.Trim(b)
	if len(b) == 0 {
		return nil, nil, ErrDivisionByZero
	}
	rem := append(Poly(nil), r.Trim(a)...)
	db := len(b) - 1
	if len(rem)-1 < db {
		return Poly{}, rem, nil
	}
	quo := make(Poly, len(rem)-db)
	invLead := r.Field.Inv(b[db])
	for i := len(rem) - 1; i >= db; i-- {
		c := r.Field.Mul(rem[i], invLead)
		quo[i-db] = c
		if r.Field.IsZero(c) {
			continue
		}
		for j := 0; j <= db; j++ {
			rem[i-db+j] = r.Field.Sub(rem[i-db+j], r.Field.Mul(c, b[j]))
		}
	}
	return r.Trim(quo), r.Trim(rem[:db]), nil
}

// Monic divides a by its leading coefficient. The zero polynomial is returned unchanged.
func (r *Ring) Monic(a Poly) Poly {
	a = r.Trim(a)
	if len(a) == 0 {
		return a
	}
	return r.ScalarMul(r.Field.Inv(a[len(a)-1]), a)
}

// Equal reports whether a and b are the same polynomial.
func (r *Ring) Equal(a, b Poly) bool {
	a, b = r.Trim(a), r.Trim(b)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !r.Field.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Format renders a using gen as the name of the field generator.
func (r *Ring) Format(a Poly, gen string) string {
	a = r.Trim(a)
	if len(a) == 0 {
		return "0"
	}
	var terms []string
	for i := len(a) - 1; i >= 0; i-- {
		c := a[i]
		if r.Field.IsZero(c) {
			continue
		}
		coeff := r.Field.Format(c, gen)
		if i > 0 && r.Field.Terms(c) > 1 {
			coeff = "(" + coeff + ")"
		}
		mono := ""
		switch {
		case i == 1:
			mono = r.Var
		case i > 1:
			mono = r.Var + "^" + strconv.Itoa(i)
		}
		switch {
		case mono == "":
			terms = append(terms, coeff)
		case r.Field.IsOne(c):
			terms = append(terms, mono)
		default:
			terms = append(terms, coeff+"*"+mono)
		}
	}
	return strings.Join(terms, " + ")
}
