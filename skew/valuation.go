package skew

import "skewff/internal/kfield"

// ValuationUnit returns v and u with p = X^v·u and u(0) != 0. The zero polynomial gives
// (-1, 0).
func (p *Poly) ValuationUnit() (int, *Poly) {
	u := p.Clone()
	v := u.inplaceValuationUnit()
	return v, u
}

// inplaceValuationUnit strips the X^v factor on the left of p and returns v.
func (p *Poly) inplaceValuationUnit() int {
	if p.IsZero() {
		return -1
	}
	r := p.ring
	v := 0
	for r.field.IsZero(p.coeffs[v]) {
		v++
	}
	if v == 0 {
		return 0
	}
	// X^v·c = σ^v(c)·X^v, hence u_k = σ^{-v}(a_{k+v}).
	u := make([]kfield.Elem, len(p.coeffs)-v)
	for k := range u {
		u[k] = r.Twist(p.coeffs[k+v], -v)
	}
	p.setCoeffs(u)
	return v
}
