package skew

import (
	"skewff/internal/kfield"
	"skewff/internal/kpoly"
)

// MulMatrix returns the r×r matrix over k[Z], Z = X^r, of multiplication by p on k[X, σ]
// seen as a free module of rank r over k[Z]. p must be monic; this is not checked.
func (p *Poly) MulMatrix() *kpoly.Matrix {
	r := p.ring
	n, d := r.order, p.Degree()
	M := r.center.ZeroMatrix(n, n)
	l := append([]kfield.Elem(nil), p.coeffs...)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			var entry []kfield.Elem
			start := i - j
			if i < j {
				entry = append(entry, r.field.Zero())
				start += n
			}
			for k := start; k <= d; k += n {
				entry = append(entry, l[k])
			}
			M.Set(i, j, r.center.New(entry))
		}
		for k := range l {
			l[k] = r.Twist(l[k], 1)
		}
	}
	return M
}
