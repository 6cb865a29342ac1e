package skew

import "skewff/internal/kfield"

// Side selects the Euclidean structure: Left division writes a = b·q + r, Right division
// writes a = q·b + r. In both cases deg r < deg b.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

func (s Side) inplaceRem(a, b *Poly) error {
	if s == Left {
		return inplaceLeftRem(a, b)
	}
	return inplaceRightRem(a, b)
}

func (s Side) inplaceQuo(a, b *Poly) error {
	if s == Left {
		return inplaceLeftQuo(a, b)
	}
	return inplaceRightQuo(a, b)
}

// Rem returns the remainder of a divided by b on side s.
func (s Side) Rem(a, b *Poly) (*Poly, error) {
	if err := sameRing(a, b); err != nil {
		return nil, err
	}
	r := a.Clone()
	if err := s.inplaceRem(r, b); err != nil {
		return nil, err
	}
	return r, nil
}

// Quo returns the quotient of a divided by b on side s.
func (s Side) Quo(a, b *Poly) (*Poly, error) {
	if err := sameRing(a, b); err != nil {
		return nil, err
	}
	q := a.Clone()
	if err := s.inplaceQuo(q, b); err != nil {
		return nil, err
	}
	return q, nil
}

// QuoRem returns quotient and remainder of a divided by b on side s.
func (s Side) QuoRem(a, b *Poly) (*Poly, *Poly, error) {
	if err := sameRing(a, b); err != nil {
		return nil, nil, err
	}
	q := a.Clone()
	var (
		r   *Poly
		err error
	)
	if s == Left {
		r, err = inplaceLeftQuoRem(q, b)
	} else {
		r, err = inplaceRightQuoRem(q, b)
	}
	if err != nil {
		return nil, nil, err
	}
	return q, r, nil
}

// Divides reports whether b divides a on side s: a = b·q for Left, a = q·b for Right.
func (s Side) Divides(b, a *Poly) (bool, error) {
	r, err := s.Rem(a, b)
	if err != nil {
		return false, err
	}
	return r.IsZero(), nil
}

// LeftRem returns r with a = b·q + r.
func LeftRem(a, b *Poly) (*Poly, error) { return Left.Rem(a, b) }

// RightRem returns r with a = q·b + r.
func RightRem(a, b *Poly) (*Poly, error) { return Right.Rem(a, b) }

// LeftQuo returns q with a = b·q + r.
func LeftQuo(a, b *Poly) (*Poly, error) { return Left.Quo(a, b) }

// RightQuo returns q with a = q·b + r.
func RightQuo(a, b *Poly) (*Poly, error) { return Right.Quo(a, b) }

// LeftQuoRem returns q, r with a = b·q + r.
func LeftQuoRem(a, b *Poly) (*Poly, *Poly, error) { return Left.QuoRem(a, b) }

// RightQuoRem returns q, r with a = q·b + r.
func RightQuoRem(a, b *Poly) (*Poly, *Poly, error) { return Right.QuoRem(a, b) }

// LeftMonic returns p·c with c chosen to make the result monic; it generates the same right
// ideal as p.
func (p *Poly) LeftMonic() *Poly {
	q := p.Clone()
	q.inplaceLeftMonic()
	return q
}

// RightMonic returns c·p with c = lead(p)^{-1}; it generates the same left ideal as p.
func (p *Poly) RightMonic() *Poly {
	q := p.Clone()
	q.inplaceRightMonic()
	return q
}

func checkDivisor(b *Poly) error {
	if b.IsZero() {
		return ErrDivisionByZero
	}
	return nil
}

// privateDivisor guards the in-place routines against a and b sharing storage.
func privateDivisor(a, b *Poly) *Poly {
	if a == b {
		return b.Clone()
	}
	return b
}

// leftCorrection returns c = σ^{-db}(inv · a_{i+db}), the coefficient of X^i in the left
// quotient.
func leftCorrection(r *Ring, inv, lead kfield.Elem, db int) kfield.Elem {
	return r.Twist(r.field.Mul(inv, lead), -db)
}

// inplaceLeftRem replaces a with its remainder in the left division by b.
func inplaceLeftRem(a, b *Poly) error {
	if err := checkDivisor(b); err != nil {
		return err
	}
	b = privateDivisor(a, b)
	da, db := a.Degree(), b.Degree()
	if da < db {
		return nil
	}
	r, f := a.ring, a.ring.field
	A, B := a.coeffs, b.coeffs
	inv := f.Inv(B[db])
	for i := da - db; i >= 0; i-- {
		if f.IsZero(A[i+db]) {
			continue
		}
		c := leftCorrection(r, inv, A[i+db], db)
		for j := 0; j < db; j++ {
			A[i+j] = f.Sub(A[i+j], f.Mul(B[j], r.Twist(c, j)))
		}
	}
	a.setCoeffs(r.trim(A[:db]))
	return nil
}

// inplaceLeftQuo replaces a with its quotient in the left division by b.
func inplaceLeftQuo(a, b *Poly) error {
	_, err := inplaceLeftQuoRem(a, b)
	return err
}

// inplaceLeftQuoRem replaces a with the left quotient by b and returns the remainder.
func inplaceLeftQuoRem(a, b *Poly) (*Poly, error) {
	if err := checkDivisor(b); err != nil {
		return nil, err
	}
	b = privateDivisor(a, b)
	da, db := a.Degree(), b.Degree()
	if da < db {
		rem := a.Clone()
		a.setCoeffs(nil)
		return rem, nil
	}
	r, f := a.ring, a.ring.field
	A, B := a.coeffs, b.coeffs
	inv := f.Inv(B[db])
	for i := da - db; i >= 0; i-- {
		if f.IsZero(A[i+db]) {
			continue
		}
		c := leftCorrection(r, inv, A[i+db], db)
		for j := 0; j < db; j++ {
			A[i+j] = f.Sub(A[i+j], f.Mul(B[j], r.Twist(c, j)))
		}
		A[i+db] = c
	}
	rem := &Poly{ring: r, coeffs: r.trim(append([]kfield.Elem(nil), A[:db]...))}
	a.setCoeffs(r.trim(A[db:]))
	return rem, nil
}

// twistedInverses returns [σ^k(inv) for k = 0..n].
func twistedInverses(r *Ring, inv kfield.Elem, n int) []kfield.Elem {
	tw := make([]kfield.Elem, n+1)
	tw[0] = inv
	for k := 1; k <= n; k++ {
		tw[k] = r.Twist(tw[k-1], 1)
	}
	return tw
}

// rightSweep eliminates the coefficients of a from degree da down to db using
// c = a_{i+db} · σ^i(lead(b)^{-1}) and the conjugates of b. When keepQuo is set the
// correction coefficients are stored at a_{i+db}.
func rightSweep(a, b *Poly, keepQuo bool) {
	da, db := a.Degree(), b.Degree()
	r, f := a.ring, a.ring.field
	order := r.order
	n := min(da-db, order-1)
	twinv := twistedInverses(r, f.Inv(b.coeffs[db]), n)
	A := a.coeffs
	for i := da - db; i >= 0; i-- {
		if f.IsZero(A[i+db]) {
			continue
		}
		k := i % order
		c := f.Mul(A[i+db], twinv[k])
		tb := b.conjugate(k)
		for j := 0; j < db; j++ {
			A[i+j] = f.Sub(A[i+j], f.Mul(c, tb[j]))
		}
		if keepQuo {
			A[i+db] = c
		}
	}
	a.touch()
}

// inplaceRightRem replaces a with its remainder in the right division by b.
func inplaceRightRem(a, b *Poly) error {
	if err := checkDivisor(b); err != nil {
		return err
	}
	b = privateDivisor(a, b)
	db := b.Degree()
	if a.Degree() < db {
		return nil
	}
	rightSweep(a, b, false)
	a.setCoeffs(a.ring.trim(a.coeffs[:db]))
	return nil
}

// inplaceRightQuo replaces a with its quotient in the right division by b.
func inplaceRightQuo(a, b *Poly) error {
	if err := checkDivisor(b); err != nil {
		return err
	}
	b = privateDivisor(a, b)
	db := b.Degree()
	if a.Degree() < db {
		a.setCoeffs(nil)
		return nil
	}
	rightSweep(a, b, true)
	a.setCoeffs(a.ring.trim(a.coeffs[db:]))
	return nil
}

// inplaceRightQuoRem replaces a with the right quotient by b and returns the remainder.
func inplaceRightQuoRem(a, b *Poly) (*Poly, error) {
	if err := checkDivisor(b); err != nil {
		return nil, err
	}
	b = privateDivisor(a, b)
	db := b.Degree()
	if a.Degree() < db {
		rem := a.Clone()
		a.setCoeffs(nil)
		return rem, nil
	}
	rightSweep(a, b, true)
	r := a.ring
	rem := &Poly{ring: r, coeffs: r.trim(append([]kfield.Elem(nil), a.coeffs[:db]...))}
	a.setCoeffs(r.trim(a.coeffs[db:]))
	return rem, nil
}

// inplaceRightMonic multiplies p on the left by lead(p)^{-1}.
func (p *Poly) inplaceRightMonic() {
	if p.IsZero() {
		return
	}
	f := p.ring.field
	d := p.Degree()
	inv := f.Inv(p.coeffs[d])
	for i := 0; i < d; i++ {
		p.coeffs[i] = f.Mul(inv, p.coeffs[i])
	}
	p.coeffs[d] = f.One()
	p.touch()
}

// inplaceLeftMonic multiplies p on the right by σ^{-d}(lead(p)^{-1}).
func (p *Poly) inplaceLeftMonic() {
	if p.IsZero() {
		return
	}
	r, f := p.ring, p.ring.field
	d := p.Degree()
	inv := f.Inv(p.coeffs[d])
	for i := 0; i < d; i++ {
		p.coeffs[i] = f.Mul(p.coeffs[i], r.Twist(inv, i-d))
	}
	p.coeffs[d] = f.One()
	p.touch()
}
