package skew

// RightGCD returns the right gcd of a and b by the Euclidean algorithm on right remainders:
// a generator G of the left ideal S·a + S·b, so G right-divides both operands. The result is
// not normalized; see RightMonicGCD.
//
// If b is zero, a itself is returned without a copy.
func RightGCD(a, b *Poly) (*Poly, error) {
	return euclid(Right, a, b)
}

// LeftGCD returns a generator G of a·S + b·S, computed with left remainders. G left-divides
// both operands. If b is zero, a itself is returned.
func LeftGCD(a, b *Poly) (*Poly, error) {
	return euclid(Left, a, b)
}

// RightMonicGCD returns the monic right gcd of a and b.
func RightMonicGCD(a, b *Poly) (*Poly, error) {
	g, err := RightGCD(a, b)
	if err != nil {
		return nil, err
	}
	return g.RightMonic(), nil
}

// LeftMonicGCD returns the monic left gcd of a and b.
func LeftMonicGCD(a, b *Poly) (*Poly, error) {
	g, err := LeftGCD(a, b)
	if err != nil {
		return nil, err
	}
	return g.LeftMonic(), nil
}

func euclid(s Side, a, b *Poly) (*Poly, error) {
	if err := sameRing(a, b); err != nil {
		return nil, err
	}
	if b.IsZero() {
		return a, nil
	}
	g := a.Clone()
	if err := inplaceGCD(s, g, b); err != nil {
		return nil, err
	}
	return g, nil
}

// inplaceRightGCD replaces a with the right gcd of a and b. b is left untouched.
func inplaceRightGCD(a, b *Poly) error {
	return inplaceGCD(Right, a, b)
}

func inplaceGCD(s Side, a, b *Poly) error {
	if b.IsZero() {
		return nil
	}
	B := b.Clone()
	for !B.IsZero() {
		// B plays a new role on every step; its conjugates restart from its coefficients.
		B.resetConjugates()
		if err := s.inplaceRem(a, B); err != nil {
			return err
		}
		swapCoeffs(a, B)
	}
	return nil
}

func swapCoeffs(a, b *Poly) {
	ac, bc := a.coeffs, b.coeffs
	a.setCoeffs(bc)
	b.setCoeffs(ac)
}
