package skew

import (
	"fmt"
	"math/big"
)

// powCase lists the shortcuts of LeftPow/RightPow in the order they are tried.
type powCase int

const (
	powConstant    powCase = iota // deg ≤ 0: power computed in k
	powZeroExp                    // exp == 0: 1
	powNegativeExp                // exp < 0: power of the inverse
	powGenerator                  // self == X: X^exp written out
	powGeneral                    // square-and-multiply, modulo a bound when available
)

func (r *Ring) classifyPow(p *Poly, exp *big.Int) powCase {
	switch {
	case p.Degree() <= 0:
		return powConstant
	case exp.Sign() == 0:
		return powZeroExp
	case exp.Sign() < 0:
		return powNegativeExp
	case p.IsGenerator() && exp.IsInt64() && exp.Int64() <= r.maxDirectPower:
		return powGenerator
	default:
		return powGeneral
	}
}

// LeftPow returns the remainder of p^exp in the left division by modulus. A nil or zero
// modulus returns p^exp.
func (p *Poly) LeftPow(exp *big.Int, modulus *Poly) (*Poly, error) {
	return p.powMod(Left, exp, modulus)
}

// RightPow returns the remainder of p^exp in the right division by modulus. A nil or zero
// modulus returns p^exp.
func (p *Poly) RightPow(exp *big.Int, modulus *Poly) (*Poly, error) {
	return p.powMod(Right, exp, modulus)
}

// LeftPowInt is LeftPow for machine integers.
func (p *Poly) LeftPowInt(exp int64, modulus *Poly) (*Poly, error) {
	return p.powMod(Left, big.NewInt(exp), modulus)
}

// RightPowInt is RightPow for machine integers.
func (p *Poly) RightPowInt(exp int64, modulus *Poly) (*Poly, error) {
	return p.powMod(Right, big.NewInt(exp), modulus)
}

// PowMod dispatches to LeftPow or RightPow.
func (p *Poly) PowMod(s Side, exp *big.Int, modulus *Poly) (*Poly, error) {
	return p.powMod(s, exp, modulus)
}

func (p *Poly) powMod(s Side, exp *big.Int, modulus *Poly) (*Poly, error) {
	if exp == nil {
		return nil, fmt.Errorf("skew: nil exponent: %w", ErrNonIntegralExponent)
	}
	if modulus != nil {
		if err := sameRing(p, modulus); err != nil {
			return nil, err
		}
		if modulus.IsZero() {
			modulus = nil
		}
	}
	r, f := p.ring, p.ring.field

	switch r.classifyPow(p, exp) {
	case powConstant:
		c := p.Coeff(0)
		if exp.Sign() >= 0 {
			return r.Constant(f.Pow(c, exp)), nil
		}
		if f.IsZero(c) {
			return nil, fmt.Errorf("skew: negative power of zero: %w", ErrDivisionByZero)
		}
		return r.Constant(f.Pow(f.Inv(c), new(big.Int).Neg(exp))), nil

	case powZeroExp:
		return r.One(), nil

	case powNegativeExp:
		inv, err := p.Inverse()
		if err != nil {
			return nil, err
		}
		return inv.powMod(s, new(big.Int).Neg(exp), modulus)

	case powGenerator:
		n := int(exp.Int64())
		coeffs := r.zeros(n + 1)
		coeffs[n] = f.One()
		res := &Poly{ring: r, coeffs: coeffs}
		if modulus != nil {
			if err := s.inplaceRem(res, modulus); err != nil {
				return nil, err
			}
		}
		return res, nil
	}

	// Reduction modulo a central N is a ring morphism, so squaring can reduce after every
	// product; a remainder by a non-central modulus would not be.
	sq := modulus
	if modulus != nil {
		if n, ok := r.boundFinder(modulus); ok {
			sq = n
		} else {
			sq = nil
		}
	}
	res := p.Clone()
	if err := res.inplacePowMod(s, exp, sq); err != nil {
		return nil, err
	}
	if modulus != nil && sq != modulus {
		if err := s.inplaceRem(res, modulus); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// inplacePow replaces p with p^exp, exp >= 0.
func (p *Poly) inplacePow(exp *big.Int) {
	// Without a modulus the side plays no role and no error can occur.
	_ = p.inplacePowMod(Left, exp, nil)
}

// inplacePowMod replaces p with p^exp, reduced on side s modulo m after every product when m
// is non-nil. m must be central for the result to be the remainder of p^exp.
func (p *Poly) inplacePowMod(s Side, exp *big.Int, m *Poly) error {
	base := p.Clone()
	if m != nil {
		if err := s.inplaceRem(base, m); err != nil {
			return err
		}
	}
	acc := p.ring.One()
	for i := exp.BitLen() - 1; i >= 0; i-- {
		acc = acc.Mul(acc)
		if exp.Bit(i) == 1 {
			acc = acc.Mul(base)
		}
		if m != nil {
			if err := s.inplaceRem(acc, m); err != nil {
				return err
			}
		}
	}
	p.setCoeffs(acc.coeffs)
	return nil
}
