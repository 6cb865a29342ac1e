package kfield

// Package kfield implements finite fields K = F_p[t]/(chi(t)) represented over a power basis.
// It provides irreducible polynomial search, base arithmetic, Frobenius powers and the
// multiplication matrices used by the skew polynomial engine.

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"math/bits"
	"strings"
	"sync"

	"github.com/tuneinsight/lattigo/v4/ring"
)

// Field describes K = F_p[t]/(chi(t)) with a degree theta power-basis representation.
type Field struct {
	P     uint64
	Theta int
	Chi   []uint64

	frobOnce sync.Once
	frob     [][][]uint64
}

// Elem is a K element represented by its theta limbs in the power basis.
type Elem struct {
	Limb []uint64
}

// New constructs a field descriptor. p must be prime and chi monic irreducible of degree theta.
func New(p uint64, theta int, chi []uint64) (*Field, error) {
	if p < 2 {
		return nil, fmt.Errorf("kfield: characteristic must be at least 2")
	}
	if !new(big.Int).SetUint64(p).ProbablyPrime(20) {
		return nil, fmt.Errorf("kfield: characteristic %d is not prime", p)
	}
	if theta <= 0 {
		return nil, fmt.Errorf("kfield: theta must be positive")
	}
	if len(chi) != theta+1 {
		return nil, fmt.Errorf("kfield: chi must have degree theta")
	}
	chiNorm := make([]uint64, len(chi))
	for i := range chi {
		chiNorm[i] = chi[i] % p
	}
	if chiNorm[len(chiNorm)-1] != 1 {
		return nil, fmt.Errorf("kfield: chi must be monic")
	}
	if !isIrreducible(p, chiNorm) {
		return nil, fmt.Errorf("kfield: chi is reducible")
	}
	return &Field{P: p, Theta: theta, Chi: chiNorm}, nil
}

// FindIrreducible samples random monic irreducible polynomials of degree theta over F_p.
func FindIrreducible(p uint64, theta int, rnd io.Reader) ([]uint64, error) {
	if p < 2 || theta <= 0 {
		return nil, fmt.Errorf("kfield: invalid p or theta")
	}
	if rnd == nil {
		rnd = rand.Reader
	}
	if theta == 1 {
		return []uint64{0, 1}, nil
	}
	const maxTries = 1 << 16
	for try := 0; try < maxTries; try++ {
		chi := make([]uint64, theta+1)
		chi[theta] = 1
		chi[0] = 1 + randU64(rnd)%(p-1)
		for i := 1; i < theta; i++ {
			chi[i] = randU64(rnd) % p
		}
		if isIrreducible(p, chi) {
			return chi, nil
		}
	}
	return nil, errors.New("kfield: failed to find irreducible polynomial")
}

// Order returns p^theta, the number of elements of K.
func (f *Field) Order() *big.Int {
	return new(big.Int).Exp(new(big.Int).SetUint64(f.P), big.NewInt(int64(f.Theta)), nil)
}

// Zero returns the additive identity in K.
func (f *Field) Zero() Elem {
	return Elem{Limb: make([]uint64, f.Theta)}
}

// One returns the multiplicative identity in K.
func (f *Field) One() Elem {
	e := f.Zero()
	e.Limb[0] = 1
	return e
}

// Gen returns the class of t, the power-basis generator. For theta == 1 it is the root of chi.
func (f *Field) Gen() Elem {
	if f.Theta == 1 {
		return f.EmbedF(modSub(0, f.Chi[0], f.P))
	}
	e := f.Zero()
	e.Limb[1] = 1
	return e
}

// EmbedF lifts an F_p element into K via the canonical embedding.
func (f *Field) EmbedF(x uint64) Elem {
	e := f.Zero()
	e.Limb[0] = x % f.P
	return e
}

// Phi builds the power-basis element from its coordinate vector (truncated/padded as needed).
func (f *Field) Phi(coords []uint64) Elem {
	e := f.Zero()
	n := len(coords)
	if n > f.Theta {
		n = f.Theta
	}
	copy(e.Limb, coords[:n])
	for i := 0; i < f.Theta; i++ {
		e.Limb[i] %= f.P
	}
	return e
}

// PhiInv returns a copy of the coordinates of e in the power basis.
func (f *Field) PhiInv(e Elem) []uint64 {
	out := make([]uint64, f.Theta)
	copy(out, e.Limb)
	for i := range out {
		out[i] %= f.P
	}
	return out
}

// Add returns a + b in K.
func (f *Field) Add(a, b Elem) Elem {
	out := f.Zero()
	for i := 0; i < f.Theta; i++ {
		out.Limb[i] = modAdd(a.Limb[i], b.Limb[i], f.P)
	}
	return out
}

// Sub returns a - b in K.
func (f *Field) Sub(a, b Elem) Elem {
	out := f.Zero()
	for i := 0; i < f.Theta; i++ {
		out.Limb[i] = modSub(a.Limb[i], b.Limb[i], f.P)
	}
	return out
}

// Neg returns -a in K.
func (f *Field) Neg(a Elem) Elem {
	out := f.Zero()
	for i := 0; i < f.Theta; i++ {
		out.Limb[i] = modSub(0, a.Limb[i], f.P)
	}
	return out
}

// ScalarMul returns s*a for an F_p scalar s.
func (f *Field) ScalarMul(s uint64, a Elem) Elem {
	out := f.Zero()
	for i := 0; i < f.Theta; i++ {
		out.Limb[i] = modMul(s, a.Limb[i], f.P)
	}
	return out
}

// Mul multiplies two K-elements using schoolbook arithmetic followed by reduction modulo chi.
func (f *Field) Mul(a, b Elem) Elem {
	deg := f.Theta
	tmp := make([]uint64, 2*deg)
	for i := 0; i < deg; i++ {
		ai := a.Limb[i] % f.P
		if ai == 0 {
			continue
		}
		for j := 0; j < deg; j++ {
			bj := b.Limb[j] % f.P
			if bj == 0 {
				continue
			}
			tmp[i+j] = modAdd(tmp[i+j], modMul(ai, bj, f.P), f.P)
		}
	}
	for k := len(tmp) - 1; k >= deg; k-- {
		coeff := tmp[k]
		if coeff == 0 {
			continue
		}
		tmp[k] = 0
		m := k - deg
		for j := 0; j < deg; j++ {
			tmp[m+j] = modSub(tmp[m+j], modMul(coeff, f.Chi[j], f.P), f.P)
		}
	}
	res := make([]uint64, deg)
	copy(res, tmp[:deg])
	return Elem{Limb: res}
}

// MulMatrix returns the theta×theta F_p-matrix representing multiplication by e.
func (f *Field) MulMatrix(e Elem) [][]uint64 {
	M := make([][]uint64, f.Theta)
	for i := 0; i < f.Theta; i++ {
		M[i] = make([]uint64, f.Theta)
	}
	for col := 0; col < f.Theta; col++ {
		basis := f.Zero()
		basis.Limb[col] = 1
		prod := f.Mul(e, basis)
		for row := 0; row < f.Theta; row++ {
			M[row][col] = prod.Limb[row]
		}
	}
	return M
}

// RandomElement samples a K-element by drawing theta limbs over F_p from r.
func (f *Field) RandomElement(r io.Reader) (Elem, error) {
	if r == nil {
		r = rand.Reader
	}
	limb := make([]uint64, f.Theta)
	var buf [8]byte
	for i := 0; i < f.Theta; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return Elem{}, fmt.Errorf("kfield: sampling: %w", err)
		}
		limb[i] = leU64(buf) % f.P
	}
	return Elem{Limb: limb}, nil
}

// Normalize returns a copy of e with limbs reduced modulo p.
func (f *Field) Normalize(e Elem) Elem {
	out := f.Zero()
	copy(out.Limb, e.Limb)
	for i := range out.Limb {
		out.Limb[i] %= f.P
	}
	return out
}

// IsZero reports whether all limbs of e are zero modulo p.
func (f *Field) IsZero(e Elem) bool {
	for _, limb := range e.Limb {
		if limb%f.P != 0 {
			return false
		}
	}
	return true
}

// IsOne reports whether e is the multiplicative identity.
func (f *Field) IsOne(e Elem) bool {
	for i, limb := range e.Limb {
		want := uint64(0)
		if i == 0 {
			want = 1
		}
		if limb%f.P != want {
			return false
		}
	}
	return true
}

// Equal reports whether a and b are the same element of K.
func (f *Field) Equal(a, b Elem) bool {
	for i := 0; i < f.Theta; i++ {
		if a.Limb[i]%f.P != b.Limb[i]%f.P {
			return false
		}
	}
	return true
}

// Pow returns base^{exp} in K using square-and-multiply. exp must be non-negative.
func (f *Field) Pow(base Elem, exp *big.Int) Elem {
	if exp == nil || exp.Sign() == 0 {
		return f.One()
	}
	result := f.One()
	cur := f.Normalize(base)
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = f.Mul(result, result)
		if exp.Bit(i) == 1 {
			result = f.Mul(result, cur)
		}
	}
	return result
}

// Inv returns the multiplicative inverse of a in K. It panics if a is zero.
func (f *Field) Inv(a Elem) Elem {
	if f.IsZero(a) {
		panic("kfield: inverse of zero element")
	}
	if f.Theta == 1 {
		return f.EmbedF(modInv(a.Limb[0], f.P))
	}
	exp := f.Order()
	exp.Sub(exp, big.NewInt(2))
	return f.Pow(a, exp)
}

// Format renders e in the power basis with v as the name of t, e.g. "4*t^2 + 2*t + 3".
func (f *Field) Format(e Elem, v string) string {
	var terms []string
	for i := f.Theta - 1; i >= 0; i-- {
		c := e.Limb[i] % f.P
		if c == 0 {
			continue
		}
		switch {
		case i == 0:
			terms = append(terms, fmt.Sprintf("%d", c))
		case c == 1 && i == 1:
			terms = append(terms, v)
		case c == 1:
			terms = append(terms, fmt.Sprintf("%s^%d", v, i))
		case i == 1:
			terms = append(terms, fmt.Sprintf("%d*%s", c, v))
		default:
			terms = append(terms, fmt.Sprintf("%d*%s^%d", c, v, i))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

// Terms returns the number of non-zero limbs of e.
func (f *Field) Terms(e Elem) int {
	n := 0
	for _, limb := range e.Limb {
		if limb%f.P != 0 {
			n++
		}
	}
	return n
}

// randU64 reads 8 random bytes and returns them as a uint64 in little endian.
func randU64(r io.Reader) uint64 {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		panic(err)
	}
	return leU64(buf)
}

func leU64(buf [8]byte) uint64 {
	return uint64(buf[0]) | uint64(buf[1])<<8 | uint64(buf[2])<<16 | uint64(buf[3])<<24 |
		uint64(buf[4])<<32 | uint64(buf[5])<<40 | uint64(buf[6])<<48 | uint64(buf[7])<<56
}

func modAdd(a, b, q uint64) uint64 {
	a %= q
	b %= q
	sum := a + b
	if sum >= q || sum < a {
		sum -= q
	}
	return sum
}

func modSub(a, b, q uint64) uint64 {
	a %= q
	b %= q
	if a >= b {
		return a - b
	}
	return a + q - b
}

func modMul(a, b, q uint64) uint64 {
	a %= q
	b %= q
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, q)
	return rem
}

// modInv inverts a modulo the prime q (Fermat). In F_2 the only unit is 1.
func modInv(a, q uint64) uint64 {
	if a%q == 0 {
		panic("kfield: inverse of zero")
	}
	if q == 2 {
		return 1
	}
	return ring.ModExp(a%q, q-2, q)
}
