package kfield

// ---------------- F_p[t] helpers for the irreducibility test ----------------

type fpoly []uint64

func fpolyTrim(a fpoly, p uint64) fpoly {
	idx := len(a) - 1
	for idx > 0 && a[idx]%p == 0 {
		idx--
	}
	if idx < 0 {
		return fpoly{0}
	}
	out := make(fpoly, idx+1)
	for i := 0; i <= idx; i++ {
		out[i] = a[i] % p
	}
	return out
}

func fpolyIsZero(a fpoly) bool {
	return len(a) == 1 && a[0] == 0
}

func fpolySub(a, b fpoly, p uint64) fpoly {
	n := max(len(a), len(b))
	out := make(fpoly, n)
	for i := 0; i < n; i++ {
		var ai, bi uint64
		if i < len(a) {
			ai = a[i]
		}
		if i < len(b) {
			bi = b[i]
		}
		out[i] = modSub(ai, bi, p)
	}
	return fpolyTrim(out, p)
}

func fpolyMul(a, b fpoly, p uint64) fpoly {
	out := make(fpoly, len(a)+len(b)-1)
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			if bj == 0 {
				continue
			}
			out[i+j] = modAdd(out[i+j], modMul(ai, bj, p), p)
		}
	}
	return fpolyTrim(out, p)
}

// fpolyRem returns a mod b. b must be non-zero.
func fpolyRem(a, b fpoly, p uint64) fpoly {
	A := fpolyTrim(a, p)
	B := fpolyTrim(b, p)
	if fpolyIsZero(B) {
		panic("kfield: divide by zero polynomial")
	}
	db := len(B) - 1
	if len(A)-1 < db {
		return A
	}
	rem := append(fpoly(nil), A...)
	invLead := modInv(B[db], p)
	for i := len(rem) - 1; i >= db; i-- {
		c := rem[i]
		if c == 0 {
			continue
		}
		c = modMul(c, invLead, p)
		for j := 0; j <= db; j++ {
			rem[i-db+j] = modSub(rem[i-db+j], modMul(c, B[j], p), p)
		}
	}
	if db == 0 {
		return fpoly{0}
	}
	return fpolyTrim(rem[:db], p)
}

func fpolyGCD(a, b fpoly, p uint64) fpoly {
	A := fpolyTrim(a, p)
	B := fpolyTrim(b, p)
	for !fpolyIsZero(B) {
		A, B = B, fpolyRem(A, B, p)
	}
	return A
}

func fpolyPowMod(base fpoly, exp uint64, modulus fpoly, p uint64) fpoly {
	result := fpoly{1}
	b := fpolyRem(base, modulus, p)
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = fpolyRem(fpolyMul(result, b, p), modulus, p)
		}
		if e > 1 {
			b = fpolyRem(fpolyMul(b, b, p), modulus, p)
		}
	}
	return result
}

// isIrreducible implements the Ben-Or/Frobenius irreducibility test over F_p.
func isIrreducible(p uint64, f fpoly) bool {
	f = fpolyTrim(f, p)
	if len(f) <= 1 {
		return false
	}
	n := len(f) - 1
	x := fpoly{0, 1}
	xp := x
	for i := 1; i <= n/2; i++ {
		xp = fpolyPowMod(xp, p, f, p)
		g := fpolyGCD(fpolySub(xp, x, p), f, p)
		if len(g) > 1 {
			return false
		}
	}
	xp = x
	for i := 0; i < n; i++ {
		xp = fpolyPowMod(xp, p, f, p)
	}
	return fpolyIsZero(fpolySub(xp, fpolyRem(x, f, p), p))
}
