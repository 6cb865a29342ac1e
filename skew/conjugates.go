package skew

import "skewff/internal/kfield"

// conjugate returns the coefficient vector of p with σ^k applied to every entry, for
// 0 <= k < Order(). The table is extended on demand and rebuilt after any in-place update.
// Returned slices are read-only.
func (p *Poly) conjugate(k int) []kfield.Elem {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conj == nil || p.conjEpoch != p.epoch {
		p.conj = [][]kfield.Elem{p.coeffs}
		p.conjEpoch = p.epoch
	}
	for len(p.conj) <= k {
		last := p.conj[len(p.conj)-1]
		next := make([]kfield.Elem, len(last))
		for i, c := range last {
			next[i] = p.ring.Twist(c, 1)
		}
		p.conj = append(p.conj, next)
	}
	return p.conj[k]
}

// conjugateCount reports how many conjugates are cached for the current epoch.
func (p *Poly) conjugateCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conjEpoch != p.epoch {
		return 0
	}
	return len(p.conj)
}

// resetConjugates restarts the table at [coeffs].
func (p *Poly) resetConjugates() {
	p.mu.Lock()
	p.conj = [][]kfield.Elem{p.coeffs}
	p.conjEpoch = p.epoch
	p.mu.Unlock()
}
