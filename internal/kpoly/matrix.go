package kpoly

import "fmt"

// Matrix is a dense rows×cols matrix over K[Z].
type Matrix struct {
	Rows, Cols int
	Entries    [][]Poly
}

// ZeroMatrix returns the rows×cols zero matrix.
func (r *Ring) ZeroMatrix(rows, cols int) *Matrix {
	e := make([][]Poly, rows)
	for i := range e {
		e[i] = make([]Poly, cols)
		for j := range e[i] {
			e[i][j] = Poly{}
		}
	}
	return &Matrix{Rows: rows, Cols: cols, Entries: e}
}

// At returns entry (i, j).
func (m *Matrix) At(i, j int) Poly {
	return m.Entries[i][j]
}

// Set stores p at (i, j).
func (m *Matrix) Set(i, j int, p Poly) {
	m.Entries[i][j] = p
}

// Det computes the determinant of a square matrix with the fraction-free Bareiss
// elimination. Every division performed is exact in K[Z].
func (r *Ring) Det(m *Matrix) (Poly, error) {
	if m.Rows != m.Cols {
		return nil, fmt.Errorf("kpoly: determinant of a %dx%d matrix", m.Rows, m.Cols)
	}
	n := m.Rows
	if n == 0 {
		return r.One(), nil
	}
	a := make([][]Poly, n)
	for i := range a {
		a[i] = make([]Poly, n)
		for j := range a[i] {
			a[i][j] = r.Trim(m.Entries[i][j])
		}
	}
	negate := false
	prev := r.One()
	for k := 0; k < n-1; k++ {
		if len(a[k][k]) == 0 {
			pivot := -1
			for i := k + 1; i < n; i++ {
				if len(a[i][k]) != 0 {
					pivot = i
					break
				}
			}
			if pivot < 0 {
				return Poly{}, nil
			}
			a[k], a[pivot] = a[pivot], a[k]
			negate = !negate
		}
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				num := r.Sub(r.Mul(a[i][j], a[k][k]), r.Mul(a[i][k], a[k][j]))
				q, rem, err := r.DivMod(num, prev)
				if err != nil {
					return nil, err
				}
				if len(rem) != 0 {
					return nil, fmt.Errorf("kpoly: inexact Bareiss step at (%d,%d)", i, j)
				}
				a[i][j] = q
			}
			a[i][k] = Poly{}
		}
		prev = a[k][k]
	}
	det := a[n-1][n-1]
	if negate {
		det = r.Neg(det)
	}
	return det, nil
}
