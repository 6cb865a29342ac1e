package kfield

import "math/big"

// Frobenius returns e^(p^j). j may be any integer; it is reduced modulo theta since
// Frob^theta is the identity on K.
func (f *Field) Frobenius(e Elem, j int) Elem {
	j %= f.Theta
	if j < 0 {
		j += f.Theta
	}
	if j == 0 {
		return f.Normalize(e)
	}
	return f.applyColumns(f.frobTables()[j], e)
}

// FrobeniusMatrix returns a copy of the F_p-matrix of e -> e^(p^j).
func (f *Field) FrobeniusMatrix(j int) [][]uint64 {
	j %= f.Theta
	if j < 0 {
		j += f.Theta
	}
	src := f.frobTables()[j]
	out := make([][]uint64, len(src))
	for i := range src {
		out[i] = append([]uint64(nil), src[i]...)
	}
	return out
}

// frobTables builds, once per field, the matrices of Frob^j for j in [0, theta).
// Column i of table j holds the coordinates of (t^i)^(p^j).
func (f *Field) frobTables() [][][]uint64 {
	f.frobOnce.Do(func() {
		n := f.Theta
		tables := make([][][]uint64, n)
		images := make([]Elem, n)
		for i := 0; i < n; i++ {
			basis := f.Zero()
			basis.Limb[i] = 1
			images[i] = basis
		}
		tables[0] = columns(images)
		if n == 1 {
			f.frob = tables
			return
		}
		// Frob is F_p-linear: (t^i)^p = (t^p)^i.
		tp := f.Pow(f.Gen(), new(big.Int).SetUint64(f.P))
		step := make([]Elem, n)
		step[0] = f.One()
		for i := 1; i < n; i++ {
			step[i] = f.Mul(step[i-1], tp)
		}
		tables[1] = columns(step)
		for j := 2; j < n; j++ {
			next := make([]Elem, n)
			for i := range images {
				next[i] = f.applyColumns(tables[1], column(tables[j-1], i, n))
			}
			tables[j] = columns(next)
		}
		f.frob = tables
	})
	return f.frob
}

func columns(images []Elem) [][]uint64 {
	n := len(images)
	M := make([][]uint64, n)
	for row := 0; row < n; row++ {
		M[row] = make([]uint64, n)
		for col := 0; col < n; col++ {
			M[row][col] = images[col].Limb[row]
		}
	}
	return M
}

func column(M [][]uint64, col, n int) Elem {
	e := Elem{Limb: make([]uint64, n)}
	for row := 0; row < n; row++ {
		e.Limb[row] = M[row][col]
	}
	return e
}

func (f *Field) applyColumns(M [][]uint64, e Elem) Elem {
	out := f.Zero()
	for col := 0; col < f.Theta; col++ {
		c := e.Limb[col] % f.P
		if c == 0 {
			continue
		}
		for row := 0; row < f.Theta; row++ {
			out.Limb[row] = modAdd(out.Limb[row], modMul(c, M[row][col], f.P), f.P)
		}
	}
	return out
}
