// Package distmat provides the pairwise structural distance matrix that the
// sampling precision analysis is driven by.
//
// A Matrix is symmetric, non-negative and has a zero diagonal. It can be
// constructed from either a condensed vector (the upper triangle, row by
// row, without the diagonal) or a full square matrix, and is never mutated
// after construction. It is therefore safe to read from many goroutines.
package distmat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix is an immutable N x N distance matrix.
type Matrix struct {
	sym *mat.SymDense

	// condensed is kept alongside the symmetric matrix since both the
	// threshold grid and persistence want the flat view.
	condensed []float64
}

// NewCondensed builds a matrix from its condensed form. The length of d must
// be N(N-1)/2 for some N >= 2. The slice is copied.
func NewCondensed(d []float64) (*Matrix, error) {
	if len(d) == 0 {
		return nil, ErrEmpty
	}
	n := condensedSize(len(d))
	if n < 0 {
		return nil, fmt.Errorf("%w: condensed length %d is not N(N-1)/2",
			ErrMalformed, len(d))
	}
	for k, v := range d {
		if !validDistance(v) {
			return nil, fmt.Errorf("%w: condensed entry %d is %v",
				ErrNegative, k, v)
		}
	}

	m := &Matrix{
		sym:       mat.NewSymDense(n, nil),
		condensed: make([]float64, len(d)),
	}
	copy(m.condensed, d)
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.sym.SetSym(i, j, d[k])
			k++
		}
	}
	return m, nil
}

// NewSquare builds a matrix from a full square matrix given as rows. The
// rows must be symmetric with an exactly zero diagonal.
func NewSquare(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	if n < 2 {
		return nil, ErrEmpty
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has length %d, expected %d",
				ErrMalformed, i, len(row), n)
		}
	}

	d := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		if rows[i][i] != 0 {
			return nil, fmt.Errorf("%w: d[%d][%d] = %v",
				ErrNonZeroDiagonal, i, i, rows[i][i])
		}
		for j := i + 1; j < n; j++ {
			if rows[i][j] != rows[j][i] {
				return nil, fmt.Errorf("%w: d[%d][%d] = %v but d[%d][%d] = %v",
					ErrAsymmetric, i, j, rows[i][j], j, i, rows[j][i])
			}
			d = append(d, rows[i][j])
		}
	}
	return NewCondensed(d)
}

// Len returns N, the number of models covered by the matrix.
func (m *Matrix) Len() int {
	return m.sym.SymmetricDim()
}

// At returns the distance between models i and j.
func (m *Matrix) At(i, j int) float64 {
	return m.sym.At(i, j)
}

// Condensed returns a copy of the upper triangle of the matrix, row by row.
func (m *Matrix) Condensed() []float64 {
	d := make([]float64, len(m.condensed))
	copy(d, m.condensed)
	return d
}

// Range returns the smallest and largest pairwise distance.
func (m *Matrix) Range() (min, max float64) {
	return floats.Min(m.condensed), floats.Max(m.condensed)
}

// Row returns a copy of the distances from model i to every model.
func (m *Matrix) Row(i int) []float64 {
	n := m.Len()
	row := make([]float64, n)
	for j := 0; j < n; j++ {
		row[j] = m.sym.At(i, j)
	}
	return row
}

func (m *Matrix) String() string {
	min, max := m.Range()
	return fmt.Sprintf("distance matrix (%d models, %d pairs, %0.3f-%0.3f)",
		m.Len(), len(m.condensed), min, max)
}

// condensedSize returns N such that N(N-1)/2 == length, or -1 if there is
// no such N.
func condensedSize(length int) int {
	n := int(math.Round((1 + math.Sqrt(1+8*float64(length))) / 2))
	if n*(n-1)/2 != length {
		return -1
	}
	return n
}

func validDistance(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
