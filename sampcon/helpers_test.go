package sampcon

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BurntSushi/sampcon/distmat"
)

// lineMatrix returns the distance matrix of points on a line.
func lineMatrix(t *testing.T, xs ...float64) *distmat.Matrix {
	d := make([]float64, 0, len(xs)*(len(xs)-1)/2)
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			d = append(d, math.Abs(xs[i]-xs[j]))
		}
	}
	m, err := distmat.NewCondensed(d)
	require.NoError(t, err)
	return m
}

// randomMatrix returns a symmetric, zero diagonal matrix of n models with
// distances in [0, 10).
func randomMatrix(t *testing.T, rng *rand.Rand, n int) *distmat.Matrix {
	d := make([]float64, n*(n-1)/2)
	for i := range d {
		d[i] = rng.Float64() * 10
	}
	m, err := distmat.NewCondensed(d)
	require.NoError(t, err)
	return m
}

// separated returns positions for n models of sample A spread over [0, 1.9]
// followed by n models of sample B spread over [100, 101.9].
func separated(n int) []float64 {
	xs := make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		xs = append(xs, 0.1*float64(i%20))
	}
	for i := 0; i < n; i++ {
		xs = append(xs, 100+0.1*float64(i%20))
	}
	return xs
}
