package distmat

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BurntSushi/sampcon/rmsd"
)

func TestNewCondensed(t *testing.T) {
	// 4 models: (0,1) (0,2) (0,3) (1,2) (1,3) (2,3)
	d := []float64{1, 2, 3, 4, 5, 6}
	m, err := NewCondensed(d)
	require.NoError(t, err)

	assert.Equal(t, 4, m.Len())
	assert.Equal(t, 0.0, m.At(2, 2))
	assert.Equal(t, 1.0, m.At(0, 1))
	assert.Equal(t, 1.0, m.At(1, 0))
	assert.Equal(t, 5.0, m.At(3, 1))
	assert.Equal(t, 6.0, m.At(2, 3))
	assert.Equal(t, []float64{3, 5, 6, 0}, m.Row(3))
	assert.Equal(t, d, m.Condensed())

	min, max := m.Range()
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 6.0, max)

	// The input is copied, and so is the output.
	d[0] = 100
	m.Condensed()[1] = 100
	assert.Equal(t, 1.0, m.At(0, 1))
	assert.Equal(t, 2.0, m.At(0, 2))
}

func TestNewCondensedErrors(t *testing.T) {
	tests := []struct {
		name string
		d    []float64
		want error
	}{
		{"nil", nil, ErrEmpty},
		{"not triangular", []float64{1, 2}, ErrMalformed},
		{"negative", []float64{1, -2, 3}, ErrNegative},
		{"nan", []float64{math.NaN()}, ErrNegative},
		{"inf", []float64{math.Inf(1)}, ErrNegative},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewCondensed(test.d)
			assert.ErrorIs(t, err, test.want)
		})
	}
}

func TestNewSquare(t *testing.T) {
	rows := [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	}
	m, err := NewSquare(rows)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, m.Condensed())
	for i := range rows {
		for j := range rows {
			assert.Equal(t, rows[i][j], m.At(i, j))
		}
	}
}

func TestNewSquareErrors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"single", [][]float64{{0}}, ErrEmpty},
		{"ragged", [][]float64{{0, 1}, {1}}, ErrMalformed},
		{"diagonal", [][]float64{{0, 1}, {1, 0.5}}, ErrNonZeroDiagonal},
		{"asymmetric", [][]float64{{0, 1}, {2, 0}}, ErrAsymmetric},
		{"negative", [][]float64{{0, -1}, {-1, 0}}, ErrNegative},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewSquare(test.rows)
			assert.ErrorIs(t, err, test.want)
		})
	}
}

func TestCondensedIndex(t *testing.T) {
	n := 7
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			assert.Equal(t, k, condensedIndex(n, i, j))
			k++
		}
	}
}

func TestSaveOpen(t *testing.T) {
	m, err := NewCondensed([]float64{0.5, 1.5, 2.5})
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	require.NoError(t, m.Save(buf))
	loaded, err := Open(buf)
	require.NoError(t, err)
	assert.Equal(t, m.Condensed(), loaded.Condensed())
}

func TestReadCondensed(t *testing.T) {
	m, err := ReadCondensed(strings.NewReader("1.0 2.0\n3.0\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())

	_, err = ReadCondensed(strings.NewReader("1.0 abc 3.0"))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = ReadCondensed(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestBuild(t *testing.T) {
	base := []rmsd.Coords{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	models := make([][]rmsd.Coords, 6)
	for i := range models {
		models[i] = make([]rmsd.Coords, len(base))
		for k, c := range base {
			models[i][k] = rmsd.Coords{c[0] + float64(i), c[1], c[2]}
		}
	}

	rows := 0
	b := Builder{Workers: 3, Progress: func(int) { rows++ }}
	m, err := b.Build(models)
	require.NoError(t, err)
	assert.Equal(t, 5, rows)
	for i := range models {
		for j := range models {
			assert.InDelta(t, math.Abs(float64(i-j)), m.At(i, j), 1e-9)
		}
	}

	// Translations vanish under superposition.
	b.Align = true
	m, err = b.Build(models)
	require.NoError(t, err)
	_, max := m.Range()
	assert.InDelta(t, 0, max, 1e-9)
}

func TestBuildErrors(t *testing.T) {
	_, err := Builder{}.Build([][]rmsd.Coords{{{0, 0, 0}}})
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Builder{}.Build([][]rmsd.Coords{{{0, 0, 0}}, {}})
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Builder{Masses: []float64{1, 2}}.Build(
		[][]rmsd.Coords{{{0, 0, 0}}, {{1, 1, 1}}})
	assert.ErrorIs(t, err, ErrMalformed)
}
