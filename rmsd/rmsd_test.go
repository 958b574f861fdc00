package rmsd

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	matrix "github.com/skelterjohn/go.matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-6

func ExampleRMSD() {
	tests := [][2][]Coords{
		{
			{
				atom(-2.803, -15.373, 24.556),
				atom(0.893, -16.062, 25.147),
				atom(1.368, -12.371, 25.885),
				atom(-1.651, -12.153, 28.177),
				atom(-0.440, -15.218, 30.068),
				atom(2.551, -13.273, 31.372),
				atom(0.105, -11.330, 33.567),
			},
			{
				atom(-14.739, -18.673, 15.040),
				atom(-12.473, -15.810, 16.074),
				atom(-14.802, -13.307, 14.408),
				atom(-17.782, -14.852, 16.171),
				atom(-16.124, -14.617, 19.584),
				atom(-15.029, -11.037, 18.902),
				atom(-18.577, -10.001, 17.996),
			},
		},
	}
	for _, test := range tests {
		fmt.Printf("RMSD: %f\n", RMSD(test[0], test[1], nil, true))
	}
	// Output:
	// RMSD: 0.719106
}

func TestSuperposeRecoversRigidMotion(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		target := randomAtoms(rng, 11)
		R := randomRotation(rng)
		shift := randomAtom(rng)

		mobile := make([]Coords, len(target))
		for i, c := range target {
			rc := R.apply(c)
			mobile[i] = Coords{rc[0] + shift[0], rc[1] + shift[1], rc[2] + shift[2]}
		}

		sup := Superpose(mobile, target, nil, true)
		require.InDelta(t, 0, sup.RMSD, 1e-6, "trial %d", trial)
		for i := range target {
			for k := 0; k < 3; k++ {
				require.InDelta(t, target[i][k], sup.Coords[i][k], 1e-6)
			}
		}

		// The reported transformation maps the input onto the output.
		rot := matrix3(sup.Rotation)
		for i, c := range mobile {
			moved := rot.apply(c)
			for k := 0; k < 3; k++ {
				require.InDelta(t,
					sup.Coords[i][k], moved[k]+sup.Translation[k], 1e-6)
			}
		}
	}
}

func TestSuperposeRotationIsProper(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 200; trial++ {
		sup := Superpose(randomAtoms(rng, 9), randomAtoms(rng, 9), nil, true)
		assert.InDelta(t, 1, matrix3(sup.Rotation).det(), 1e-6)
	}
}

func TestMirrorImageIsNotSuperposable(t *testing.T) {
	target := []Coords{
		atom(0, 0, 0), atom(1, 0, 0), atom(0, 1, 0), atom(0, 0, 1),
	}
	mirror := make([]Coords, len(target))
	for i, c := range target {
		mirror[i] = Coords{c[0], c[1], -c[2]}
	}
	assert.Greater(t, RMSD(mirror, target, nil, true), 0.1)
}

func TestNoAlignUsesRawCoordinates(t *testing.T) {
	target := []Coords{atom(0, 0, 0), atom(1, 2, 3), atom(-4, 5, 6)}
	shifted := make([]Coords, len(target))
	for i, c := range target {
		shifted[i] = Coords{c[0] + 3, c[1], c[2]}
	}

	sup := Superpose(shifted, target, nil, false)
	assert.InDelta(t, 3, sup.RMSD, eps)
	assert.Equal(t, shifted, sup.Coords)
	assert.Equal(t, [9]float64(identity3), sup.Rotation)

	assert.InDelta(t, 0, RMSD(shifted, target, nil, true), eps)
}

func TestMassWeighting(t *testing.T) {
	target := []Coords{atom(0, 0, 0), atom(0, 0, 0)}
	mobile := []Coords{atom(0, 0, 0), atom(2, 0, 0)}

	// Unit weights: sqrt((0 + 4) / 2).
	assert.InDelta(t, math.Sqrt(2), RMSD(mobile, target, nil, false), eps)
	assert.InDelta(t, math.Sqrt(2),
		RMSD(mobile, target, []float64{3, 3}, false), eps)

	// The heavy atom dominates: sqrt((0*3 + 4*1) / 4).
	assert.InDelta(t, 1, RMSD(mobile, target, []float64{3, 1}, false), eps)
}

func TestIdenticalPointsDoNotFail(t *testing.T) {
	same := []Coords{atom(1, 1, 1), atom(1, 1, 1), atom(1, 1, 1)}
	assert.InDelta(t, 0, RMSD(same, same, nil, true), eps)
}

func TestLengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		RMSD([]Coords{atom(0, 0, 0)}, nil, nil, true)
	})
	assert.Panics(t, func() {
		RMSD([]Coords{atom(0, 0, 0)}, []Coords{atom(0, 0, 0)},
			[]float64{1, 2}, true)
	})
}

func TestCovariant(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	cols := 11
	for trial := 0; trial < 1000; trial++ {
		x, y := randomAtoms(rng, cols), randomAtoms(rng, cols)
		weights := make([]float64, cols)
		for i := range weights {
			weights[i] = rng.Float64() * 10
		}
		tC := covariant_3x3(x, y, weights)

		// Now compute the "correct" covariant with go.matrix.
		X := matrix.Zeros(3, cols)
		Y := matrix.Zeros(3, cols)
		W := matrix.Zeros(cols, cols)
		for i := 0; i < cols; i++ {
			for k := 0; k < 3; k++ {
				X.Set(k, i, x[i][k])
				Y.Set(k, i, y[i][k])
			}
			W.Set(i, i, weights[i])
		}
		XW, err := X.TimesDense(W)
		require.NoError(t, err)
		aC, err := XW.TimesDense(Y.Transpose())
		require.NoError(t, err)

		for i, v := range aC.Array() {
			require.InEpsilon(t, v, tC[i], 1e-9,
				"The covariant of\n%v\nand\n%v\nis\n%v\nbut we said\n%v\n",
				x, y, aC, tC)
		}
	}
}

func TestDeterminant(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for trial := 0; trial < 1000; trial++ {
		var m matrix3
		for i := range m {
			m[i] = rng.Float64()*20 - 10
		}
		want := matrix.MakeDenseMatrix(m[:], 3, 3).Det()
		assert.InDelta(t, want, m.det(), 1e-9)
	}
}

func BenchmarkSuperpose(b *testing.B) {
	rng := rand.New(rand.NewSource(5))
	atoms1 := randomAtoms(rng, 50)
	atoms2 := randomAtoms(rng, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Superpose(atoms1, atoms2, nil, true)
	}
}

func BenchmarkNoAlign(b *testing.B) {
	rng := rand.New(rand.NewSource(6))
	atoms1 := randomAtoms(rng, 50)
	atoms2 := randomAtoms(rng, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Superpose(atoms1, atoms2, nil, false)
	}
}

// randomRotation builds a proper rotation from a random unit quaternion.
func randomRotation(rng *rand.Rand) matrix3 {
	q := [4]float64{rng.NormFloat64(), rng.NormFloat64(),
		rng.NormFloat64(), rng.NormFloat64()}
	n := math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	w, x, y, z := q[0]/n, q[1]/n, q[2]/n, q[3]/n
	return matrix3{
		1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w),
		2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w),
		2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y),
	}
}

func randomAtoms(rng *rand.Rand, cnt int) []Coords {
	atoms := make([]Coords, cnt)
	for i := 0; i < cnt; i++ {
		atoms[i] = randomAtom(rng)
	}
	return atoms
}

func randomAtom(rng *rand.Rand) Coords {
	return atom(
		rng.Float64()*100-50,
		rng.Float64()*100-50,
		rng.Float64()*100-50)
}

func atom(x, y, z float64) Coords {
	return Coords{x, y, z}
}
