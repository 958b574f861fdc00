package rmsd

import (
	"fmt"
	"math"

	matrix "github.com/skelterjohn/go.matrix"
)

// Coords is a single point in three dimensional space.
type Coords [3]float64

// Superposition is the result of fitting a mobile structure onto a target.
//
// Rotation and Translation describe the rigid transformation that maps the
// mobile coordinates into the frame of the target: x' = Rotation*x +
// Translation. When alignment is disabled, Rotation is the identity,
// Translation is zero and Coords is a copy of the mobile coordinates.
type Superposition struct {
	RMSD        float64
	Rotation    [9]float64
	Translation Coords
	Coords      []Coords
}

// RMSD returns the root-mean-square deviation between two structures. If
// align is true, the structures are optimally superposed first.
//
// See Superpose for the meaning of masses.
func RMSD(mobile, target []Coords, masses []float64, align bool) float64 {
	return Superpose(mobile, target, masses, align).RMSD
}

// Superpose fits mobile onto target and reports the resulting RMSD along
// with the transformed mobile coordinates.
//
// masses weights each point in both the fit and the deviation. It may be nil,
// in which case every point is weighted equally.
//
// A brief, high-level overview of the fit:
//
// Subtract the weighted centroid from each set of coordinates.
//
// Compute the weighted covariance matrix C = X(W)(Y^T).
//
// Compute the SVD of C = US(V^T).
//
// Compute d = sign(det(V(U^T))).
//
// The optimal rotation is R = V([1 0 0] [0 1 0] [0 0 d])(U^T).
//
// Note that Superpose will panic if the lengths of mobile and target differ,
// or if masses is non-nil and has a different length.
func Superpose(
	mobile, target []Coords,
	masses []float64,
	align bool,
) Superposition {
	if len(mobile) != len(target) {
		panic(fmt.Sprintf("Computing the RMSD of two structures require that "+
			"they have equal length. But the lengths of the two structures "+
			"provided are %d and %d.", len(mobile), len(target)))
	}
	if masses != nil && len(masses) != len(mobile) {
		panic(fmt.Sprintf("There are %d masses for structures of length %d.",
			len(masses), len(mobile)))
	}

	sup := Superposition{
		Rotation: identity3,
		Coords:   make([]Coords, len(mobile)),
	}
	if !align {
		copy(sup.Coords, mobile)
		sup.RMSD = deviation(sup.Coords, target, masses)
		return sup
	}

	cm := weightedCentroid(mobile, masses)
	ct := weightedCentroid(target, masses)
	X := make([]Coords, len(mobile))
	Y := make([]Coords, len(target))
	for i := range mobile {
		X[i] = Coords{
			mobile[i][0] - cm[0], mobile[i][1] - cm[1], mobile[i][2] - cm[2],
		}
		Y[i] = Coords{
			target[i][0] - ct[0], target[i][1] - ct[1], target[i][2] - ct[2],
		}
	}

	R := rotation(covariant_3x3(X, Y, masses))
	for i, x := range X {
		rx := R.apply(x)
		sup.Coords[i] = Coords{rx[0] + ct[0], rx[1] + ct[1], rx[2] + ct[2]}
	}

	// x' = R(x - cm) + ct = Rx + (ct - R*cm)
	rcm := R.apply(cm)
	sup.Rotation = R
	sup.Translation = Coords{ct[0] - rcm[0], ct[1] - rcm[1], ct[2] - rcm[2]}
	sup.RMSD = deviation(sup.Coords, target, masses)
	return sup
}

// rotation computes the optimal rotation from the covariance matrix of two
// centered point sets. If the SVD cannot be computed or is not finite (as can
// happen for degenerate input), the identity is returned.
func rotation(C matrix3) matrix3 {
	U, _, V, err := matrix.MakeDenseMatrix(C[:], 3, 3).SVD()
	if err != nil {
		return identity3
	}

	var u, v matrix3
	copy(u[:], U.Array())
	copy(v[:], V.Array())
	ut := u.transpose()

	// If the determinant is negative, then V(U^T) is an "improper rotation"
	// (a reflection). Flipping the sign of the last column of V makes the
	// rotation "proper".
	if v.mult(ut).det() < 0 {
		v[2], v[5], v[8] = -v[2], -v[5], -v[8]
	}
	R := v.mult(ut)
	for _, x := range R {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return identity3
		}
	}
	return R
}

// deviation computes the weighted RMSD between two sets of coordinates
// without moving either of them.
func deviation(a, b []Coords, masses []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	var sum, total, dist float64
	for i := range a {
		w := weight(masses, i)
		for k := 0; k < 3; k++ {
			dist = a[i][k] - b[i][k]
			sum += w * dist * dist
		}
		total += w
	}
	if total == 0 {
		return 0
	}
	return math.Sqrt(sum / total)
}
