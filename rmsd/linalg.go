package rmsd

// Represents a 3x3 matrix, in row-major order
// | 0 1 2 |
// | 3 4 5 |
// | 6 7 8 |
type matrix3 [9]float64

var identity3 = matrix3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

func (a matrix3) mult(b matrix3) matrix3 {
	return matrix3{
		a[0]*b[0] + a[1]*b[3] + a[2]*b[6],
		a[0]*b[1] + a[1]*b[4] + a[2]*b[7],
		a[0]*b[2] + a[1]*b[5] + a[2]*b[8],

		a[3]*b[0] + a[4]*b[3] + a[5]*b[6],
		a[3]*b[1] + a[4]*b[4] + a[5]*b[7],
		a[3]*b[2] + a[4]*b[5] + a[5]*b[8],

		a[6]*b[0] + a[7]*b[3] + a[8]*b[6],
		a[6]*b[1] + a[7]*b[4] + a[8]*b[7],
		a[6]*b[2] + a[7]*b[5] + a[8]*b[8],
	}
}

func (a matrix3) transpose() matrix3 {
	return matrix3{
		a[0], a[3], a[6],
		a[1], a[4], a[7],
		a[2], a[5], a[8],
	}
}

func (a matrix3) det() float64 {
	// 048 + 156 + 237 - 246 - 138 - 057
	return a[0]*a[4]*a[8] +
		a[1]*a[5]*a[6] +
		a[2]*a[3]*a[7] -
		a[2]*a[4]*a[6] -
		a[1]*a[3]*a[8] -
		a[0]*a[5]*a[7]
}

// apply rotates a single point.
func (a matrix3) apply(c Coords) Coords {
	return Coords{
		a[0]*c[0] + a[1]*c[1] + a[2]*c[2],
		a[3]*c[0] + a[4]*c[1] + a[5]*c[2],
		a[6]*c[0] + a[7]*c[1] + a[8]*c[2],
	}
}

// weightedCentroid returns the center of mass of a set of points. A nil
// weight slice gives every point the same weight.
func weightedCentroid(cs []Coords, weights []float64) Coords {
	var center Coords
	var total float64
	for i, c := range cs {
		w := weight(weights, i)
		center[0] += w * c[0]
		center[1] += w * c[1]
		center[2] += w * c[2]
		total += w
	}
	if total == 0 {
		return center
	}
	return Coords{center[0] / total, center[1] / total, center[2] / total}
}

// covariant_3x3 computes C = X(W)(Y^T) where X and Y are 3xN matrices of
// centered coordinates and W is the diagonal matrix of weights.
func covariant_3x3(x, y []Coords, weights []float64) matrix3 {
	var C matrix3
	for i := range x {
		w := weight(weights, i)
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				C[r*3+c] += w * x[i][r] * y[i][c]
			}
		}
	}
	return C
}

func weight(weights []float64, i int) float64 {
	if weights == nil {
		return 1
	}
	return weights[i]
}
