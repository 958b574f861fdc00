package distmat

import "errors"

// Every error returned while constructing a Matrix wraps one of these, so
// callers can match with errors.Is.
var (
	// ErrEmpty is returned when there are no pairwise distances at all.
	ErrEmpty = errors.New("distmat: empty distance matrix")

	// ErrMalformed is returned when the input does not have the shape of a
	// distance matrix, e.g., a condensed vector whose length is not a
	// triangular number or a square matrix with ragged rows.
	ErrMalformed = errors.New("distmat: malformed distance matrix")

	// ErrAsymmetric is returned when d[i][j] != d[j][i].
	ErrAsymmetric = errors.New("distmat: distance matrix is not symmetric")

	// ErrNonZeroDiagonal is returned when d[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("distmat: diagonal is not zero")

	// ErrNegative is returned for negative, NaN or infinite distances.
	ErrNegative = errors.New("distmat: distance is negative or not finite")
)
