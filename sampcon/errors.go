package sampcon

import "errors"

// ErrInvalidInput is wrapped by every error caused by unusable input, such
// as an empty distance matrix, a non-positive grid size or a population that
// does not match the distance matrix.
var ErrInvalidInput = errors.New("sampcon: invalid input")
