package sampcon

import (
	"fmt"
	"math"
)

// MaxThresholds is the largest number of thresholds a grid may have.
const MaxThresholds = 1000000

// Thresholds returns the ascending grid of candidate clustering thresholds
// for a condensed distance matrix: min, min+step, min+2*step, ... up to and
// including the first value that is at least the largest distance. There is
// always at least one threshold. A step so small that the grid would have
// more than MaxThresholds points is invalid.
func Thresholds(condensed []float64, step float64) ([]float64, error) {
	if len(condensed) == 0 {
		return nil, fmt.Errorf("%w: no distances", ErrInvalidInput)
	}
	if !positive(step) {
		return nil, fmt.Errorf("%w: grid size must be positive, got %v",
			ErrInvalidInput, step)
	}

	min, max := math.Inf(1), math.Inf(-1)
	for i, d := range condensed {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, fmt.Errorf("%w: distance %d is %v",
				ErrInvalidInput, i, d)
		}
		min, max = math.Min(min, d), math.Max(max, d)
	}

	count := math.Floor((max - min) / step)
	if math.IsNaN(count) || math.IsInf(count, 0) || count+1 > MaxThresholds {
		return nil, fmt.Errorf("%w: grid size %v over [%v, %v] gives more "+
			"than %d thresholds", ErrInvalidInput, step, min, max,
			MaxThresholds)
	}

	cutoffs := make([]float64, 0, int(count)+2)
	for k := 0; ; k++ {
		// Multiplying instead of accumulating keeps every grid point exact
		// up to a single rounding.
		t := min + float64(k)*step
		cutoffs = append(cutoffs, t)
		if t >= max {
			break
		}
	}
	return cutoffs, nil
}
