// Package scores checks the convergence of the model scores of two samples:
// whether the best score has stopped improving as more models are added, and
// whether both samples' scores come from the same distribution.
package scores

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// TopScore is the distribution of the best (lowest) score over random
// subsets of a fixed size.
type TopScore struct {
	Size   int
	Mean   float64
	StdDev float64
}

// TopScoreConvergence draws repeats random subsets of each of ten
// increasing sizes (tenths of all scores, rounded down, skipping empty
// subsets) and reports the mean and standard
// deviation of the lowest score in each. If sampling has converged, the mean
// levels off and the standard deviation shrinks as the size grows.
func TopScoreConvergence(
	scores []float64,
	repeats int,
	rng *rand.Rand,
) ([]TopScore, error) {
	if len(scores) == 0 {
		return nil, fmt.Errorf("There are no scores.")
	}
	if repeats < 1 {
		return nil, fmt.Errorf("The number of repeats must be positive, "+
			"but got %d.", repeats)
	}

	tops := make([]TopScore, 0, 10)
	best := make([]float64, repeats)
	for tenth := 1; tenth <= 10; tenth++ {
		size := len(scores) * tenth / 10
		if size < 1 {
			continue
		}
		for r := range best {
			best[r] = math.Inf(1)
			for _, i := range rng.Perm(len(scores))[:size] {
				best[r] = math.Min(best[r], scores[i])
			}
		}
		mean, std := stat.MeanStdDev(best, nil)
		if repeats == 1 {
			std = 0
		}
		tops = append(tops, TopScore{Size: size, Mean: mean, StdDev: std})
	}
	return tops, nil
}

// KS is the result of a two-sample Kolmogorov-Smirnov test.
type KS struct {
	D      float64
	PValue float64
}

// KolmogorovSmirnov tests whether two samples of scores are drawn from the
// same distribution. The p-value uses the asymptotic Kolmogorov
// distribution, which is accurate for samples of more than a few dozen.
func KolmogorovSmirnov(a, b []float64) (KS, error) {
	if len(a) == 0 || len(b) == 0 {
		return KS{}, fmt.Errorf("Both samples need scores, but got %d and %d.",
			len(a), len(b))
	}
	x, y := sorted(a), sorted(b)
	// Rounding can push the statistic just outside [0, 1].
	d := math.Min(1, math.Max(0, stat.KolmogorovSmirnov(x, nil, y, nil)))

	ne := float64(len(a)*len(b)) / float64(len(a)+len(b))
	sqrtNe := math.Sqrt(ne)
	return KS{D: d, PValue: kolmogorovQ((sqrtNe + 0.12 + 0.11/sqrtNe) * d)}, nil
}

// kolmogorovQ is the survival function of the Kolmogorov distribution.
func kolmogorovQ(lambda float64) float64 {
	if lambda < 0.2 {
		return 1
	}
	sum, sign := 0.0, 1.0
	for j := 1; j <= 100; j++ {
		term := sign * 2 * math.Exp(-2*float64(j*j)*lambda*lambda)
		sum += term
		if math.Abs(term) < 1e-12 {
			break
		}
		sign = -sign
	}
	return math.Max(0, math.Min(1, sum))
}

// Histograms bins both samples with the same nbins equal width bins spanning
// the range of all scores. The returned dividers have nbins+1 entries.
func Histograms(a, b []float64, nbins int) (dividers, countsA, countsB []float64, err error) {
	if nbins < 1 {
		return nil, nil, nil, fmt.Errorf("The number of bins must be "+
			"positive, but got %d.", nbins)
	}
	all := append(append(make([]float64, 0, len(a)+len(b)), a...), b...)
	if len(all) == 0 {
		return nil, nil, nil, fmt.Errorf("There are no scores.")
	}
	lo, hi := floats.Min(all), floats.Max(all)

	// The last divider is exclusive in stat.Histogram.
	if hi == lo {
		hi = lo + 1
	} else {
		hi = math.Nextafter(hi, math.Inf(1))
	}
	dividers = make([]float64, nbins+1)
	floats.Span(dividers, lo, hi)

	countsA = stat.Histogram(nil, dividers, sorted(a), nil)
	countsB = stat.Histogram(nil, dividers, sorted(b), nil)
	return dividers, countsA, countsB, nil
}

func sorted(xs []float64) []float64 {
	s := make([]float64, len(xs))
	copy(s, xs)
	sort.Float64s(s)
	return s
}
