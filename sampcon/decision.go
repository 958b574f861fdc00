package sampcon

import (
	"fmt"
	"sort"
)

// SamplingPrecision is the threshold chosen by Select, together with the
// statistics observed at that threshold.
//
// When Converged is false, no threshold met the acceptance criteria and the
// result describes the largest threshold of the grid instead. Callers should
// treat it as a best effort.
type SamplingPrecision struct {
	Threshold float64
	PValue    float64
	CramersV  float64
	Coverage  float64
	Converged bool
}

func (sp SamplingPrecision) String() string {
	conv := "converged"
	if !sp.Converged {
		conv = "NOT converged"
	}
	return fmt.Sprintf("sampling precision %0.3f (p = %0.4f, V = %0.4f, "+
		"coverage = %0.2f%%, %s)",
		sp.Threshold, sp.PValue, sp.CramersV, 100*sp.Coverage, conv)
}

// Accepts reports whether a single threshold result meets all three of the
// configured criteria.
func (c Config) Accepts(r ThresholdResult) bool {
	return r.Coverage >= c.CoverageFloor &&
		r.PValue >= c.PValueFloor &&
		r.CramersV <= c.CramersVCeiling
}

// Select picks the sampling precision from results ordered by ascending
// threshold.
//
// The chosen threshold is the smallest accepted one that is not followed by
// a rejected threshold. Thresholds whose coverage is below the floor are
// ignored for this purpose: they neither qualify nor disqualify. So if the
// samples agree at 4, disagree at 5 with good coverage and agree again from
// 6 on, the precision is 6.
//
// If there is no such threshold, the last result is returned with Converged
// set to false.
func Select(results []ThresholdResult, cfg Config) (SamplingPrecision, error) {
	if len(results) == 0 {
		return SamplingPrecision{}, fmt.Errorf("%w: no thresholds to select "+
			"from", ErrInvalidInput)
	}
	ascending := sort.SliceIsSorted(results, func(i, j int) bool {
		return results[i].Threshold < results[j].Threshold
	})
	if !ascending {
		return SamplingPrecision{}, fmt.Errorf("%w: thresholds are not in "+
			"ascending order", ErrInvalidInput)
	}

	chosen := -1
	for i, r := range results {
		if r.Coverage < cfg.CoverageFloor {
			continue
		}
		if cfg.Accepts(r) {
			if chosen == -1 {
				chosen = i
			}
		} else {
			chosen = -1
		}
	}

	if chosen == -1 {
		return precisionOf(results[len(results)-1], false), nil
	}
	return precisionOf(results[chosen], true), nil
}

func precisionOf(r ThresholdResult, converged bool) SamplingPrecision {
	return SamplingPrecision{
		Threshold: r.Threshold,
		PValue:    r.PValue,
		CramersV:  r.CramersV,
		Coverage:  r.Coverage,
		Converged: converged,
	}
}
