package sampcon

import (
	"fmt"
	"math"
)

// DefaultConfig holds the settings of the published analysis protocol.
// For example:
//
//	analysis, err := sampcon.Analyze(dists, pop, sampcon.DefaultConfig, nil)
var DefaultConfig = Config{
	GridSize:        10.0,
	Retention:       RetentionPolicy{MinCount: 10},
	CoverageFloor:   0.80,
	PValueFloor:     0.05,
	CramersVCeiling: 0.10,
	ExactBelow:      5,
	Yates:           true,
	Workers:         0,
	Align:           false,
}

// Config controls the threshold grid, the statistical acceptance criteria
// and the final clustering.
type Config struct {
	// GridSize is the spacing between consecutive candidate thresholds, in
	// the units of the distance matrix (usually Angstroms).
	GridSize float64

	// Retention decides which clusters are populated enough to enter the
	// contingency table.
	Retention RetentionPolicy

	// A threshold is accepted only if at least CoverageFloor of all models
	// are in retained clusters, the p-value is at least PValueFloor and
	// Cramer's V is at most CramersVCeiling.
	CoverageFloor   float64
	PValueFloor     float64
	CramersVCeiling float64

	// ExactBelow switches a 2x2 table to Fisher's exact test when its
	// smallest expected count is below this value. Zero disables it.
	ExactBelow float64

	// Yates applies Yates' continuity correction to the chi-square
	// statistic of 2x2 tables.
	Yates bool

	// Workers is the number of goroutines used to evaluate thresholds and
	// superpose models. Values less than 1 mean runtime.GOMAXPROCS(0).
	Workers int

	// Align enables optimal superposition when computing cluster precision.
	Align bool

	// ClusterThreshold, when positive, skips the sampling precision
	// calculation and clusters at this threshold instead.
	ClusterThreshold float64
}

// Validate returns an error wrapping ErrInvalidInput if any setting is out
// of range.
func (c Config) Validate() error {
	switch {
	case c.ClusterThreshold <= 0 && !positive(c.GridSize):
		return fmt.Errorf("%w: grid size must be positive, got %v",
			ErrInvalidInput, c.GridSize)
	case c.ClusterThreshold < 0 || math.IsNaN(c.ClusterThreshold):
		return fmt.Errorf("%w: cluster threshold must not be negative, got %v",
			ErrInvalidInput, c.ClusterThreshold)
	case !unit(c.CoverageFloor):
		return fmt.Errorf("%w: coverage floor must be in [0, 1], got %v",
			ErrInvalidInput, c.CoverageFloor)
	case !unit(c.PValueFloor):
		return fmt.Errorf("%w: p-value floor must be in [0, 1], got %v",
			ErrInvalidInput, c.PValueFloor)
	case !unit(c.CramersVCeiling):
		return fmt.Errorf("%w: Cramer's V ceiling must be in [0, 1], got %v",
			ErrInvalidInput, c.CramersVCeiling)
	case c.ExactBelow < 0 || math.IsNaN(c.ExactBelow):
		return fmt.Errorf("%w: exact test cutoff must not be negative, got %v",
			ErrInvalidInput, c.ExactBelow)
	}
	return c.Retention.Validate()
}

// RetentionPolicy is the minimum population of a cluster for it to count
// in the contingency table. The minimum is the larger of MinCount and
// MinFraction of all models (rounded up).
//
// By default the minimum applies to a cluster's total population. With
// PerSample set, it applies to the number of models from each sample
// separately. The published protocol kept clusters with more than 10
// models from each sample, which is MinCount 11 with PerSample.
type RetentionPolicy struct {
	MinCount    int
	MinFraction float64
	PerSample   bool
}

// Validate returns an error wrapping ErrInvalidInput if the policy is out
// of range.
func (p RetentionPolicy) Validate() error {
	if p.MinCount < 0 {
		return fmt.Errorf("%w: minimum cluster size must not be negative, "+
			"got %d", ErrInvalidInput, p.MinCount)
	}
	if !unit(p.MinFraction) {
		return fmt.Errorf("%w: minimum cluster fraction must be in [0, 1], "+
			"got %v", ErrInvalidInput, p.MinFraction)
	}
	return nil
}

// Minimum returns the smallest population a cluster (or each sample of a
// cluster, with PerSample) may have in a population of n models.
func (p RetentionPolicy) Minimum(n int) int {
	min := p.MinCount
	if byFrac := int(math.Ceil(p.MinFraction * float64(n))); byFrac > min {
		min = byFrac
	}
	return min
}

// Retains reports whether a cluster with a models from sample A and b models
// from sample B is kept in a population of n models.
func (p RetentionPolicy) Retains(a, b, n int) bool {
	min := p.Minimum(n)
	if p.PerSample {
		return a >= min && b >= min
	}
	return a+b >= min
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}

func unit(x float64) bool {
	return x >= 0 && x <= 1
}
