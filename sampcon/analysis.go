package sampcon

import (
	"github.com/BurntSushi/sampcon/distmat"
	"github.com/BurntSushi/sampcon/ensemble"
)

// Logger receives progress messages as key/value pairs. The logger of
// github.com/baditaflorin/l satisfies it.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

type quiet struct{}

func (quiet) Debug(string, ...interface{}) {}
func (quiet) Info(string, ...interface{})  {}
func (quiet) Warn(string, ...interface{})  {}

// Analysis is the outcome of Analyze.
type Analysis struct {
	// Thresholds and Results are empty when the clustering threshold was
	// given in the configuration.
	Thresholds []float64
	Results    []ThresholdResult

	// Precision is the selected sampling precision. It is only meaningful
	// when Override is false.
	Precision SamplingPrecision
	Override  bool

	// Partition is the clustering at the final threshold.
	Partition *Partition
}

// Analyze determines the sampling precision of the population and clusters
// it at that precision. If cfg.ClusterThreshold is positive, the precision
// calculation is skipped and the population is clustered at that threshold.
//
// Non-convergence is not an error: the returned Precision has Converged set
// to false and the population is clustered at the largest threshold tried.
//
// log may be nil.
func Analyze(
	d *distmat.Matrix,
	pop *ensemble.Population,
	cfg Config,
	log Logger,
) (*Analysis, error) {
	if log == nil {
		log = quiet{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkPopulation(d, pop); err != nil {
		return nil, err
	}

	a := &Analysis{}
	final := cfg.ClusterThreshold
	if final > 0 {
		a.Override = true
		log.Info("Skipping sampling precision", "threshold", final)
	} else {
		var err error
		a.Thresholds, err = Thresholds(d.Condensed(), cfg.GridSize)
		if err != nil {
			return nil, err
		}
		log.Info("Clustering at each threshold",
			"thresholds", len(a.Thresholds), "models", pop.Len())

		a.Results, err = Sweep(d, pop, a.Thresholds, cfg)
		if err != nil {
			return nil, err
		}
		for _, r := range a.Results {
			log.Debug("Threshold tested", "threshold", r.Threshold,
				"pvalue", r.PValue, "cramersv", r.CramersV,
				"coverage", r.Coverage, "clusters", r.Clusters,
				"retained", r.Retained)
		}

		a.Precision, err = Select(a.Results, cfg)
		if err != nil {
			return nil, err
		}
		if a.Precision.Converged {
			log.Info("Sampling precision", "threshold", a.Precision.Threshold,
				"pvalue", a.Precision.PValue,
				"cramersv", a.Precision.CramersV,
				"coverage", a.Precision.Coverage)
		} else {
			log.Warn("Samples did not converge at any threshold; using "+
				"the largest", "threshold", a.Precision.Threshold)
		}
		final = a.Precision.Threshold
	}

	var err error
	a.Partition, err = NewPartition(d, pop, final, cfg.Retention)
	if err != nil {
		return nil, err
	}
	log.Info("Final clustering", "threshold", final,
		"clusters", a.Partition.Clustering.Len(),
		"retained", len(a.Partition.Retained()))
	return a, nil
}
