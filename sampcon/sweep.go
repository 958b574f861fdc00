package sampcon

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/BurntSushi/sampcon/distmat"
	"github.com/BurntSushi/sampcon/ensemble"
)

// ThresholdResult is the outcome of clustering and testing the population at
// a single threshold.
type ThresholdResult struct {
	Threshold float64
	Statistics

	// Coverage is the fraction of models in retained clusters.
	Coverage float64

	// Clusters is the number of clusters and Retained the number of them
	// that entered the contingency table.
	Clusters, Retained int
}

func (r ThresholdResult) String() string {
	return fmt.Sprintf("%0.3f: p = %0.4f, V = %0.4f, coverage = %0.2f%%",
		r.Threshold, r.PValue, r.CramersV, 100*r.Coverage)
}

// Evaluate clusters the population at threshold t, builds its contingency
// table and tests it.
func Evaluate(
	d *distmat.Matrix,
	pop *ensemble.Population,
	t float64,
	cfg Config,
) ThresholdResult {
	table := NewTable(NewClustering(d, t), pop, cfg.Retention)
	return ThresholdResult{
		Threshold:  t,
		Statistics: table.Test(cfg.ExactBelow, cfg.Yates),
		Coverage:   table.Coverage(),
		Clusters:   len(table.Rows),
		Retained:   len(table.Retained()),
	}
}

// Sweep evaluates every threshold. Thresholds only read the distance matrix,
// so they are spread over cfg.Workers goroutines; the results are in the
// same order as thresholds regardless.
func Sweep(
	d *distmat.Matrix,
	pop *ensemble.Population,
	thresholds []float64,
	cfg Config,
) ([]ThresholdResult, error) {
	if err := checkPopulation(d, pop); err != nil {
		return nil, err
	}

	results := make([]ThresholdResult, len(thresholds))
	pool := newWorkers(cfg.Workers, func(i int) {
		results[i] = Evaluate(d, pop, thresholds[i], cfg)
	})
	for i := range thresholds {
		pool.enqueue(i)
	}
	pool.done()
	return results, nil
}

// pool runs a job for each index it is given on a fixed number of
// goroutines.
type pool struct {
	wg   *sync.WaitGroup
	jobs chan int
}

func newWorkers(numWorkers int, job func(i int)) pool {
	numWorkers = workers(numWorkers)
	jobs := make(chan int, numWorkers*2)
	wg := &sync.WaitGroup{}
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				job(i)
			}
		}()
	}
	return pool{wg, jobs}
}

func (p pool) enqueue(i int) {
	p.jobs <- i
}

func (p pool) done() {
	close(p.jobs)
	p.wg.Wait()
}

func workers(n int) int {
	if n < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

func checkPopulation(d *distmat.Matrix, pop *ensemble.Population) error {
	if d == nil || pop == nil {
		return fmt.Errorf("%w: missing distance matrix or population",
			ErrInvalidInput)
	}
	if d.Len() != pop.Len() {
		return fmt.Errorf("%w: distance matrix covers %d models but the "+
			"population has %d", ErrInvalidInput, d.Len(), pop.Len())
	}
	return nil
}
