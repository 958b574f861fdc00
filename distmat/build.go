package distmat

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/BurntSushi/sampcon/rmsd"
)

// Builder computes a distance matrix from the coordinates of every model.
// The distance between two models is their RMSD.
type Builder struct {
	// Masses weights each atom. It may be nil for unit weights.
	Masses []float64

	// Align turns on optimal superposition before each RMSD. When false,
	// models are assumed to already share a reference frame.
	Align bool

	// Workers is the number of goroutines computing rows of the matrix.
	// Values less than 1 mean runtime.GOMAXPROCS(0).
	Workers int

	// Progress, if set, is called once for every finished row. It is called
	// from a single goroutine.
	Progress func(row int)
}

// Build computes all N(N-1)/2 pairwise RMSDs. Every model must have the
// same number of atoms.
func (b Builder) Build(models [][]rmsd.Coords) (*Matrix, error) {
	n := len(models)
	if n < 2 {
		return nil, ErrEmpty
	}
	for i, m := range models {
		if len(m) != len(models[0]) {
			return nil, fmt.Errorf("%w: model %d has %d atoms but model 0 "+
				"has %d", ErrMalformed, i, len(m), len(models[0]))
		}
	}
	if b.Masses != nil && len(b.Masses) != len(models[0]) {
		return nil, fmt.Errorf("%w: %d masses for models with %d atoms",
			ErrMalformed, len(b.Masses), len(models[0]))
	}

	d := make([]float64, n*(n-1)/2)
	pool := newRowWorkers(b, models, d)
	go func() {
		for i := 0; i < n-1; i++ {
			pool.enqueue(i)
		}
		pool.done()
	}()
	for row := range pool.finished {
		if b.Progress != nil {
			b.Progress(row)
		}
	}
	return NewCondensed(d)
}

// rowWorkers fills disjoint regions of the condensed vector, one row of the
// upper triangle at a time.
type rowWorkers struct {
	wg       *sync.WaitGroup
	rows     chan int
	finished chan int
}

func newRowWorkers(b Builder, models [][]rmsd.Coords, d []float64) rowWorkers {
	numWorkers := b.Workers
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	n := len(models)
	rows := make(chan int, numWorkers*2)
	finished := make(chan int, numWorkers*2)
	wg := &sync.WaitGroup{}
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				offset := condensedIndex(n, i, i+1)
				for j := i + 1; j < n; j++ {
					d[offset+j-i-1] = rmsd.RMSD(
						models[i], models[j], b.Masses, b.Align)
				}
				finished <- i
			}
		}()
	}
	return rowWorkers{wg, rows, finished}
}

func (p rowWorkers) enqueue(row int) {
	p.rows <- row
}

func (p rowWorkers) done() {
	close(p.rows)
	p.wg.Wait() // wait for workers to finish sending results
	close(p.finished)
}

// condensedIndex returns the position of d[i][j] (i < j) in the condensed
// vector of an n x n matrix.
func condensedIndex(n, i, j int) int {
	return i*n - i*(i+1)/2 + (j - i - 1)
}
