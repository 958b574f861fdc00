package sampcon_test

import (
	"fmt"

	"github.com/BurntSushi/sampcon/distmat"
	"github.com/BurntSushi/sampcon/ensemble"
	"github.com/BurntSushi/sampcon/sampcon"
)

func ExampleAnalyze() {
	// Three models from each sample, all of them identical.
	dists, err := distmat.NewCondensed(make([]float64, 15))
	if err != nil {
		fmt.Println(err)
		return
	}
	pop := ensemble.NewAnonymousPopulation(3, 3)

	cfg := sampcon.DefaultConfig
	cfg.Retention = sampcon.RetentionPolicy{MinCount: 1}
	analysis, err := sampcon.Analyze(dists, pop, cfg, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(analysis.Precision)
	for _, row := range analysis.Partition.Table.Retained() {
		fmt.Println(row.Cluster, row.A, row.B)
	}
	// Output:
	// sampling precision 0.000 (p = 1.0000, V = 0.0000, coverage = 100.00%, converged)
	// 0 3 3
}
