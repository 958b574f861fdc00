package sampcon

import (
	"fmt"

	"github.com/BurntSushi/sampcon/distmat"
	"github.com/BurntSushi/sampcon/ensemble"
	"github.com/BurntSushi/sampcon/rmsd"
)

// Structures provides the coordinates of every model in population order.
// ensemble.Models satisfies it.
type Structures interface {
	Len() int
	Coords(i int) []rmsd.Coords
	Masses() []float64
}

// DensitySink receives every member of every retained cluster after it has
// been superposed onto the cluster center. Calls are made from a single
// goroutine, cluster by cluster, and within a cluster in population order.
type DensitySink interface {
	Add(cluster int, id ensemble.Identity, coords []rmsd.Coords)
}

// ClusterPrecision describes one retained cluster of the final partition.
type ClusterPrecision struct {
	// ID numbers the retained clusters from zero, in the order the clusters
	// were formed.
	ID     int
	Center ensemble.Identity

	// Precision is the mean RMSD of the members to the center. It is not
	// Applicable, and zero, for a cluster with a single member.
	Precision  float64
	Applicable bool

	// A and B are the members from each sample, in population order.
	A, B []ensemble.Identity
}

// Partition is the clustering of the population at the final threshold and
// its contingency table.
type Partition struct {
	Threshold  float64
	Clustering *Clustering
	Table      *Table
	pop        *ensemble.Population
}

// NewPartition clusters the population at threshold.
func NewPartition(
	d *distmat.Matrix,
	pop *ensemble.Population,
	threshold float64,
	policy RetentionPolicy,
) (*Partition, error) {
	if err := checkPopulation(d, pop); err != nil {
		return nil, err
	}
	c := NewClustering(d, threshold)
	return &Partition{
		Threshold:  threshold,
		Clustering: c,
		Table:      NewTable(c, pop, policy),
		pop:        pop,
	}, nil
}

// Retained returns the retained clusters in the order they were formed.
func (p *Partition) Retained() []Cluster {
	clusters := make([]Cluster, 0)
	for _, row := range p.Table.Rows {
		if row.Retained {
			clusters = append(clusters, p.Clustering.Clusters[row.Cluster])
		}
	}
	return clusters
}

// Precision superposes every member of every retained cluster onto the
// cluster's center and reports the mean RMSD of each cluster. The center
// itself counts as a member (with an RMSD of zero) but not in the mean's
// denominator.
//
// Superpositions run on the given number of goroutines. If sink is not nil,
// it is given the superposed coordinates of every member.
func (p *Partition) Precision(
	models Structures,
	align bool,
	numWorkers int,
	sink DensitySink,
) ([]ClusterPrecision, error) {
	if models == nil || models.Len() != p.pop.Len() {
		return nil, fmt.Errorf("%w: need coordinates for all %d models",
			ErrInvalidInput, p.pop.Len())
	}

	clusters := p.Retained()
	type job struct{ cluster, member int }
	jobs := make([]job, 0, p.pop.Len())
	sups := make([][]rmsd.Superposition, len(clusters))
	for ci, c := range clusters {
		sups[ci] = make([]rmsd.Superposition, len(c.Members))
		for mi := range c.Members {
			jobs = append(jobs, job{ci, mi})
		}
	}

	masses := models.Masses()
	pool := newWorkers(numWorkers, func(i int) {
		j := jobs[i]
		c := clusters[j.cluster]
		sups[j.cluster][j.member] = rmsd.Superpose(
			models.Coords(c.Members[j.member]), models.Coords(c.Center),
			masses, align)
	})
	for i := range jobs {
		pool.enqueue(i)
	}
	pool.done()

	precisions := make([]ClusterPrecision, len(clusters))
	for ci, c := range clusters {
		cp := ClusterPrecision{
			ID:     ci,
			Center: p.pop.Identity(c.Center),
			A:      make([]ensemble.Identity, 0),
			B:      make([]ensemble.Identity, 0),
		}
		var sum float64
		for mi, m := range c.Members {
			id := p.pop.Identity(m)
			sum += sups[ci][mi].RMSD
			if id.Sample == ensemble.SampleA {
				cp.A = append(cp.A, id)
			} else {
				cp.B = append(cp.B, id)
			}
			if sink != nil {
				sink.Add(ci, id, sups[ci][mi].Coords)
			}
		}
		if len(c.Members) > 1 {
			cp.Precision = sum / float64(len(c.Members)-1)
			cp.Applicable = true
		}
		precisions[ci] = cp
	}
	return precisions, nil
}
