package sampcon

import (
	"fmt"

	"github.com/BurntSushi/sampcon/distmat"
)

// Cluster is a group of models at one threshold. Center is the model that
// seeded the cluster, which is also its smallest member. Members are in
// ascending population order and include the center.
type Cluster struct {
	Center  int
	Members []int
}

// Len returns the number of members.
func (c Cluster) Len() int {
	return len(c.Members)
}

// Clustering is a partition of every model at a single threshold.
type Clustering struct {
	Threshold float64
	Clusters  []Cluster

	// assignment maps a model to its index in Clusters.
	assignment []int
}

// NewClustering partitions every model of d at threshold t.
//
// Models are visited in population order. Each model that is not yet in a
// cluster starts a new one, which also takes every other unassigned model
// within distance t of it. This greedy procedure depends on the order of the
// models: the same matrix with rows permuted can cluster differently.
func NewClustering(d *distmat.Matrix, t float64) *Clustering {
	n := d.Len()
	c := &Clustering{
		Threshold:  t,
		Clusters:   make([]Cluster, 0),
		assignment: make([]int, n),
	}
	for i := range c.assignment {
		c.assignment[i] = -1
	}

	for i := 0; i < n; i++ {
		if c.assignment[i] != -1 {
			continue
		}
		id := len(c.Clusters)
		members := []int{i}
		c.assignment[i] = id
		for j := i + 1; j < n; j++ {
			if c.assignment[j] == -1 && d.At(i, j) <= t {
				members = append(members, j)
				c.assignment[j] = id
			}
		}
		c.Clusters = append(c.Clusters, Cluster{Center: i, Members: members})
	}
	return c
}

// Len returns the number of clusters.
func (c *Clustering) Len() int {
	return len(c.Clusters)
}

// Models returns the number of models partitioned.
func (c *Clustering) Models() int {
	return len(c.assignment)
}

// ClusterOf returns the index in Clusters of the cluster containing model i.
func (c *Clustering) ClusterOf(i int) int {
	return c.assignment[i]
}

func (c *Clustering) String() string {
	return fmt.Sprintf("%d clusters of %d models at %0.3f",
		len(c.Clusters), len(c.assignment), c.Threshold)
}
