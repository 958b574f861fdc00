package sampcon

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClusteringIsPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		n := 2 + rng.Intn(40)
		d := randomMatrix(t, rng, n)
		cutoffs, err := Thresholds(d.Condensed(), 0.5)
		require.NoError(t, err)

		for _, cutoff := range cutoffs {
			c := NewClustering(d, cutoff)
			seen := make([]int, n)
			for ci, cluster := range c.Clusters {
				require.NotEmpty(t, cluster.Members)
				assert.Equal(t, cluster.Center, cluster.Members[0])
				assert.True(t, sort.IntsAreSorted(cluster.Members))
				for _, m := range cluster.Members {
					seen[m]++
					assert.Equal(t, ci, c.ClusterOf(m))
					assert.LessOrEqual(t, d.At(cluster.Center, m), cutoff)
				}
			}
			for m, count := range seen {
				require.Equal(t, 1, count, "model %d at threshold %v", m, cutoff)
			}
		}
	}
}

func TestClusterCountIsMonotone(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 20; trial++ {
		xs := make([]float64, 30)
		for i := range xs {
			xs[i] = rng.Float64() * 50
		}
		sort.Float64s(xs)
		d := lineMatrix(t, xs...)

		cutoffs, err := Thresholds(d.Condensed(), 0.25)
		require.NoError(t, err)
		last := d.Len() + 1
		for _, cutoff := range cutoffs {
			c := NewClustering(d, cutoff)
			require.LessOrEqual(t, c.Len(), last, "threshold %v", cutoff)
			last = c.Len()
		}
		assert.Equal(t, 1, last)
	}
}

func TestClusteringDependsOnOrder(t *testing.T) {
	// The first model seeds the first cluster.
	middleFirst := NewClustering(lineMatrix(t, 1, 0, 2), 1)
	assert.Equal(t, 1, middleFirst.Len())

	leftFirst := NewClustering(lineMatrix(t, 0, 1, 2), 1)
	require.Equal(t, 2, leftFirst.Len())
	assert.Equal(t, []int{0, 1}, leftFirst.Clusters[0].Members)
	assert.Equal(t, []int{2}, leftFirst.Clusters[1].Members)
}

func TestClusteringIdenticalModels(t *testing.T) {
	c := NewClustering(lineMatrix(t, 0, 0, 0, 0, 0, 0), 0)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, c.Clusters[0].Members)
	assert.Equal(t, 6, c.Models())
}

func TestClusteringBelowAllDistances(t *testing.T) {
	c := NewClustering(lineMatrix(t, 0, 1, 2, 3), 0.5)
	assert.Equal(t, 4, c.Len())
	for i, cluster := range c.Clusters {
		assert.Equal(t, Cluster{Center: i, Members: []int{i}}, cluster)
		assert.Equal(t, 1, cluster.Len())
	}
}
