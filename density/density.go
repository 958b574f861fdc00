// Package density accumulates where the superposed members of each cluster
// sit in space. Space is cut into cubic voxels, and each voxel records how
// many models have at least one atom inside it.
package density

import (
	"fmt"
	"math"
	"sort"

	"github.com/BurntSushi/sampcon/ensemble"
	"github.com/BurntSushi/sampcon/rmsd"
)

// DefaultEdge is the default voxel edge length, in the units of the
// coordinates (usually Angstroms).
const DefaultEdge = 5.0

// Voxel is the integer grid position of a voxel. Voxel (i, j, k) covers
// [i*edge, (i+1)*edge) along x, and likewise along y and z.
type Voxel [3]int

// Map is the occupancy of voxels by a set of models.
type Map struct {
	Edge   float64
	Models int
	counts map[Voxel]int
}

// NewMap returns an empty map with the given voxel edge. If edge is not
// positive, DefaultEdge is used.
func NewMap(edge float64) *Map {
	if edge <= 0 || math.IsNaN(edge) {
		edge = DefaultEdge
	}
	return &Map{Edge: edge, counts: make(map[Voxel]int)}
}

// Add records one model. A voxel containing several of the model's atoms is
// only counted once.
func (m *Map) Add(coords []rmsd.Coords) {
	seen := make(map[Voxel]bool, len(coords))
	for _, c := range coords {
		v := m.VoxelOf(c)
		if !seen[v] {
			seen[v] = true
			m.counts[v]++
		}
	}
	m.Models++
}

// VoxelOf returns the voxel containing c.
func (m *Map) VoxelOf(c rmsd.Coords) Voxel {
	return Voxel{
		int(math.Floor(c[0] / m.Edge)),
		int(math.Floor(c[1] / m.Edge)),
		int(math.Floor(c[2] / m.Edge)),
	}
}

// Center returns the coordinates of the center of v.
func (m *Map) Center(v Voxel) rmsd.Coords {
	return rmsd.Coords{
		(float64(v[0]) + 0.5) * m.Edge,
		(float64(v[1]) + 0.5) * m.Edge,
		(float64(v[2]) + 0.5) * m.Edge,
	}
}

// Count returns the number of models occupying v.
func (m *Map) Count(v Voxel) int {
	return m.counts[v]
}

// Voxels returns every occupied voxel in lexicographic order.
func (m *Map) Voxels() []Voxel {
	vs := make([]Voxel, 0, len(m.counts))
	for v := range m.counts {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool {
		a, b := vs[i], vs[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})
	return vs
}

// Normalized returns the fraction of models occupying each voxel. It is
// empty if no model has been added.
func (m *Map) Normalized() map[Voxel]float64 {
	norm := make(map[Voxel]float64, len(m.counts))
	if m.Models == 0 {
		return norm
	}
	for v, n := range m.counts {
		norm[v] = float64(n) / float64(m.Models)
	}
	return norm
}

func (m *Map) String() string {
	return fmt.Sprintf("%d voxels occupied by %d models (edge %0.2f)",
		len(m.counts), m.Models, m.Edge)
}

// Cluster holds the maps of one cluster: all of its members together and
// the members of each sample.
type Cluster struct {
	All, A, B *Map
}

// Maps collects a Cluster for every cluster it is given members of. It can
// be passed as the density sink when computing cluster precisions.
type Maps struct {
	Edge     float64
	clusters []*Cluster
}

// NewMaps returns an empty collection with the given voxel edge. If edge is
// not positive, DefaultEdge is used.
func NewMaps(edge float64) *Maps {
	return &Maps{Edge: NewMap(edge).Edge}
}

// Add records one superposed member of a cluster.
func (ms *Maps) Add(cluster int, id ensemble.Identity, coords []rmsd.Coords) {
	for len(ms.clusters) <= cluster {
		ms.clusters = append(ms.clusters, &Cluster{
			All: NewMap(ms.Edge),
			A:   NewMap(ms.Edge),
			B:   NewMap(ms.Edge),
		})
	}
	c := ms.clusters[cluster]
	c.All.Add(coords)
	switch id.Sample {
	case ensemble.SampleA:
		c.A.Add(coords)
	case ensemble.SampleB:
		c.B.Add(coords)
	}
}

// Len returns one more than the largest cluster seen.
func (ms *Maps) Len() int {
	return len(ms.clusters)
}

// Cluster returns the maps of cluster i, or nil if nothing was added to it.
func (ms *Maps) Cluster(i int) *Cluster {
	if i < 0 || i >= len(ms.clusters) || ms.clusters[i].All.Models == 0 {
		return nil
	}
	return ms.clusters[i]
}
