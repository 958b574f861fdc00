package sampcon

import (
	"github.com/BurntSushi/sampcon/ensemble"
)

// Row is the sample composition of a single cluster.
type Row struct {
	// Cluster is the index of the cluster in its Clustering.
	Cluster  int
	A, B     int
	Retained bool
}

// Total returns the population of the cluster.
func (r Row) Total() int {
	return r.A + r.B
}

// Table is the cluster by sample contingency table of a clustering. It has a
// row for every cluster, retained or not, so the row totals always add up to
// the number of models.
type Table struct {
	Rows []Row
	N    int
}

// NewTable counts the models of each sample in every cluster and marks the
// rows that satisfy the retention policy. The population must be the one the
// clustering was computed over.
func NewTable(
	c *Clustering,
	pop *ensemble.Population,
	policy RetentionPolicy,
) *Table {
	t := &Table{
		Rows: make([]Row, len(c.Clusters)),
		N:    c.Models(),
	}
	for i, cluster := range c.Clusters {
		row := Row{Cluster: i}
		for _, m := range cluster.Members {
			if pop.SampleOf(m) == ensemble.SampleA {
				row.A++
			} else {
				row.B++
			}
		}
		row.Retained = policy.Retains(row.A, row.B, t.N)
		t.Rows[i] = row
	}
	return t
}

// Retained returns the retained rows in cluster order.
func (t *Table) Retained() []Row {
	rows := make([]Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		if row.Retained {
			rows = append(rows, row)
		}
	}
	return rows
}

// Coverage returns the fraction of all models that are in retained clusters.
func (t *Table) Coverage() float64 {
	if t.N == 0 {
		return 0
	}
	covered := 0
	for _, row := range t.Rows {
		if row.Retained {
			covered += row.Total()
		}
	}
	return float64(covered) / float64(t.N)
}

// Test runs a test of independence between cluster and sample on the
// retained rows. Cramer's V is relative to the whole population, retained
// or not. See independence for exactBelow and yates, and Statistics for the
// degenerate cases.
func (t *Table) Test(exactBelow float64, yates bool) Statistics {
	rows := t.Retained()
	counts := make([][2]int, len(rows))
	for i, row := range rows {
		counts[i] = [2]int{row.A, row.B}
	}
	return independence(counts, t.N, exactBelow, yates)
}
