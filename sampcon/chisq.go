package sampcon

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
	"gonum.org/v1/gonum/stat/distuv"
)

// Statistics summarizes a test of independence on an r x 2 contingency
// table.
//
// A table with fewer than two rows, or in which one sample has no models at
// all, cannot be tested. Such a table is Degenerate and reports a p-value
// of 1 and a Cramer's V of 0: nothing distinguishes the samples.
type Statistics struct {
	ChiSquare float64
	DoF       int
	PValue    float64
	CramersV  float64

	// Exact is set when the p-value comes from Fisher's exact test.
	Exact      bool
	Degenerate bool
}

var degenerate = Statistics{PValue: 1, CramersV: 0, Degenerate: true}

// independence computes Pearson's chi-square statistic, its p-value and
// Cramer's V for the table. n is the size of the whole population, which
// may exceed the table's total when clusters were left out; Cramer's V is
// relative to n. With yates, a 2x2 table gets Yates' continuity correction.
// A 2x2 table whose smallest expected count is below exactBelow gets its
// p-value from Fisher's exact test instead.
func independence(
	table [][2]int,
	n int,
	exactBelow float64,
	yates bool,
) Statistics {
	if len(table) < 2 {
		return degenerate
	}

	var colA, colB, total float64
	rowTotals := make([]float64, len(table))
	for i, row := range table {
		colA += float64(row[0])
		colB += float64(row[1])
		rowTotals[i] = float64(row[0] + row[1])
	}
	total = colA + colB
	if colA == 0 || colB == 0 {
		return degenerate
	}

	correct := yates && len(table) == 2
	chi2, minExpected := 0.0, math.Inf(1)
	for i, row := range table {
		if rowTotals[i] == 0 {
			continue
		}
		for k, col := range [2]float64{colA, colB} {
			expected := rowTotals[i] * col / total
			diff := math.Abs(float64(row[k]) - expected)
			if correct {
				diff -= math.Min(0.5, diff)
			}
			chi2 += diff * diff / expected
			minExpected = math.Min(minExpected, expected)
		}
	}

	dof := len(table) - 1
	stats := Statistics{
		ChiSquare: chi2,
		DoF:       dof,
		PValue:    distuv.ChiSquared{K: float64(dof)}.Survival(chi2),
		// min(rows, columns) - 1 is always 1 with two columns.
		CramersV: math.Min(1, math.Sqrt(chi2/math.Max(total, float64(n)))),
	}
	if len(table) == 2 && minExpected < exactBelow {
		stats.PValue = fisherExact(table[0][0], table[0][1],
			table[1][0], table[1][1])
		stats.Exact = true
	}
	return stats
}

// fisherExact returns the two-sided p-value of Fisher's exact test for the
// 2x2 table
//
//	| a b |
//	| c d |
//
// It is the total probability, under the hypergeometric distribution with
// the table's margins, of every table no more likely than the observed one.
func fisherExact(a, b, c, d int) float64 {
	row1, col1, col2 := a+b, a+c, b+d
	n := col1 + col2
	logDenom := combin.LogGeneralizedBinomial(float64(n), float64(row1))
	logProb := func(k int) float64 {
		return combin.LogGeneralizedBinomial(float64(col1), float64(k)) +
			combin.LogGeneralizedBinomial(float64(col2), float64(row1-k)) -
			logDenom
	}

	lo, hi := row1-col2, row1
	if lo < 0 {
		lo = 0
	}
	if col1 < hi {
		hi = col1
	}

	// The relative tolerance keeps tables that are exactly as likely as the
	// observed one from being dropped by rounding.
	observed := logProb(a) + 1e-7
	p := 0.0
	for k := lo; k <= hi; k++ {
		if lp := logProb(k); lp <= observed {
			p += math.Exp(lp)
		}
	}
	return math.Min(1, p)
}
