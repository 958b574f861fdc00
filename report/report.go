// Package report writes the results of a sampling analysis as plain text
// files, one value per column and one record per line.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/sampcon/ensemble"
	"github.com/BurntSushi/sampcon/sampcon"
	"github.com/BurntSushi/sampcon/scores"
)

// GridStats writes one line per threshold: the threshold, p-value, Cramer's
// V and the percentage of models in retained clusters.
func GridStats(w io.Writer, results []sampcon.ThresholdResult) error {
	buf := bufio.NewWriter(w)
	for _, r := range results {
		fmt.Fprintf(buf, "%f %f %f %f\n",
			r.Threshold, r.PValue, r.CramersV, 100*r.Coverage)
	}
	return buf.Flush()
}

// Precision writes the sampling precision and the statistics at that
// threshold on a single line, followed by whether it converged.
func Precision(w io.Writer, sp sampcon.SamplingPrecision) error {
	_, err := fmt.Fprintf(w, "%f %f %f %f %t\n",
		sp.Threshold, sp.PValue, sp.CramersV, 100*sp.Coverage, sp.Converged)
	return err
}

// Populations writes the number of models of each sample in every retained
// cluster. Retained clusters are numbered from zero.
func Populations(w io.Writer, table *sampcon.Table) error {
	buf := bufio.NewWriter(w)
	for i, row := range table.Retained() {
		fmt.Fprintf(buf, "%d %d %d\n", i, row.A, row.B)
	}
	return buf.Flush()
}

// ClusterPrecisions writes the precision of every cluster. Clusters with a
// single member have no precision.
func ClusterPrecisions(w io.Writer, precisions []sampcon.ClusterPrecision) error {
	buf := bufio.NewWriter(w)
	for _, cp := range precisions {
		if cp.Applicable {
			fmt.Fprintf(buf, "Cluster precision of cluster %d is %f A\n",
				cp.ID, cp.Precision)
		} else {
			fmt.Fprintf(buf, "Cluster precision of cluster %d is N/A "+
				"(a single member)\n", cp.ID)
		}
	}
	return buf.Flush()
}

// Members writes one model identity per line.
func Members(w io.Writer, ids []ensemble.Identity) error {
	buf := bufio.NewWriter(w)
	for _, id := range ids {
		fmt.Fprintln(buf, id)
	}
	return buf.Flush()
}

// TopScores writes the subset size, mean and standard deviation of the best
// score for each subset size.
func TopScores(w io.Writer, tops []scores.TopScore) error {
	buf := bufio.NewWriter(w)
	for _, top := range tops {
		fmt.Fprintf(buf, "%d %f %f\n", top.Size, top.Mean, top.StdDev)
	}
	return buf.Flush()
}

// KolmogorovSmirnov writes the D statistic and its p-value.
func KolmogorovSmirnov(w io.Writer, ks scores.KS) error {
	_, err := fmt.Fprintf(w, "%f %f\n", ks.D, ks.PValue)
	return err
}

// Dir writes report files for a single system into a directory. Every file
// name starts with the system name, except for the per cluster member lists.
type Dir struct {
	Path   string
	System string
}

// Names of the files written by Dir.
const (
	GridStatsFile         = "ChiSquare_Grid_Stats.txt"
	PrecisionFile         = "PV.txt"
	PopulationsFile       = "CP.txt"
	ClusterPrecisionsFile = "PC.txt"
	TopScoresFile         = "Top_Score_Conv.txt"
	KolmogorovSmirnovFile = "KS_Test.txt"
)

// File returns the path of the system's file with the given suffix.
func (d Dir) File(suffix string) string {
	return filepath.Join(d.Path, fmt.Sprintf("%s.%s", d.System, suffix))
}

// ClusterFile returns the path of a member list of cluster i. set is one of
// "all", "sampleA" or "sampleB".
func (d Dir) ClusterFile(i int, set string) string {
	return filepath.Join(d.Path, fmt.Sprintf("cluster.%d.%s.txt", i, set))
}

// Write creates the named file and fills it with write.
func (d Dir) Write(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// Analysis writes the threshold grid statistics, the sampling precision,
// the populations of the final clusters and, if precisions is not nil, the
// cluster precisions and member lists.
func (d Dir) Analysis(
	a *sampcon.Analysis,
	precisions []sampcon.ClusterPrecision,
) error {
	if !a.Override {
		err := d.Write(d.File(GridStatsFile), func(w io.Writer) error {
			return GridStats(w, a.Results)
		})
		if err != nil {
			return err
		}
		err = d.Write(d.File(PrecisionFile), func(w io.Writer) error {
			return Precision(w, a.Precision)
		})
		if err != nil {
			return err
		}
	}
	err := d.Write(d.File(PopulationsFile), func(w io.Writer) error {
		return Populations(w, a.Partition.Table)
	})
	if err != nil || precisions == nil {
		return err
	}

	err = d.Write(d.File(ClusterPrecisionsFile), func(w io.Writer) error {
		return ClusterPrecisions(w, precisions)
	})
	if err != nil {
		return err
	}
	for _, cp := range precisions {
		sets := []struct {
			name string
			ids  []ensemble.Identity
		}{
			{"all", append(append([]ensemble.Identity{}, cp.A...), cp.B...)},
			{"sampleA", cp.A},
			{"sampleB", cp.B},
		}
		for _, set := range sets {
			ids := set.ids
			err := d.Write(d.ClusterFile(cp.ID, set.name),
				func(w io.Writer) error { return Members(w, ids) })
			if err != nil {
				return err
			}
		}
	}
	return nil
}
