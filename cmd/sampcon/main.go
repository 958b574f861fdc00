// Command sampcon determines whether two independent samples of structural
// models have converged. It reports the sampling precision (the finest
// clustering threshold at which the samples are statistically
// indistinguishable), clusters the models at that precision and reports
// the precision of each cluster.
//
// Models are read from PDB files, unless a precomputed distance matrix is
// given with -matrix. Scores, when given, are checked for convergence too.
package main

import (
	"flag"
	"io"
	"math/rand"

	"github.com/BurntSushi/sampcon/cmd/util"
	"github.com/BurntSushi/sampcon/density"
	"github.com/BurntSushi/sampcon/distmat"
	"github.com/BurntSushi/sampcon/ensemble"
	"github.com/BurntSushi/sampcon/report"
	"github.com/BurntSushi/sampcon/sampcon"
	"github.com/BurntSushi/sampcon/scores"
)

var (
	flagSysName          = "sys"
	flagPath             = "."
	flagOut              = "."
	flagMatrix           = ""
	flagScoreA           = ""
	flagScoreB           = ""
	flagGridSize         = sampcon.DefaultConfig.GridSize
	flagClusterThreshold = 0.0
	flagMinClusterSize   = sampcon.DefaultConfig.Retention.MinCount
	flagVoxel            = density.DefaultEdge
	flagRepeats          = 50
	flagSeed             = int64(1)
	flagSkipPrecision    = false
	flagNoYates          = false
)

func init() {
	flag.StringVar(&flagSysName, "sysname", flagSysName,
		"The name of the system. It prefixes every output file.")
	flag.StringVar(&flagPath, "path", flagPath,
		"The directory containing the PDB files of the models.")
	flag.StringVar(&flagOut, "out", flagOut,
		"The directory to write results to.")
	flag.StringVar(&flagMatrix, "matrix", flagMatrix,
		"A distance matrix written by rmsd-matrix, or a '.txt' file of\n"+
			"condensed distances. When set, the RMSDs are not recomputed.")
	flag.StringVar(&flagScoreA, "scoreA", flagScoreA,
		"A file with the score of each model in sample A.")
	flag.StringVar(&flagScoreB, "scoreB", flagScoreB,
		"A file with the score of each model in sample B.")
	flag.Float64Var(&flagGridSize, "gridsize", flagGridSize,
		"The spacing between the clustering thresholds that are tried.")
	flag.Float64Var(&flagClusterThreshold, "cluster-threshold",
		flagClusterThreshold,
		"When positive, the sampling precision is not computed and the\n"+
			"models are clustered at this threshold.")
	flag.IntVar(&flagMinClusterSize, "min-cluster-size", flagMinClusterSize,
		"Clusters with fewer models are left out of the contingency table.")
	flag.Float64Var(&flagVoxel, "voxel", flagVoxel,
		"The edge length of the voxels of the localization densities.")
	flag.IntVar(&flagRepeats, "repeats", flagRepeats,
		"The number of random subsets drawn for each subset size in the\n"+
			"top score convergence test.")
	flag.Int64Var(&flagSeed, "seed", flagSeed,
		"The seed of the random subsets of the top score test.")
	flag.BoolVar(&flagSkipPrecision, "skip-cluster-precision",
		flagSkipPrecision,
		"When set, models are not loaded to compute cluster precisions and\n"+
			"densities. Requires -matrix.")

	flag.BoolVar(&flagNoYates, "no-yates", flagNoYates,
		"When set, 2x2 contingency tables are tested without Yates'\n"+
			"continuity correction.")

	util.FlagUse("cpu", "verbose", "align", "masses")
	util.FlagParse("models-A models-B",
		"models-A and models-B list the models of each sample, one per line.\n"+
			"With -matrix, the matrix must follow the same order.")
	util.AssertNArg(2)
}

func main() {
	logger := util.Logger()
	defer logger.Close()

	util.OutputDir(flagOut)
	out := report.Dir{Path: flagOut, System: flagSysName}
	pop := ensemble.NewPopulation(
		util.NamesRead(util.Arg(0)), util.NamesRead(util.Arg(1)))
	logger.Info("Read population", "population", pop.String())

	if flagScoreA != "" && flagScoreB != "" {
		scoreTests(out, logger)
	}

	var models *ensemble.Models
	if !flagSkipPrecision {
		var err error
		models, err = ensemble.LoadModels(flagPath, pop, util.Masses())
		util.Assert(err, "Could not load models from '%s'", flagPath)
	} else if flagMatrix == "" {
		util.Fatalf("-skip-cluster-precision requires -matrix.")
	}

	var d *distmat.Matrix
	if flagMatrix != "" {
		d = util.MatrixRead(flagMatrix)
	} else {
		logger.Info("Computing distance matrix", "models", models.Len())
		progress := util.NewProgress(models.Len()-1, "rows")
		builder := distmat.Builder{
			Masses:   models.Masses(),
			Align:    util.FlagAlign,
			Workers:  util.FlagCpu,
			Progress: func(int) { progress.JobDone(nil) },
		}
		var err error
		d, err = builder.Build(models.All())
		progress.Close()
		util.Assert(err, "Could not compute distance matrix")
	}

	cfg := sampcon.DefaultConfig
	cfg.GridSize = flagGridSize
	cfg.ClusterThreshold = flagClusterThreshold
	cfg.Retention.MinCount = flagMinClusterSize
	cfg.Workers = util.FlagCpu
	cfg.Align = util.FlagAlign
	cfg.Yates = !flagNoYates

	analysis, err := sampcon.Analyze(d, pop, cfg, logger)
	util.Assert(err, "Could not compute sampling precision")

	var precisions []sampcon.ClusterPrecision
	if models != nil {
		maps := density.NewMaps(flagVoxel)
		precisions, err = analysis.Partition.Precision(
			models, cfg.Align, cfg.Workers, maps)
		util.Assert(err, "Could not compute cluster precisions")
		for _, cp := range precisions {
			c := maps.Cluster(cp.ID)
			logger.Info("Cluster",
				"id", cp.ID,
				"center", cp.Center.String(),
				"precision", cp.Precision,
				"A", len(cp.A), "B", len(cp.B),
				"density", c.All.String())
		}
	}
	util.Assert(out.Analysis(analysis, precisions),
		"Could not write results to '%s'", flagOut)
}

func scoreTests(out report.Dir, logger sampcon.Logger) {
	scoresA := util.ScoresRead(flagScoreA)
	scoresB := util.ScoresRead(flagScoreB)

	all := append(append([]float64{}, scoresA...), scoresB...)
	rng := rand.New(rand.NewSource(flagSeed))
	tops, err := scores.TopScoreConvergence(all, flagRepeats, rng)
	util.Assert(err, "Could not test top score convergence")
	util.Assert(out.Write(out.File(report.TopScoresFile),
		func(w io.Writer) error { return report.TopScores(w, tops) }))

	ks, err := scores.KolmogorovSmirnov(scoresA, scoresB)
	util.Assert(err, "Could not compare score distributions")
	util.Assert(out.Write(out.File(report.KolmogorovSmirnovFile),
		func(w io.Writer) error { return report.KolmogorovSmirnov(w, ks) }))
	logger.Info("Score distributions", "D", ks.D, "p", ks.PValue)
}
