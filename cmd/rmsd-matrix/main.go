// Command rmsd-matrix computes the pairwise RMSD of every model in two
// samples and saves the resulting distance matrix for use with sampcon.
package main

import (
	"flag"

	"github.com/BurntSushi/sampcon/cmd/util"
	"github.com/BurntSushi/sampcon/distmat"
	"github.com/BurntSushi/sampcon/ensemble"
)

var flagPath = "."

func init() {
	flag.StringVar(&flagPath, "path", flagPath,
		"The directory containing the PDB files of the models.")

	util.FlagUse("cpu", "verbose", "align", "masses")
	util.FlagParse("matrix-out models-A models-B",
		"models-A and models-B list the PDB files of each sample, one per\n"+
			"line. The matrix rows follow the same order: sample A, then B.")
	util.AssertNArg(3)
}

func main() {
	outPath := util.Arg(0)
	pop := ensemble.NewPopulation(
		util.NamesRead(util.Arg(1)), util.NamesRead(util.Arg(2)))

	logger := util.Logger()
	defer logger.Close()

	logger.Info("Loading models", "population", pop.String())
	models, err := ensemble.LoadModels(flagPath, pop, util.Masses())
	util.Assert(err, "Could not load models from '%s'", flagPath)

	progress := util.NewProgress(models.Len()-1, "rows")
	builder := distmat.Builder{
		Masses:   models.Masses(),
		Align:    util.FlagAlign,
		Workers:  util.FlagCpu,
		Progress: func(int) { progress.JobDone(nil) },
	}
	d, err := builder.Build(models.All())
	progress.Close()
	util.Assert(err, "Could not compute distance matrix")

	lo, hi := d.Range()
	logger.Info("Computed distance matrix",
		"models", d.Len(), "min", lo, "max", hi)
	util.MatrixWrite(outPath, d)
}
