// Command pdb-rmsd prints the RMSD between the carbon-alpha atoms of two
// models. An optional atom range (1-based, inclusive) restricts the atoms
// compared in both models.
package main

import (
	"fmt"

	"github.com/BurntSushi/sampcon/cmd/util"
	"github.com/BurntSushi/sampcon/ensemble"
	"github.com/BurntSushi/sampcon/rmsd"
)

func init() {
	util.FlagUse("align", "masses")
	util.FlagParse("pdb-file pdb-file [start stop]", "")
	if util.NArg() != 2 && util.NArg() != 4 {
		util.Usage()
	}
}

func main() {
	m1, err := ensemble.ReadPDBModel(util.Arg(0))
	util.Assert(err, "Could not read '%s'", util.Arg(0))
	m2, err := ensemble.ReadPDBModel(util.Arg(1))
	util.Assert(err, "Could not read '%s'", util.Arg(1))

	c1, c2, masses := m1.Coords, m2.Coords, util.Masses()
	if util.NArg() == 4 {
		start, stop := util.ParseInt(util.Arg(2)), util.ParseInt(util.Arg(3))
		c1 = atomRange(c1, start, stop, m1.Name)
		c2 = atomRange(c2, start, stop, m2.Name)
		if masses != nil {
			if stop > len(masses) {
				util.Fatalf("There are only %d masses.", len(masses))
			}
			masses = masses[start-1 : stop]
		}
	}
	if len(c1) != len(c2) {
		util.Fatalf("'%s' has %d atoms but '%s' has %d atoms.",
			m1.Name, len(c1), m2.Name, len(c2))
	}
	if masses != nil && len(masses) != len(c1) {
		util.Fatalf("There are %d masses for %d atoms.", len(masses), len(c1))
	}
	fmt.Println(rmsd.RMSD(c1, c2, masses, util.FlagAlign))
}

func atomRange(cs []rmsd.Coords, start, stop int, name string) []rmsd.Coords {
	if start < 1 || stop < start || stop > len(cs) {
		util.Fatalf("The range %d-%d is not valid for '%s', which has %d "+
			"carbon-alpha atoms.", start, stop, name, len(cs))
	}
	return cs[start-1 : stop]
}
